package core

import "math"

// Aggregate is a mentor's derived rating summary.
type Aggregate struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// RecomputeMentorAggregate derives a mentor's aggregate rating from a
// set of reviews. Hidden reviews are skipped. The rating is the
// arithmetic mean of the visible ratings rounded to one decimal place;
// with no visible reviews it resets to 0.
//
// This is the single place aggregate math lives - both the review
// creation path and the visibility change path go through it.
func RecomputeMentorAggregate(reviews []*Review) Aggregate {
	var sum float64
	var count int
	for _, r := range reviews {
		if r == nil || !r.Visible {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return Aggregate{}
	}
	return Aggregate{
		Rating: math.Round(sum/float64(count)*10) / 10,
		Count:  count,
	}
}
