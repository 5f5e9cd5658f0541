package core

import "testing"

func review(id string, rating float64, visible bool) *Review {
	return &Review{ID: id, Rating: rating, Visible: visible}
}

// Requirement: the aggregate is the arithmetic mean of visible ratings
// rounded to one decimal place, with count = number of visible reviews.
func TestRecomputeMentorAggregate(t *testing.T) {
	tests := []struct {
		name       string
		reviews    []*Review
		wantRating float64
		wantCount  int
	}{
		{
			name:       "no reviews resets to zero",
			reviews:    nil,
			wantRating: 0,
			wantCount:  0,
		},
		{
			name:       "single visible review",
			reviews:    []*Review{review("r1", 4.5, true)},
			wantRating: 4.5,
			wantCount:  1,
		},
		{
			name: "mean rounds to one decimal",
			reviews: []*Review{
				review("r1", 4, true),
				review("r2", 5, true),
				review("r3", 5, true),
			},
			wantRating: 4.7, // (4+5+5)/3 = 4.666...
			wantCount:  3,
		},
		{
			name: "hidden reviews are excluded",
			reviews: []*Review{
				review("r1", 1, false),
				review("r2", 5, true),
			},
			wantRating: 5,
			wantCount:  1,
		},
		{
			name: "all reviews hidden resets to zero",
			reviews: []*Review{
				review("r1", 4.5, false),
			},
			wantRating: 0,
			wantCount:  0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RecomputeMentorAggregate(test.reviews)
			if got.Rating != test.wantRating {
				t.Errorf("rating = %v, want %v", got.Rating, test.wantRating)
			}
			if got.Count != test.wantCount {
				t.Errorf("count = %v, want %v", got.Count, test.wantCount)
			}
		})
	}
}

// Requirement: recomputing twice over an unchanged set yields the same
// value, and hiding then revealing a review restores the prior
// aggregate exactly.
func TestRecomputeMentorAggregate_Idempotent(t *testing.T) {
	reviews := []*Review{
		review("r1", 4, true),
		review("r2", 5, true),
		review("r3", 3.5, true),
	}

	first := RecomputeMentorAggregate(reviews)
	second := RecomputeMentorAggregate(reviews)
	if first != second {
		t.Fatalf("aggregate changed without input change: %+v vs %+v", first, second)
	}

	reviews[1].Visible = false
	hidden := RecomputeMentorAggregate(reviews)
	if hidden == first {
		t.Fatal("hiding a review should change the aggregate")
	}

	reviews[1].Visible = true
	restored := RecomputeMentorAggregate(reviews)
	if restored != first {
		t.Fatalf("revealing the review should restore the aggregate: got %+v, want %+v", restored, first)
	}
}
