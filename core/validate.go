package core

import (
	"math"
	"strings"
)

const (
	MinTopicLength     = 5
	MinQuestionsLength = 20
	MinContentLength   = 10
	MinRating          = 1
	MaxRating          = 5
)

// ValidateSessionRequest checks a create-session input. Lengths are
// measured after trimming surrounding whitespace.
func ValidateSessionRequest(input SessionRequest) error {
	if len(strings.TrimSpace(input.Topic)) < MinTopicLength {
		return ErrTopicTooShort
	}
	if len(strings.TrimSpace(input.Questions)) < MinQuestionsLength {
		return ErrQuestionsTooShort
	}
	return nil
}

// ValidateReviewInput checks a create-review input. Ratings are
// accepted in [1,5] on integer or half-integer steps.
func ValidateReviewInput(input ReviewInput) error {
	if !validRating(input.Rating) {
		return ErrRatingOutOfRange
	}
	if len(strings.TrimSpace(input.Content)) < MinContentLength {
		return ErrContentTooShort
	}
	return nil
}

func validRating(r float64) bool {
	if r < MinRating || r > MaxRating {
		return false
	}
	doubled := r * 2
	return doubled == math.Trunc(doubled)
}
