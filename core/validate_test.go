package core

import (
	"errors"
	"testing"
)

func TestValidateSessionRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   SessionRequest
		wantErr error
	}{
		{
			name:    "valid request",
			input:   SessionRequest{MentorID: "m1", Topic: "Career advice please", Questions: "How do I move from IC to tech lead?"},
			wantErr: nil,
		},
		{
			name:    "topic too short",
			input:   SessionRequest{MentorID: "m1", Topic: "Hi", Questions: "How do I move from IC to tech lead?"},
			wantErr: ErrTopicTooShort,
		},
		{
			name:    "topic of only whitespace",
			input:   SessionRequest{MentorID: "m1", Topic: "        ", Questions: "How do I move from IC to tech lead?"},
			wantErr: ErrTopicTooShort,
		},
		{
			name:    "questions too short",
			input:   SessionRequest{MentorID: "m1", Topic: "Career advice", Questions: "help me"},
			wantErr: ErrQuestionsTooShort,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateSessionRequest(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("ValidateSessionRequest() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestValidateReviewInput(t *testing.T) {
	tests := []struct {
		name    string
		input   ReviewInput
		wantErr error
	}{
		{"valid integer rating", ReviewInput{SessionID: "s1", Rating: 5, Content: "Excellent and thorough session"}, nil},
		{"valid half rating", ReviewInput{SessionID: "s1", Rating: 3.5, Content: "Useful but a bit rushed overall"}, nil},
		{"rating below range", ReviewInput{SessionID: "s1", Rating: 0.5, Content: "Excellent and thorough session"}, ErrRatingOutOfRange},
		{"rating above range", ReviewInput{SessionID: "s1", Rating: 5.5, Content: "Excellent and thorough session"}, ErrRatingOutOfRange},
		{"rating off the half step", ReviewInput{SessionID: "s1", Rating: 4.3, Content: "Excellent and thorough session"}, ErrRatingOutOfRange},
		{"content too short", ReviewInput{SessionID: "s1", Rating: 4, Content: "ok thanks"}, ErrContentTooShort},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateReviewInput(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("ValidateReviewInput() = %v, want %v", err, test.wantErr)
			}
		})
	}
}
