package graphql

import (
	"strings"
	"time"

	"github.com/freementors/sdk-go/core"
)

// The backend serves lowercase role and status strings and names the
// visibility flag isVisible. Everything is normalized to the canonical
// client vocabulary here.

type wireUser struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	UserType   string  `json:"userType"`
	Bio        *string `json:"bio"`
	Expertise  *string `json:"expertise"`
	Occupation *string `json:"occupation"`
}

type wireParty struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type wireSession struct {
	ID        string    `json:"id"`
	Mentor    wireParty `json:"mentor"`
	Mentee    wireParty `json:"mentee"`
	Topic     string    `json:"topic"`
	Questions string    `json:"questions"`
	Status    string    `json:"status"`
}

type wireReview struct {
	ID      string  `json:"id"`
	Session struct {
		ID     string    `json:"id"`
		Mentor wireParty `json:"mentor"`
		Mentee wireParty `json:"mentee"`
	} `json:"session"`
	Rating    float64 `json:"rating"`
	Content   string  `json:"content"`
	IsVisible bool    `json:"isVisible"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func roleFromWire(userType string) core.Role {
	switch strings.ToLower(userType) {
	case "mentor":
		return core.RoleMentor
	case "admin":
		return core.RoleAdmin
	}
	return core.RoleMentee
}

func statusFromWire(status string) core.SessionStatus {
	return core.SessionStatus(strings.ToUpper(status))
}

func statusToWire(status core.SessionStatus) string {
	return strings.ToLower(string(status))
}

func (w wireUser) toUser() *core.User {
	return &core.User{
		ID:        w.ID,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Role:      roleFromWire(w.UserType),
		Bio:       w.Bio,
	}
}

func (w wireUser) toMentor() *core.Mentor {
	m := &core.Mentor{User: *w.toUser()}
	// Expertise travels as one comma-separated string
	if w.Expertise != nil {
		for _, part := range strings.Split(*w.Expertise, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				m.Expertise = append(m.Expertise, trimmed)
			}
		}
	}
	return m
}

func (w wireSession) toSession() *core.Session {
	return &core.Session{
		ID:        w.ID,
		MentorID:  w.Mentor.ID,
		MenteeID:  w.Mentee.ID,
		Topic:     w.Topic,
		Questions: w.Questions,
		Status:    statusFromWire(w.Status),
	}
}

func (w wireReview) toReview() *core.Review {
	return &core.Review{
		ID:        w.ID,
		SessionID: w.Session.ID,
		MentorID:  w.Session.Mentor.ID,
		MenteeID:  w.Session.Mentee.ID,
		Rating:    w.Rating,
		Content:   w.Content,
		Visible:   w.IsVisible,
		CreatedAt: parseWireTime(w.CreatedAt),
		UpdatedAt: parseWireTime(w.UpdatedAt),
	}
}

// parseWireTime tolerates the absence of a timestamp and both
// timestamp shapes the backend has served.
func parseWireTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999", value); err == nil {
		return t
	}
	return time.Time{}
}
