package core

import "time"

// Role determines which session and review operations an actor may
// perform. It is never inferred from other fields.
type Role string

const (
	RoleMentee Role = "MENTEE"
	RoleMentor Role = "MENTOR"
	RoleAdmin  Role = "ADMIN"
)

// User represents an identity record in the platform
//
// This is "who someone is" - the role field is what authorization
// decisions are made against
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           Role      `json:"role"`
	Bio            *string   `json:"bio,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Mentor is a User with RoleMentor plus the public mentoring profile.
// Rating and TotalReviews are derived from visible reviews and are
// never edited directly - see RecomputeMentorAggregate.
type Mentor struct {
	User
	Expertise         []string `json:"expertise"`
	Rating            float64  `json:"rating"`
	TotalReviews      int      `json:"totalReviews"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	AvailableDays     []string `json:"availableDays"`
}

// Session is a mentorship engagement between a mentee and a mentor.
// It is created in StatusPending and only ever mutated through the
// status-transition operation.
type Session struct {
	ID            string        `json:"id"`
	MentorID      string        `json:"mentorId"`
	MenteeID      string        `json:"menteeId"`
	Topic         string        `json:"topic"`
	Questions     string        `json:"questions"`
	Status        SessionStatus `json:"status"`
	ScheduledDate *time.Time    `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Review is a mentee's feedback on a completed session. At most one
// review exists per session. Rating and content are immutable once
// created; only the visibility flag is admin-mutable.
type Review struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	MentorID  string    `json:"mentorId"`
	MenteeID  string    `json:"menteeId"`
	Rating    float64   `json:"rating"`
	Content   string    `json:"content"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionRequest is the input to the create-session operation.
type SessionRequest struct {
	MentorID      string     `json:"mentorId"`
	Topic         string     `json:"topic"`
	Questions     string     `json:"questions"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
}

// ReviewInput is the input to the create-review operation.
type ReviewInput struct {
	SessionID string  `json:"sessionId"`
	Rating    float64 `json:"rating"`
	Content   string  `json:"content"`
}

// AuthResult is what a gateway returns from a successful login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Actor is the current authenticated identity, passed explicitly to
// every component that makes authorization decisions. Lifetime is one
// authenticated client session; it is discarded on logout.
type Actor struct {
	User  *User
	Token string
}

// Is reports whether the actor is authenticated and holds the role.
func (a *Actor) Is(role Role) bool {
	return a != nil && a.User != nil && a.User.Role == role
}

// SameUser reports whether the actor is the user with the given id.
func (a *Actor) SameUser(id string) bool {
	return a != nil && a.User != nil && a.User.ID == id
}
