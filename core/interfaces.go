package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// GATEWAY PORT (the backend)
// ============================================

// Gateway is the sole channel to the backend. Two implementations
// exist - a GraphQL endpoint and an in-process simulated backend - and
// callers must depend only on this interface, never on which concrete
// backend is active.
//
// Every failure is returned as an *APIError; a gateway never lets a
// raw transport error or panic escape. Success results use the
// canonical shapes in this package regardless of the wire naming of
// the concrete backend.
type Gateway interface {
	// SignUp registers a new account. The backend does not issue a
	// token on signup; callers log in afterwards.
	SignUp(ctx context.Context, input SignupInput) (*User, error)

	// Login authenticates and persists the bearer token to the token
	// store the gateway was built with, so subsequent calls carry it.
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)

	// Me returns the profile of the authenticated actor.
	Me(ctx context.Context) (*User, error)

	Users(ctx context.Context) ([]*User, error)
	Mentors(ctx context.Context) ([]*Mentor, error)
	MentorByID(ctx context.Context, id string) (*Mentor, error)

	// ChangeToMentor promotes a user to mentor. Admin only; there is
	// no reverse operation.
	ChangeToMentor(ctx context.Context, userID string) (*User, error)

	// Sessions returns the sessions visible to the authenticated
	// actor, in the order the server returns them.
	Sessions(ctx context.Context) ([]*Session, error)
	CreateSession(ctx context.Context, input SessionRequest) (*Session, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status SessionStatus) (*Session, error)

	// MentorReviews returns the visible reviews for one mentor;
	// AllReviews returns every review including hidden ones (admin).
	MentorReviews(ctx context.Context, mentorID string) ([]*Review, error)
	AllReviews(ctx context.Context) ([]*Review, error)
	CreateReview(ctx context.Context, input ReviewInput) (*Review, error)
	SetReviewVisibility(ctx context.Context, reviewID string, visible bool) (*Review, error)
}

// ============================================
// TOKEN STORE PORT (persisted client state)
// ============================================

// TokenStore persists the bearer credential across client restarts.
// Load returns an empty string, not an error, when no token is stored.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// ============================================
// NOTIFIER PORT (user-visible messages)
// ============================================

// Notifier receives exactly one call per finished state-changing
// operation: Success for a confirmed mutation, Failure for any failed
// operation. Pure reads only report failures.
type Notifier interface {
	Success(message string)
	Failure(err error)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(error)  {}
