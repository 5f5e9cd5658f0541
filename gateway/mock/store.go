// Package mock is a self-contained simulation of the mentorship
// backend. It enforces the same rules and returns the same error
// messages as the real server, which makes it usable both as an
// offline gateway for development and as the engine behind a local
// HTTP server.
package mock

import (
	"context"

	"github.com/freementors/sdk-go/core"
)

// Store is the persistence port the simulated backend runs on. The
// in-memory implementation lives in this package; a Postgres
// implementation lives in adapters/pgx.
//
// Not-found conditions map onto the core sentinel errors
// (core.ErrUserNotFound and friends); CreateUser reports a duplicate
// email as core.ErrEmailTaken.
type Store interface {
	CreateUser(ctx context.Context, user *core.User, passwordHash string) error
	UserByEmail(ctx context.Context, email string) (*core.User, string, error)
	UserByID(ctx context.Context, id string) (*core.User, error)
	ListUsers(ctx context.Context) ([]*core.User, error)
	UpdateUserRole(ctx context.Context, id string, role core.Role) (*core.User, error)

	CreateMentorProfile(ctx context.Context, mentor *core.Mentor) error
	ListMentors(ctx context.Context) ([]*core.Mentor, error)
	MentorByID(ctx context.Context, id string) (*core.Mentor, error)
	UpdateMentorAggregate(ctx context.Context, mentorID string, agg core.Aggregate) error

	CreateSession(ctx context.Context, session *core.Session) error
	SessionByID(ctx context.Context, id string) (*core.Session, error)
	SessionsForUser(ctx context.Context, userID string, role core.Role) ([]*core.Session, error)
	UpdateSessionStatus(ctx context.Context, id string, status core.SessionStatus) (*core.Session, error)

	CreateReview(ctx context.Context, review *core.Review) error
	ReviewByID(ctx context.Context, id string) (*core.Review, error)
	ReviewBySession(ctx context.Context, sessionID string) (*core.Review, error)
	ReviewsForMentor(ctx context.Context, mentorID string, visibleOnly bool) ([]*core.Review, error)
	ListReviews(ctx context.Context) ([]*core.Review, error)
	SetReviewVisibility(ctx context.Context, id string, visible bool) (*core.Review, error)
}
