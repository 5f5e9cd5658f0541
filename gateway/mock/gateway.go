package mock

import (
	"context"

	"github.com/freementors/sdk-go/core"
)

// Gateway binds a Backend and a token store into the core.Gateway
// shape, so the simulated backend is a drop-in replacement for the
// GraphQL gateway. Login persists the issued token; every
// authenticated call reads it back from the store.
type Gateway struct {
	backend *Backend
	tokens  core.TokenStore
}

var _ core.Gateway = (*Gateway)(nil)

func NewGateway(backend *Backend, tokens core.TokenStore) *Gateway {
	return &Gateway{backend: backend, tokens: tokens}
}

func (g *Gateway) token() string {
	token, err := g.tokens.Load()
	if err != nil {
		return ""
	}
	return token
}

func (g *Gateway) SignUp(ctx context.Context, input core.SignupInput) (*core.User, error) {
	return g.backend.SignUp(ctx, input)
}

func (g *Gateway) Login(ctx context.Context, input core.LoginInput) (*core.AuthResult, error) {
	token, user, err := g.backend.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := g.tokens.Save(token); err != nil {
		return nil, core.TransportError(err)
	}
	return &core.AuthResult{Token: token, User: user}, nil
}

func (g *Gateway) Me(ctx context.Context) (*core.User, error) {
	return g.backend.Me(ctx, g.token())
}

func (g *Gateway) Users(ctx context.Context) ([]*core.User, error) {
	return g.backend.Users(ctx, g.token())
}

func (g *Gateway) Mentors(ctx context.Context) ([]*core.Mentor, error) {
	return g.backend.Mentors(ctx)
}

func (g *Gateway) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	return g.backend.MentorByID(ctx, id)
}

func (g *Gateway) ChangeToMentor(ctx context.Context, userID string) (*core.User, error) {
	return g.backend.ChangeToMentor(ctx, g.token(), userID)
}

func (g *Gateway) Sessions(ctx context.Context) ([]*core.Session, error) {
	return g.backend.Sessions(ctx, g.token())
}

func (g *Gateway) CreateSession(ctx context.Context, input core.SessionRequest) (*core.Session, error) {
	return g.backend.CreateSession(ctx, g.token(), input)
}

func (g *Gateway) UpdateSessionStatus(ctx context.Context, sessionID string, status core.SessionStatus) (*core.Session, error) {
	return g.backend.UpdateSessionStatus(ctx, g.token(), sessionID, status)
}

func (g *Gateway) MentorReviews(ctx context.Context, mentorID string) ([]*core.Review, error) {
	return g.backend.MentorReviews(ctx, mentorID)
}

func (g *Gateway) AllReviews(ctx context.Context) ([]*core.Review, error) {
	return g.backend.AllReviews(ctx, g.token())
}

func (g *Gateway) CreateReview(ctx context.Context, input core.ReviewInput) (*core.Review, error) {
	return g.backend.CreateReview(ctx, g.token(), input)
}

func (g *Gateway) SetReviewVisibility(ctx context.Context, reviewID string, visible bool) (*core.Review, error) {
	return g.backend.SetReviewVisibility(ctx, g.token(), reviewID, visible)
}
