package services

import (
	"context"
	"strings"
	"sync"

	"github.com/freementors/sdk-go/core"
)

// AuthService owns the current actor (user identity + bearer token)
// for one authenticated client session. It is the explicit auth
// context the other services consult for authorization decisions -
// there is no ambient global state.
type AuthService struct {
	gateway core.Gateway
	tokens  core.TokenStore

	mu    sync.RWMutex
	actor *core.Actor
}

func NewAuthService(gateway core.Gateway, tokens core.TokenStore) *AuthService {
	return &AuthService{gateway: gateway, tokens: tokens}
}

// SignUp registers a new account. The backend issues no token on
// signup; callers follow up with Login.
func (s *AuthService) SignUp(ctx context.Context, input core.SignupInput) (*core.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	return s.gateway.SignUp(ctx, input)
}

// Login authenticates against the gateway and installs the returned
// identity as the current actor. The gateway persists the bearer
// token to the token store as part of its Login contract.
func (s *AuthService) Login(ctx context.Context, input core.LoginInput) (*core.Actor, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	result, err := s.gateway.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	actor := &core.Actor{User: result.User, Token: result.Token}

	s.mu.Lock()
	s.actor = actor
	s.mu.Unlock()

	return actor, nil
}

// Resume rehydrates the actor from a previously persisted token, the
// way the original client restored its session on page load. Returns
// ErrNotLoggedIn when no token is stored.
func (s *AuthService) Resume(ctx context.Context) (*core.Actor, error) {
	token, err := s.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, core.ErrNotLoggedIn
	}

	user, err := s.gateway.Me(ctx)
	if err != nil {
		return nil, err
	}

	actor := &core.Actor{User: user, Token: token}

	s.mu.Lock()
	s.actor = actor
	s.mu.Unlock()

	return actor, nil
}

// Logout clears the persisted token and drops the current actor.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.actor = nil
	s.mu.Unlock()

	return s.tokens.Clear()
}

// Current returns the authenticated actor, or nil when logged out.
func (s *AuthService) Current() *core.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actor
}
