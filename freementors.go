// Package freementors is the client SDK for the Free Mentors
// mentorship platform: mentees request sessions from mentors, mentors
// move those sessions through their lifecycle, mentees review
// completed sessions, and admins moderate reviews and promote users.
//
// The package re-exports the domain vocabulary and wires the services
// together; the behavior lives in core and services, and the backend
// transports live under gateway.
package freementors

import (
	"github.com/freementors/sdk-go/core"
	"github.com/freementors/sdk-go/pkg/crypto"
	"github.com/freementors/sdk-go/pkg/tokenstore"
	"github.com/freementors/sdk-go/services"
)

// interfaces
type (
	Gateway    = core.Gateway
	TokenStore = core.TokenStore
	Notifier   = core.Notifier

	PasswordHandler = crypto.PasswordHandler
)

type (
	Role          = core.Role
	SessionStatus = core.SessionStatus

	User       = core.User
	Mentor     = core.Mentor
	Session    = core.Session
	Review     = core.Review
	Actor      = core.Actor
	Aggregate  = core.Aggregate
	AuthResult = core.AuthResult
	APIError   = core.APIError

	SignupInput    = core.SignupInput
	LoginInput     = core.LoginInput
	SessionRequest = core.SessionRequest
	ReviewInput    = core.ReviewInput
)

const (
	RoleMentee = core.RoleMentee
	RoleMentor = core.RoleMentor
	RoleAdmin  = core.RoleAdmin

	StatusPending   = core.StatusPending
	StatusAccepted  = core.StatusAccepted
	StatusDeclined  = core.StatusDeclined
	StatusCompleted = core.StatusCompleted
)

// Constructors & helpers (convenience re-exports)
var (
	NewMemoryTokenStore = tokenstore.NewMemory
	NewFileTokenStore   = tokenstore.NewFile
	NewArgon2           = crypto.NewArgon2

	CanTransition            = core.CanTransition
	RecomputeMentorAggregate = core.RecomputeMentorAggregate
	AsAPIError               = core.AsAPIError
)

var (
	ErrNotLoggedIn  = core.ErrNotLoggedIn
	ErrUnauthorized = core.ErrUnauthorized
)

var (
	ErrInvalidTransition   = core.ErrInvalidTransition
	ErrOperationInProgress = core.ErrOperationInProgress
	ErrSessionNotFound     = core.ErrSessionNotFound
	ErrSessionNotCompleted = core.ErrSessionNotCompleted
	ErrAlreadyReviewed     = core.ErrAlreadyReviewed
	ErrReviewNotFound      = core.ErrReviewNotFound
	ErrReviewHidden        = core.ErrReviewHidden
	ErrMentorNotFound      = core.ErrMentorNotFound
	ErrUserNotFound        = core.ErrUserNotFound
)

var (
	ErrEmailRequired     = core.ErrEmailRequired
	ErrPasswordRequired  = core.ErrPasswordRequired
	ErrTopicTooShort     = core.ErrTopicTooShort
	ErrQuestionsTooShort = core.ErrQuestionsTooShort
	ErrContentTooShort   = core.ErrContentTooShort
	ErrRatingOutOfRange  = core.ErrRatingOutOfRange
)

var (
	ErrGatewayRequired = core.ErrGatewayRequired
)

// Config wires a Client. Gateway is required; TokenStore defaults to
// an in-memory store and Notifier to a no-op.
type Config struct {
	Gateway    Gateway
	TokenStore TokenStore
	Notifier   Notifier
}

// Client is one authenticated client session over a backend. Auth
// owns the actor, Directory the mentor and user records, and Sessions
// the session and review lifecycle.
type Client struct {
	Auth      *services.AuthService
	Directory *services.DirectoryService
	Sessions  *services.LifecycleManager
}

func New(config Config) (*Client, error) {
	if config.Gateway == nil {
		return nil, ErrGatewayRequired
	}

	// Set Defaults
	if config.TokenStore == nil {
		config.TokenStore = tokenstore.NewMemory()
	}
	if config.Notifier == nil {
		config.Notifier = core.NopNotifier{}
	}

	auth := services.NewAuthService(config.Gateway, config.TokenStore)
	directory := services.NewDirectoryService(config.Gateway, auth, config.Notifier)
	sessions := services.NewLifecycleManager(config.Gateway, auth, directory, config.Notifier)

	return &Client{
		Auth:      auth,
		Directory: directory,
		Sessions:  sessions,
	}, nil
}
