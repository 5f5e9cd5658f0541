package core

import "errors"

// Client-detected conditions. These are resolved locally and never
// reach the gateway.
var (
	// Authorization errors
	ErrNotLoggedIn  = errors.New("you must be logged in")
	ErrUnauthorized = errors.New("not authorized")

	// Lifecycle errors
	ErrInvalidTransition   = errors.New("invalid session status transition")
	ErrOperationInProgress = errors.New("an operation for this session is already in progress")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotCompleted = errors.New("you can only review completed sessions")
	ErrAlreadyReviewed     = errors.New("review already exists for this session")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewHidden        = errors.New("review is already hidden")
	ErrMentorNotFound      = errors.New("mentor not found")
	ErrUserNotFound        = errors.New("user not found")
)

// Validation errors (client input)
var (
	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrTopicTooShort     = errors.New("topic must be at least 5 characters")
	ErrQuestionsTooShort = errors.New("questions must be at least 20 characters")
	ErrContentTooShort   = errors.New("review content must be at least 10 characters")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
)

// Storage errors (simulated backend)
var (
	ErrEmailTaken = errors.New("a user with this email already exists")
)

// Config errors (client wiring)
var (
	ErrGatewayRequired = errors.New("gateway is required")
)

// ErrorKind buckets a remote failure. Validation and Authorization are
// normally decided client-side; a gateway still uses them when the
// server rejects for those reasons.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindConflict      ErrorKind = "conflict"
	KindTransport     ErrorKind = "transport"
	KindNotFound      ErrorKind = "not_found"
)

// APIError is the structured error every gateway returns for a remote
// failure. Gateways are contractually required to catch and translate:
// the lifecycle manager never sees a raw transport error, and the
// message is surfaced to callers verbatim.
type APIError struct {
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	Kind        ErrorKind           `json:"-"`
}

func (e *APIError) Error() string { return e.Message }

// RemoteError builds an APIError for a server-side rejection.
func RemoteError(kind ErrorKind, message string) *APIError {
	return &APIError{Message: message, Kind: kind}
}

// TransportError wraps a network-level failure. These are the only
// remote errors a caller may sensibly retry.
func TransportError(err error) *APIError {
	return &APIError{Message: err.Error(), Kind: KindTransport}
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
