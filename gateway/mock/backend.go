package mock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/freementors/sdk-go/core"
	"github.com/freementors/sdk-go/pkg/crypto"
)

const defaultTokenTTL = 24 * time.Hour

// Backend simulates the mentorship server. It owns credential
// verification, token issuance, and every server-side rule the real
// backend enforces, and it returns the same rejection messages so a
// client cannot tell the two apart.
type Backend struct {
	store     Store
	passwords crypto.PasswordHandler
	secret    []byte
	tokenTTL  time.Duration
}

type BackendOption func(*Backend)

func WithTokenTTL(ttl time.Duration) BackendOption {
	return func(b *Backend) { b.tokenTTL = ttl }
}

func WithPasswordHandler(handler crypto.PasswordHandler) BackendOption {
	return func(b *Backend) { b.passwords = handler }
}

func NewBackend(store Store, secret []byte, opts ...BackendOption) *Backend {
	b := &Backend{
		store:     store,
		passwords: crypto.NewArgon2(),
		secret:    secret,
		tokenTTL:  defaultTokenTTL,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// authenticate resolves a bearer token to its user record.
func (b *Backend) authenticate(ctx context.Context, token string) (*core.User, error) {
	if token == "" {
		return nil, core.RemoteError(core.KindAuthorization, "You must be logged in")
	}
	claims, err := parseToken(b.secret, token)
	if err != nil {
		return nil, err
	}
	user, err := b.store.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, core.RemoteError(core.KindAuthorization, "Invalid token")
	}
	return user, nil
}

func (b *Backend) SignUp(ctx context.Context, input core.SignupInput) (*core.User, error) {
	hash, err := b.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &core.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      core.RoleMentee,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.store.CreateUser(ctx, user, hash); err != nil {
		if errors.Is(err, core.ErrEmailTaken) {
			return nil, core.RemoteError(core.KindConflict, "User with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (b *Backend) Login(ctx context.Context, input core.LoginInput) (string, *core.User, error) {
	user, hash, err := b.store.UserByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, core.RemoteError(core.KindAuthorization, "Please enter valid credentials")
	}
	ok, err := b.passwords.Verify(input.Password, hash)
	if err != nil || !ok {
		return "", nil, core.RemoteError(core.KindAuthorization, "Please enter valid credentials")
	}

	token, err := issueToken(b.secret, user, b.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (b *Backend) Me(ctx context.Context, token string) (*core.User, error) {
	return b.authenticate(ctx, token)
}

func (b *Backend) Users(ctx context.Context, token string) ([]*core.User, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if actor.Role != core.RoleAdmin {
		return nil, core.RemoteError(core.KindAuthorization, "Not authorized")
	}
	return b.store.ListUsers(ctx)
}

func (b *Backend) Mentors(ctx context.Context) ([]*core.Mentor, error) {
	return b.store.ListMentors(ctx)
}

func (b *Backend) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	mentor, err := b.store.MentorByID(ctx, id)
	if err != nil {
		return nil, core.RemoteError(core.KindNotFound, "Mentor not found")
	}
	return mentor, nil
}

// ChangeToMentor promotes a mentee to mentor with an empty mentoring
// profile. There is no demotion.
func (b *Backend) ChangeToMentor(ctx context.Context, token, userID string) (*core.User, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if actor.Role != core.RoleAdmin {
		return nil, core.RemoteError(core.KindAuthorization, "Not authorized")
	}

	user, err := b.store.UserByID(ctx, userID)
	if err != nil {
		return nil, core.RemoteError(core.KindNotFound, "User not found")
	}
	if user.Role == core.RoleMentor {
		return user, nil
	}

	promoted, err := b.store.UpdateUserRole(ctx, userID, core.RoleMentor)
	if err != nil {
		return nil, err
	}
	if err := b.store.CreateMentorProfile(ctx, &core.Mentor{User: *promoted}); err != nil {
		return nil, err
	}
	return promoted, nil
}

func (b *Backend) Sessions(ctx context.Context, token string) ([]*core.Session, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return b.store.SessionsForUser(ctx, actor.ID, actor.Role)
}

func (b *Backend) CreateSession(ctx context.Context, token string, input core.SessionRequest) (*core.Session, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if actor.Role != core.RoleMentee {
		return nil, core.RemoteError(core.KindAuthorization, "Not authorized")
	}
	if err := core.ValidateSessionRequest(input); err != nil {
		return nil, core.RemoteError(core.KindValidation, err.Error())
	}
	if _, err := b.store.MentorByID(ctx, input.MentorID); err != nil {
		return nil, core.RemoteError(core.KindNotFound, "Mentor not found")
	}

	now := time.Now().UTC()
	session := &core.Session{
		ID:            uuid.NewString(),
		MentorID:      input.MentorID,
		MenteeID:      actor.ID,
		Topic:         input.Topic,
		Questions:     input.Questions,
		Status:        core.StatusPending,
		ScheduledDate: input.ScheduledDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := b.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (b *Backend) UpdateSessionStatus(ctx context.Context, token, sessionID string, status core.SessionStatus) (*core.Session, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if actor.Role != core.RoleMentor {
		return nil, core.RemoteError(core.KindAuthorization, "Only mentors can update session status")
	}

	session, err := b.store.SessionByID(ctx, sessionID)
	if err != nil || session.MentorID != actor.ID {
		return nil, core.RemoteError(core.KindNotFound, "Session not found or you are not the mentor for this session")
	}
	if !status.Valid() {
		return nil, core.RemoteError(core.KindValidation, "Invalid status")
	}
	if !core.CanTransition(session.Status, status) {
		return nil, core.RemoteError(core.KindValidation, "Invalid status transition")
	}

	return b.store.UpdateSessionStatus(ctx, sessionID, status)
}

func (b *Backend) MentorReviews(ctx context.Context, mentorID string) ([]*core.Review, error) {
	return b.store.ReviewsForMentor(ctx, mentorID, true)
}

// AllReviews is the moderation view: admins see every review, hidden
// ones included; everyone else only sees visible reviews.
func (b *Backend) AllReviews(ctx context.Context, token string) ([]*core.Review, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	reviews, err := b.store.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role == core.RoleAdmin {
		return reviews, nil
	}
	var visible []*core.Review
	for _, r := range reviews {
		if r.Visible {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

func (b *Backend) CreateReview(ctx context.Context, token string, input core.ReviewInput) (*core.Review, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	session, err := b.store.SessionByID(ctx, input.SessionID)
	if err != nil || session.MenteeID != actor.ID {
		return nil, core.RemoteError(core.KindNotFound, "Session not found or you are not authorized to review it")
	}
	if session.Status != core.StatusCompleted {
		return nil, core.RemoteError(core.KindValidation, "You can only review completed sessions")
	}
	if _, err := b.store.ReviewBySession(ctx, input.SessionID); err == nil {
		return nil, core.RemoteError(core.KindConflict, "Review already exists for this session")
	}
	if err := core.ValidateReviewInput(input); err != nil {
		return nil, core.RemoteError(core.KindValidation, err.Error())
	}

	now := time.Now().UTC()
	review := &core.Review{
		ID:        uuid.NewString(),
		SessionID: input.SessionID,
		MentorID:  session.MentorID,
		MenteeID:  actor.ID,
		Rating:    input.Rating,
		Content:   input.Content,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.store.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	if err := b.recomputeAggregate(ctx, session.MentorID); err != nil {
		return nil, err
	}
	return review, nil
}

func (b *Backend) SetReviewVisibility(ctx context.Context, token, reviewID string, visible bool) (*core.Review, error) {
	actor, err := b.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if actor.Role != core.RoleAdmin {
		return nil, core.RemoteError(core.KindAuthorization, "Only admins can hide reviews")
	}

	review, err := b.store.SetReviewVisibility(ctx, reviewID, visible)
	if err != nil {
		return nil, core.RemoteError(core.KindNotFound, "Review not found")
	}
	if err := b.recomputeAggregate(ctx, review.MentorID); err != nil {
		return nil, err
	}
	return review, nil
}

// recomputeAggregate refreshes the mentor's stored rating summary from
// the visible reviews. A missing mentor profile is tolerated; reviews
// can outlive a profile in seeded test data.
func (b *Backend) recomputeAggregate(ctx context.Context, mentorID string) error {
	visible, err := b.store.ReviewsForMentor(ctx, mentorID, true)
	if err != nil {
		return err
	}
	err = b.store.UpdateMentorAggregate(ctx, mentorID, core.RecomputeMentorAggregate(visible))
	if errors.Is(err, core.ErrMentorNotFound) {
		return nil
	}
	return err
}
