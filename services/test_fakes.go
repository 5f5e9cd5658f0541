package services

import (
	"context"
	"sync"

	"github.com/freementors/sdk-go/core"
)

// FakeGateway is a test-only fake implementing core.Gateway. It counts
// calls per operation and exposes error fields and hooks for behavior
// injection.
type FakeGateway struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error
	hooks map[string]func() // runs inside the call, before the result

	LoginResult      *core.AuthResult
	MeResult         *core.User
	UsersResult      []*core.User
	MentorsResult    []*core.Mentor
	MentorResult     *core.Mentor
	PromotedResult   *core.User
	SessionsResult   []*core.Session
	CreatedSession   *core.Session
	UpdatedSession   *core.Session
	ReviewsResult    []*core.Review
	AllReviewsResult []*core.Review
	CreatedReview    *core.Review
	UpdatedReview    *core.Review
}

var _ core.Gateway = (*FakeGateway)(nil)

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		calls: make(map[string]int),
		errs:  make(map[string]error),
		hooks: make(map[string]func()),
	}
}

func (f *FakeGateway) SetError(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[op] = err
}

func (f *FakeGateway) SetHook(op string, hook func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[op] = hook
}

func (f *FakeGateway) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// enter records the call and returns the injected error and hook.
func (f *FakeGateway) enter(op string) (error, func()) {
	f.mu.Lock()
	f.calls[op]++
	err := f.errs[op]
	hook := f.hooks[op]
	f.mu.Unlock()
	return err, hook
}

func (f *FakeGateway) SignUp(ctx context.Context, input core.SignupInput) (*core.User, error) {
	err, hook := f.enter("SignUp")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return &core.User{ID: "new-user", Email: input.Email, FirstName: input.FirstName, LastName: input.LastName, Role: core.RoleMentee}, nil
}

func (f *FakeGateway) Login(ctx context.Context, input core.LoginInput) (*core.AuthResult, error) {
	err, hook := f.enter("Login")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.LoginResult, nil
}

func (f *FakeGateway) Me(ctx context.Context) (*core.User, error) {
	err, hook := f.enter("Me")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.MeResult, nil
}

func (f *FakeGateway) Users(ctx context.Context) ([]*core.User, error) {
	err, hook := f.enter("Users")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.UsersResult, nil
}

func (f *FakeGateway) Mentors(ctx context.Context) ([]*core.Mentor, error) {
	err, hook := f.enter("Mentors")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.MentorsResult, nil
}

func (f *FakeGateway) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	err, hook := f.enter("MentorByID")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if f.MentorResult != nil {
		return f.MentorResult, nil
	}
	for _, m := range f.MentorsResult {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, core.RemoteError(core.KindNotFound, "Mentor not found")
}

func (f *FakeGateway) ChangeToMentor(ctx context.Context, userID string) (*core.User, error) {
	err, hook := f.enter("ChangeToMentor")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.PromotedResult, nil
}

func (f *FakeGateway) Sessions(ctx context.Context) ([]*core.Session, error) {
	err, hook := f.enter("Sessions")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.SessionsResult, nil
}

func (f *FakeGateway) CreateSession(ctx context.Context, input core.SessionRequest) (*core.Session, error) {
	err, hook := f.enter("CreateSession")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if f.CreatedSession != nil {
		return f.CreatedSession, nil
	}
	return &core.Session{
		ID:        "created",
		MentorID:  input.MentorID,
		Topic:     input.Topic,
		Questions: input.Questions,
		Status:    core.StatusPending,
	}, nil
}

func (f *FakeGateway) UpdateSessionStatus(ctx context.Context, sessionID string, status core.SessionStatus) (*core.Session, error) {
	err, hook := f.enter("UpdateSessionStatus")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if f.UpdatedSession != nil {
		return f.UpdatedSession, nil
	}
	return &core.Session{ID: sessionID, Status: status}, nil
}

func (f *FakeGateway) MentorReviews(ctx context.Context, mentorID string) ([]*core.Review, error) {
	err, hook := f.enter("MentorReviews")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.ReviewsResult, nil
}

func (f *FakeGateway) AllReviews(ctx context.Context) ([]*core.Review, error) {
	err, hook := f.enter("AllReviews")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.AllReviewsResult, nil
}

func (f *FakeGateway) CreateReview(ctx context.Context, input core.ReviewInput) (*core.Review, error) {
	err, hook := f.enter("CreateReview")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if f.CreatedReview != nil {
		return f.CreatedReview, nil
	}
	return &core.Review{ID: "created-review", SessionID: input.SessionID, Rating: input.Rating, Content: input.Content, Visible: true}, nil
}

func (f *FakeGateway) SetReviewVisibility(ctx context.Context, reviewID string, visible bool) (*core.Review, error) {
	err, hook := f.enter("SetReviewVisibility")
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return f.UpdatedReview, nil
}

// FakeNotifier is a test-only notifier recording every notification.
type FakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []error
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *FakeNotifier) Failure(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, err)
}

func (n *FakeNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.successes))
	copy(out, n.successes)
	return out
}

func (n *FakeNotifier) Failures() []error {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]error, len(n.failures))
	copy(out, n.failures)
	return out
}
