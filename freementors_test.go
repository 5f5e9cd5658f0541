package freementors

import (
	"context"
	"errors"
	"testing"

	"github.com/freementors/sdk-go/gateway/mock"
	"github.com/freementors/sdk-go/pkg/crypto"
	"github.com/freementors/sdk-go/pkg/tokenstore"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrGatewayRequired) {
		t.Fatalf("New() without gateway = %v, want ErrGatewayRequired", err)
	}
}

// newLocalClient wires a Client over a freshly seeded simulated
// backend. Gateway and client share one token store so a Login is
// visible to both.
func newLocalClient(t *testing.T) *Client {
	t.Helper()
	passwords := &crypto.Argon2{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	store := mock.NewMemoryStore()
	if err := mock.Seed(context.Background(), store, passwords); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	backend := mock.NewBackend(store, []byte("test-secret"), mock.WithPasswordHandler(passwords))
	tokens := tokenstore.NewMemory()

	client, err := New(Config{
		Gateway:    mock.NewGateway(backend, tokens),
		TokenStore: tokens,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// The full mentorship arc against the simulated backend: login,
// request, accept, complete, review, moderate.
func TestClient_EndToEnd(t *testing.T) {
	ctx := context.Background()

	mentee := newLocalClient(t)
	if _, err := mentee.Auth.Login(ctx, LoginInput{Email: "johndoe@example.com", Password: mock.SeedPassword}); err != nil {
		t.Fatalf("mentee login: %v", err)
	}
	mentors, err := mentee.Directory.LoadMentors(ctx)
	if err != nil {
		t.Fatalf("LoadMentors() error = %v", err)
	}
	if len(mentors) != 5 {
		t.Fatalf("mentors = %d, want 5 seeded profiles", len(mentors))
	}

	session, err := mentee.Sessions.RequestSession(ctx, SessionRequest{
		MentorID:  "5",
		Topic:     "Portfolio review",
		Questions: "Could you walk through my design portfolio with me?",
	})
	if err != nil {
		t.Fatalf("RequestSession() error = %v", err)
	}
	if session.Status != StatusPending {
		t.Fatalf("new session status = %s, want PENDING", session.Status)
	}

	// The mentor runs their own client session against the same
	// backend state, which is how two parties actually interact.
	passwords := &crypto.Argon2{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	store := mock.NewMemoryStore()
	if err := mock.Seed(ctx, store, passwords); err != nil {
		t.Fatal(err)
	}
	backend := mock.NewBackend(store, []byte("test-secret"), mock.WithPasswordHandler(passwords))

	shared := func(email string) *Client {
		tokens := tokenstore.NewMemory()
		c, err := New(Config{Gateway: mock.NewGateway(backend, tokens), TokenStore: tokens})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := c.Auth.Login(ctx, LoginInput{Email: email, Password: mock.SeedPassword}); err != nil {
			t.Fatalf("login %s: %v", email, err)
		}
		return c
	}

	john := shared("johndoe@example.com")
	sarah := shared("sarah.johnson@example.com")
	admin := shared("admin@freementors.com")

	// Sarah works the seeded accepted session to completion
	if _, err := sarah.Sessions.LoadSessions(ctx); err != nil {
		t.Fatal(err)
	}
	completed, err := sarah.Sessions.TransitionSession(ctx, "1", StatusCompleted)
	if err != nil {
		t.Fatalf("TransitionSession() error = %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", completed.Status)
	}

	// John reviews it
	if _, err := john.Sessions.LoadSessions(ctx); err != nil {
		t.Fatal(err)
	}
	review, err := john.Sessions.SubmitReview(ctx, ReviewInput{SessionID: "1", Rating: 5, Content: "Sarah was extremely helpful!"})
	if err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	// The backend recomputed Sarah's aggregate from her one visible review
	if _, err := john.Directory.FetchMentor(ctx, "3"); err != nil {
		t.Fatal(err)
	}
	mentor, ok := john.Directory.MentorByID("3")
	if !ok || mentor.Rating != 5 || mentor.TotalReviews != 1 {
		t.Errorf("aggregate = (%v, %d), want (5, 1)", mentor.Rating, mentor.TotalReviews)
	}

	// The admin hides it and the public listing empties
	if _, err := admin.Sessions.LoadAllReviews(ctx); err != nil {
		t.Fatal(err)
	}
	hidden, err := admin.Sessions.HideReview(ctx, review.ID)
	if err != nil {
		t.Fatalf("HideReview() error = %v", err)
	}
	if hidden.Visible {
		t.Error("review should be hidden")
	}
	visible, err := john.Sessions.LoadMentorReviews(ctx, "3")
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 0 {
		t.Errorf("visible reviews = %d, want 0 after moderation", len(visible))
	}
}

func TestClient_ResumeFromStoredToken(t *testing.T) {
	ctx := context.Background()
	passwords := &crypto.Argon2{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	store := mock.NewMemoryStore()
	if err := mock.Seed(ctx, store, passwords); err != nil {
		t.Fatal(err)
	}
	backend := mock.NewBackend(store, []byte("test-secret"), mock.WithPasswordHandler(passwords))
	tokens := tokenstore.NewMemory()

	first, err := New(Config{Gateway: mock.NewGateway(backend, tokens), TokenStore: tokens})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.Auth.Login(ctx, LoginInput{Email: "johndoe@example.com", Password: mock.SeedPassword}); err != nil {
		t.Fatal(err)
	}

	// A second client over the same token store resumes the session
	second, err := New(Config{Gateway: mock.NewGateway(backend, tokens), TokenStore: tokens})
	if err != nil {
		t.Fatal(err)
	}
	actor, err := second.Auth.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if actor.User.ID != "2" {
		t.Errorf("resumed actor = %+v, want John Doe", actor.User)
	}

	if err := second.Auth.Logout(); err != nil {
		t.Fatal(err)
	}
	if _, err := second.Auth.Resume(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("Resume() after Logout() = %v, want ErrNotLoggedIn", err)
	}
}
