package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freementors/sdk-go/core"
	"github.com/freementors/sdk-go/pkg/tokenstore"
)

// graphqlHandler answers each POST with the next queued body and
// records the requests it saw.
type graphqlHandler struct {
	responses []string
	requests  []*http.Request
	bodies    []map[string]interface{}
}

func (h *graphqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	h.requests = append(h.requests, r)
	h.bodies = append(h.bodies, body)

	resp := `{"data":{}}`
	if len(h.responses) > 0 {
		resp = h.responses[0]
		h.responses = h.responses[1:]
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(resp))
}

func newTestClient(t *testing.T, handler *graphqlHandler) (*Client, core.TokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	tokens := tokenstore.NewMemory()
	return NewClient(server.URL, tokens, WithHTTPClient(server.Client())), tokens
}

// Requirement: Login persists the issued token before fetching the
// identity, so the identity request already carries the bearer header.
func TestClient_Login(t *testing.T) {
	handler := &graphqlHandler{responses: []string{
		`{"data":{"tokenAuth":{"token":"jwt-abc"}}}`,
		`{"data":{"me":{"id":"u1","email":"mentee@example.com","firstName":"John","lastName":"Doe","userType":"mentee"}}}`,
	}}
	client, tokens := newTestClient(t, handler)

	result, err := client.Login(context.Background(), core.LoginInput{Email: "mentee@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token != "jwt-abc" || result.User.ID != "u1" || result.User.Role != core.RoleMentee {
		t.Errorf("Login() = %+v, want the issued token and normalized identity", result)
	}

	stored, err := tokens.Load()
	if err != nil {
		t.Fatal(err)
	}
	if stored != "jwt-abc" {
		t.Errorf("stored token = %q, want jwt-abc", stored)
	}
	if len(handler.requests) != 2 {
		t.Fatalf("requests = %d, want tokenAuth then me", len(handler.requests))
	}
	if got := handler.requests[1].Header.Get("Authorization"); got != "Bearer jwt-abc" {
		t.Errorf("identity request Authorization = %q, want the fresh bearer token", got)
	}
}

func TestClient_Sessions_NormalizesWireShape(t *testing.T) {
	handler := &graphqlHandler{responses: []string{
		`{"data":{"userSessions":[
			{"id":"s1","mentor":{"id":"k1"},"mentee":{"id":"m1"},"topic":"Career advice","questions":"Where do I start?","status":"pending"},
			{"id":"s2","mentor":{"id":"k1"},"mentee":{"id":"m1"},"topic":"Review my CV","questions":"Is this readable?","status":"completed"}
		]}}`,
	}}
	client, tokens := newTestClient(t, handler)
	if err := tokens.Save("jwt-abc"); err != nil {
		t.Fatal(err)
	}

	sessions, err := client.Sessions(context.Background())
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Sessions() = %d sessions, want 2", len(sessions))
	}
	first := sessions[0]
	if first.Status != core.StatusPending || first.MentorID != "k1" || first.MenteeID != "m1" {
		t.Errorf("normalized session = %+v, want uppercase status and flattened party ids", first)
	}
	if sessions[1].Status != core.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", sessions[1].Status)
	}
	if got := handler.requests[0].Header.Get("Authorization"); got != "Bearer jwt-abc" {
		t.Errorf("Authorization = %q, want the stored bearer token", got)
	}
}

func TestClient_UpdateSessionStatus_SendsWireStatus(t *testing.T) {
	handler := &graphqlHandler{responses: []string{
		`{"data":{"updateSessionStatus":{"session":{"id":"s1","mentor":{"id":"k1"},"mentee":{"id":"m1"},"topic":"t","questions":"q","status":"accepted"}}}}`,
	}}
	client, _ := newTestClient(t, handler)

	session, err := client.UpdateSessionStatus(context.Background(), "s1", core.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateSessionStatus() error = %v", err)
	}
	if session.Status != core.StatusAccepted {
		t.Errorf("status = %s, want ACCEPTED", session.Status)
	}

	vars, _ := handler.bodies[0]["variables"].(map[string]interface{})
	if vars["status"] != "accepted" {
		t.Errorf("wire status = %v, want lowercase accepted", vars["status"])
	}
}

func TestClient_MentorReviews_NormalizesVisibility(t *testing.T) {
	handler := &graphqlHandler{responses: []string{
		`{"data":{"mentorReviews":[
			{"id":"r1","session":{"id":"s1","mentor":{"id":"k1"},"mentee":{"id":"m1"}},"rating":4,"content":"Great advice","isVisible":true,"createdAt":"2025-03-01T10:00:00+00:00"}
		]}}`,
	}}
	client, _ := newTestClient(t, handler)

	reviews, err := client.MentorReviews(context.Background(), "k1")
	if err != nil {
		t.Fatalf("MentorReviews() error = %v", err)
	}
	r := reviews[0]
	if !r.Visible || r.MentorID != "k1" || r.SessionID != "s1" {
		t.Errorf("normalized review = %+v, want Visible and flattened ids", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("createdAt should be parsed")
	}
}

// Requirement: a server-side rejection surfaces the message verbatim
// as an APIError; a network failure becomes a Transport error.
func TestClient_ErrorClassification(t *testing.T) {
	t.Run("server rejection", func(t *testing.T) {
		handler := &graphqlHandler{responses: []string{
			`{"errors":[{"message":"Review already exists for this session"}]}`,
		}}
		client, _ := newTestClient(t, handler)

		_, err := client.CreateReview(context.Background(), core.ReviewInput{SessionID: "s1", Rating: 5, Content: "Excellent session"})
		apiErr, ok := core.AsAPIError(err)
		if !ok {
			t.Fatalf("error = %v, want an APIError", err)
		}
		if apiErr.Kind != core.KindConflict || apiErr.Message != "Review already exists for this session" {
			t.Errorf("APIError = %+v, want the Conflict message verbatim", apiErr)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		tokens := tokenstore.NewMemory()
		client := NewClient("http://127.0.0.1:1", tokens)

		_, err := client.Me(context.Background())
		apiErr, ok := core.AsAPIError(err)
		if !ok || apiErr.Kind != core.KindTransport {
			t.Fatalf("error = %v, want a Transport APIError", err)
		}
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		message string
		want    core.ErrorKind
	}{
		{"Not authorized", core.KindAuthorization},
		{"You must be logged in", core.KindAuthorization},
		{"Please enter valid credentials", core.KindAuthorization},
		{"Signature has expired", core.KindAuthorization},
		{"Mentor not found", core.KindNotFound},
		{"User matching query does not exist", core.KindNotFound},
		{"A user with this email already exists", core.KindConflict},
		{"Rating must be between 1 and 5", core.KindValidation},
		{"Cannot review an incomplete session", core.KindValidation},
		{"Something unexpected", core.KindConflict},
	}

	for _, test := range tests {
		if got := kindOf(test.message); got != test.want {
			t.Errorf("kindOf(%q) = %s, want %s", test.message, got, test.want)
		}
	}
}

func TestWireNormalization(t *testing.T) {
	if got := roleFromWire("admin"); got != core.RoleAdmin {
		t.Errorf("roleFromWire(admin) = %s", got)
	}
	if got := roleFromWire("MENTOR"); got != core.RoleMentor {
		t.Errorf("roleFromWire(MENTOR) = %s", got)
	}
	if got := roleFromWire("anything-else"); got != core.RoleMentee {
		t.Errorf("roleFromWire fallback = %s, want MENTEE", got)
	}

	expertise := "Go, Distributed Systems , ,Databases"
	mentor := wireUser{ID: "k1", UserType: "mentor", Expertise: &expertise}.toMentor()
	want := []string{"Go", "Distributed Systems", "Databases"}
	if len(mentor.Expertise) != len(want) {
		t.Fatalf("expertise = %v, want %v", mentor.Expertise, want)
	}
	for i := range want {
		if mentor.Expertise[i] != want[i] {
			t.Errorf("expertise[%d] = %q, want %q", i, mentor.Expertise[i], want[i])
		}
	}

	if !parseWireTime("").IsZero() {
		t.Error("empty timestamp should parse to zero time")
	}
	if parseWireTime("2025-03-01T10:00:00.123456").IsZero() {
		t.Error("microsecond timestamp without zone should parse")
	}
}

func TestClassify_TransportPassthrough(t *testing.T) {
	apiErr := classify(errors.New("Post \"http://x\": dial tcp: connection refused"))
	if apiErr.Kind != core.KindTransport {
		t.Errorf("Kind = %s, want transport", apiErr.Kind)
	}
}
