package services

import (
	"context"
	"sync"

	"github.com/freementors/sdk-go/core"
)

// LifecycleManager is the single source of truth for the current
// actor's sessions and for the reviews the actor is authorized to see
// or moderate. It enforces transition and review-authorship rules
// before any backend call and reconciles backend responses into local
// state - the server's returned records are trusted verbatim.
//
// Every precondition violation (role mismatch, malformed input,
// illegal transition) is rejected locally and never reaches the
// gateway. Remote failures propagate unchanged; no operation partially
// mutates local state on failure.
type LifecycleManager struct {
	gateway   core.Gateway
	auth      *AuthService
	directory *DirectoryService
	notifier  core.Notifier

	mu         sync.RWMutex
	sessions   []*core.Session
	reviews    map[string][]*core.Review // visible reviews keyed by mentor id
	allReviews []*core.Review            // moderation view, includes hidden
	allLoaded  bool
	submitted  map[string]*core.Review // reviews created this client session, by session id

	inflightMu sync.Mutex
	inflight   map[string]struct{} // session ids with an outstanding call
}

func NewLifecycleManager(gateway core.Gateway, auth *AuthService, directory *DirectoryService, notifier core.Notifier) *LifecycleManager {
	return &LifecycleManager{
		gateway:   gateway,
		auth:      auth,
		directory: directory,
		notifier:  notifier,
		reviews:   make(map[string][]*core.Review),
		submitted: make(map[string]*core.Review),
		inflight:  make(map[string]struct{}),
	}
}

// fail reports a failed operation exactly once and hands the error
// back unchanged.
func (m *LifecycleManager) fail(err error) error {
	m.notifier.Failure(err)
	return err
}

// begin takes the per-session in-flight slot, rejecting overlapping
// transition/review calls for the same session id so duplicate
// requests never race against each other on the server.
func (m *LifecycleManager) begin(sessionID string) error {
	m.inflightMu.Lock()
	defer m.inflightMu.Unlock()
	if _, busy := m.inflight[sessionID]; busy {
		return core.ErrOperationInProgress
	}
	m.inflight[sessionID] = struct{}{}
	return nil
}

func (m *LifecycleManager) end(sessionID string) {
	m.inflightMu.Lock()
	delete(m.inflight, sessionID)
	m.inflightMu.Unlock()
}

// LoadSessions fetches all sessions visible to the current actor and
// replaces the local collection with the server's response verbatim -
// the server is authoritative and no client-side merge happens. On
// failure the local collection is left unchanged.
func (m *LifecycleManager) LoadSessions(ctx context.Context) ([]*core.Session, error) {
	if m.auth.Current() == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}

	sessions, err := m.gateway.Sessions(ctx)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.sessions = sessions
	m.mu.Unlock()

	return sessions, nil
}

// Sessions returns the local session collection in server order.
func (m *LifecycleManager) Sessions() []*core.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// SessionByID looks a session up in the local collection.
func (m *LifecycleManager) SessionByID(id string) (*core.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionByIDLocked(id)
}

func (m *LifecycleManager) sessionByIDLocked(id string) (*core.Session, bool) {
	for _, s := range m.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// RequestSession creates a new mentorship session request. Only a
// mentee may request one, and nothing is inserted locally until the
// server confirms - no optimistic insert, so a rejected session is
// never shown.
func (m *LifecycleManager) RequestSession(ctx context.Context, input core.SessionRequest) (*core.Session, error) {
	actor := m.auth.Current()
	if actor == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}
	if !actor.Is(core.RoleMentee) {
		return nil, m.fail(core.ErrUnauthorized)
	}
	if err := core.ValidateSessionRequest(input); err != nil {
		return nil, m.fail(err)
	}
	// The mentor must exist. When the directory has been loaded the
	// check is local; otherwise the server arbitrates.
	if m.directory.HasMentors() {
		if _, ok := m.directory.MentorByID(input.MentorID); !ok {
			return nil, m.fail(core.ErrMentorNotFound)
		}
	}

	session, err := m.gateway.CreateSession(ctx, input)
	if err != nil {
		return nil, m.fail(err)
	}

	// Status is Pending by contract regardless of what the caller or
	// wire layer supplied.
	session.Status = core.StatusPending

	m.mu.Lock()
	m.sessions = append(m.sessions, session)
	m.mu.Unlock()

	m.notifier.Success("Mentorship session request sent successfully!")
	return session, nil
}

// TransitionSession moves a session along its lifecycle. Only the
// session's mentor may transition it, and only along
// Pending->Accepted, Pending->Declined, or Accepted->Completed; any
// other pair fails with ErrInvalidTransition before any network call.
// On success the matching local record is replaced with the server's
// returned record. The transition is all-or-nothing: a remote failure
// leaves the prior record untouched.
func (m *LifecycleManager) TransitionSession(ctx context.Context, sessionID string, target core.SessionStatus) (*core.Session, error) {
	actor := m.auth.Current()
	if actor == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}

	m.mu.RLock()
	session, ok := m.sessionByIDLocked(sessionID)
	var current core.SessionStatus
	var mentorID string
	if ok {
		current = session.Status
		mentorID = session.MentorID
	}
	m.mu.RUnlock()
	if !ok {
		return nil, m.fail(core.ErrSessionNotFound)
	}

	if err := m.begin(sessionID); err != nil {
		return nil, m.fail(err)
	}
	defer m.end(sessionID)

	if !actor.Is(core.RoleMentor) || !actor.SameUser(mentorID) {
		return nil, m.fail(core.ErrUnauthorized)
	}
	if !core.CanTransition(current, target) {
		return nil, m.fail(core.ErrInvalidTransition)
	}

	updated, err := m.gateway.UpdateSessionStatus(ctx, sessionID, target)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	for i, s := range m.sessions {
		if s.ID == updated.ID {
			m.sessions[i] = updated
			break
		}
	}
	m.mu.Unlock()

	m.notifier.Success(transitionMessage(target))
	return updated, nil
}

func transitionMessage(target core.SessionStatus) string {
	switch target {
	case core.StatusAccepted:
		return "Session accepted successfully!"
	case core.StatusDeclined:
		return "Session declined successfully!"
	case core.StatusCompleted:
		return "Session marked completed"
	}
	return "Session updated successfully!"
}

// SubmitReview creates a review for a completed session. Only the
// session's mentee may review, only once the session is Completed,
// and only once per session - though the server remains the final
// arbiter on duplicates, and its Conflict rejection is surfaced as a
// distinct error rather than swallowed.
func (m *LifecycleManager) SubmitReview(ctx context.Context, input core.ReviewInput) (*core.Review, error) {
	actor := m.auth.Current()
	if actor == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}

	m.mu.RLock()
	session, ok := m.sessionByIDLocked(input.SessionID)
	var status core.SessionStatus
	var menteeID string
	if ok {
		status = session.Status
		menteeID = session.MenteeID
	}
	duplicate := ok && m.hasReviewForSessionLocked(input.SessionID)
	m.mu.RUnlock()
	if !ok {
		return nil, m.fail(core.ErrSessionNotFound)
	}

	if err := m.begin(input.SessionID); err != nil {
		return nil, m.fail(err)
	}
	defer m.end(input.SessionID)

	if !actor.SameUser(menteeID) {
		return nil, m.fail(core.ErrUnauthorized)
	}
	if status != core.StatusCompleted {
		return nil, m.fail(core.ErrSessionNotCompleted)
	}
	if duplicate {
		return nil, m.fail(core.ErrAlreadyReviewed)
	}
	if err := core.ValidateReviewInput(input); err != nil {
		return nil, m.fail(err)
	}

	review, err := m.gateway.CreateReview(ctx, input)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.submitted[review.SessionID] = review
	// Only extend a per-mentor list that has actually been loaded; an
	// unloaded list must not start looking like the complete set.
	if _, loaded := m.reviews[review.MentorID]; loaded {
		m.reviews[review.MentorID] = append(m.reviews[review.MentorID], review)
	}
	if m.allLoaded {
		m.allReviews = append(m.allReviews, review)
	}
	agg, known := m.aggregateForLocked(review.MentorID)
	m.mu.Unlock()

	if known {
		m.directory.ApplyAggregate(review.MentorID, agg)
	}

	m.notifier.Success("Review submitted successfully!")
	return review, nil
}

// HideReview hides a review from public display. Admin only; the
// review must currently be visible. The owning mentor's aggregate is
// recomputed over the remaining visible reviews, resetting to 0 when
// none remain. There is no unhide operation.
func (m *LifecycleManager) HideReview(ctx context.Context, reviewID string) (*core.Review, error) {
	actor := m.auth.Current()
	if actor == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}
	if !actor.Is(core.RoleAdmin) {
		return nil, m.fail(core.ErrUnauthorized)
	}

	m.mu.RLock()
	review, ok := m.reviewByIDLocked(reviewID)
	visible := ok && review.Visible
	m.mu.RUnlock()
	if !ok {
		return nil, m.fail(core.ErrReviewNotFound)
	}
	if !visible {
		return nil, m.fail(core.ErrReviewHidden)
	}

	updated, err := m.gateway.SetReviewVisibility(ctx, reviewID, false)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.replaceReviewLocked(updated)
	agg, known := m.aggregateForLocked(updated.MentorID)
	m.mu.Unlock()

	if known {
		m.directory.ApplyAggregate(updated.MentorID, agg)
	}

	m.notifier.Success("Review hidden successfully!")
	return updated, nil
}

// LoadMentorReviews fetches the visible reviews for one mentor,
// replacing the local per-mentor collection. The fetched set is the
// authoritative aggregate basis, so the mentor's cached rating is
// refreshed from it.
func (m *LifecycleManager) LoadMentorReviews(ctx context.Context, mentorID string) ([]*core.Review, error) {
	reviews, err := m.gateway.MentorReviews(ctx, mentorID)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.reviews[mentorID] = reviews
	m.mu.Unlock()

	m.directory.ApplyAggregate(mentorID, core.RecomputeMentorAggregate(reviews))
	return reviews, nil
}

// LoadAllReviews fetches the moderation view of every review,
// including hidden ones. The server scopes the response to what the
// actor may see.
func (m *LifecycleManager) LoadAllReviews(ctx context.Context) ([]*core.Review, error) {
	if m.auth.Current() == nil {
		return nil, m.fail(core.ErrNotLoggedIn)
	}

	reviews, err := m.gateway.AllReviews(ctx)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.allReviews = reviews
	m.allLoaded = true
	m.mu.Unlock()

	return reviews, nil
}

// MentorReviews returns the locally held visible reviews for a mentor.
func (m *LifecycleManager) MentorReviews(mentorID string) []*core.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Review, len(m.reviews[mentorID]))
	copy(out, m.reviews[mentorID])
	return out
}

// AllReviews returns the locally held moderation view.
func (m *LifecycleManager) AllReviews() []*core.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Review, len(m.allReviews))
	copy(out, m.allReviews)
	return out
}

func (m *LifecycleManager) reviewByIDLocked(id string) (*core.Review, bool) {
	for _, r := range m.allReviews {
		if r.ID == id {
			return r, true
		}
	}
	for _, list := range m.reviews {
		for _, r := range list {
			if r.ID == id {
				return r, true
			}
		}
	}
	for _, r := range m.submitted {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

func (m *LifecycleManager) hasReviewForSessionLocked(sessionID string) bool {
	if _, ok := m.submitted[sessionID]; ok {
		return true
	}
	for _, r := range m.allReviews {
		if r.SessionID == sessionID {
			return true
		}
	}
	for _, list := range m.reviews {
		for _, r := range list {
			if r.SessionID == sessionID {
				return true
			}
		}
	}
	return false
}

func (m *LifecycleManager) replaceReviewLocked(updated *core.Review) {
	for i, r := range m.allReviews {
		if r.ID == updated.ID {
			m.allReviews[i] = updated
		}
	}
	for mentorID, list := range m.reviews {
		for i, r := range list {
			if r.ID == updated.ID {
				m.reviews[mentorID][i] = updated
			}
		}
	}
	for sessionID, r := range m.submitted {
		if r.ID == updated.ID {
			m.submitted[sessionID] = updated
		}
	}
}

// aggregateForLocked recomputes a mentor's aggregate from the local
// review set, when one is held. The moderation view is preferred as
// it is complete; the per-mentor list only knows visible reviews.
func (m *LifecycleManager) aggregateForLocked(mentorID string) (core.Aggregate, bool) {
	if m.allLoaded {
		var subset []*core.Review
		for _, r := range m.allReviews {
			if r.MentorID == mentorID {
				subset = append(subset, r)
			}
		}
		return core.RecomputeMentorAggregate(subset), true
	}
	if list, ok := m.reviews[mentorID]; ok {
		return core.RecomputeMentorAggregate(list), true
	}
	return core.Aggregate{}, false
}
