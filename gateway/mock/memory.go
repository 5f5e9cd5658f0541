package mock

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/freementors/sdk-go/core"
)

// MemoryStore keeps all records in process memory. Insertion order is
// preserved so listings are stable across calls.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []*core.User
	passwords map[string]string // user id -> password hash
	mentors   []*core.Mentor
	sessions  []*core.Session
	reviews   []*core.Review
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{passwords: make(map[string]string)}
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *core.User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return core.ErrEmailTaken
		}
	}
	s.users = append(s.users, user)
	s.passwords[user.ID] = passwordHash
	return nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*core.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, s.passwords[u.ID], nil
		}
	}
	return nil, "", core.ErrUserNotFound
}

func (s *MemoryStore) UserByID(ctx context.Context, id string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByIDLocked(id)
}

func (s *MemoryStore) userByIDLocked(id string) (*core.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) UpdateUserRole(ctx context.Context, id string, role core.Role) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.userByIDLocked(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (s *MemoryStore) CreateMentorProfile(ctx context.Context, mentor *core.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mentors = append(s.mentors, mentor)
	return nil
}

func (s *MemoryStore) ListMentors(ctx context.Context) ([]*core.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Mentor, len(s.mentors))
	copy(out, s.mentors)
	return out, nil
}

func (s *MemoryStore) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, core.ErrMentorNotFound
}

func (s *MemoryStore) UpdateMentorAggregate(ctx context.Context, mentorID string, agg core.Aggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.mentors {
		if m.ID == mentorID {
			m.Rating = agg.Rating
			m.TotalReviews = agg.Count
			m.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return core.ErrMentorNotFound
}

func (s *MemoryStore) CreateSession(ctx context.Context, session *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	return nil
}

func (s *MemoryStore) SessionByID(ctx context.Context, id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return nil, core.ErrSessionNotFound
}

// SessionsForUser returns the sessions the user participates in:
// mentors see the sessions addressed to them, everyone else the ones
// they requested. Admins see everything.
func (s *MemoryStore) SessionsForUser(ctx context.Context, userID string, role core.Role) ([]*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Session
	for _, sess := range s.sessions {
		switch role {
		case core.RoleAdmin:
			out = append(out, sess)
		case core.RoleMentor:
			if sess.MentorID == userID {
				out = append(out, sess)
			}
		default:
			if sess.MenteeID == userID {
				out = append(out, sess)
			}
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateSessionStatus(ctx context.Context, id string, status core.SessionStatus) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			sess.Status = status
			sess.UpdatedAt = time.Now().UTC()
			return sess, nil
		}
	}
	return nil, core.ErrSessionNotFound
}

func (s *MemoryStore) CreateReview(ctx context.Context, review *core.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *MemoryStore) ReviewByID(ctx context.Context, id string) (*core.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, core.ErrReviewNotFound
}

func (s *MemoryStore) ReviewBySession(ctx context.Context, sessionID string) (*core.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.SessionID == sessionID {
			return r, nil
		}
	}
	return nil, core.ErrReviewNotFound
}

func (s *MemoryStore) ReviewsForMentor(ctx context.Context, mentorID string, visibleOnly bool) ([]*core.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Review
	for _, r := range s.reviews {
		if r.MentorID != mentorID {
			continue
		}
		if visibleOnly && !r.Visible {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *MemoryStore) ListReviews(ctx context.Context) ([]*core.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *MemoryStore) SetReviewVisibility(ctx context.Context, id string, visible bool) (*core.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reviews {
		if r.ID == id {
			r.Visible = visible
			r.UpdatedAt = time.Now().UTC()
			return r, nil
		}
	}
	return nil, core.ErrReviewNotFound
}
