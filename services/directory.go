package services

import (
	"context"
	"sync"

	"github.com/freementors/sdk-go/core"
)

// DirectoryService owns the user and mentor records fetched from the
// backend and supplies lookups by id. Other components reference its
// records; they never copy them destructively.
type DirectoryService struct {
	gateway  core.Gateway
	auth     *AuthService
	notifier core.Notifier

	mu      sync.RWMutex
	mentors []*core.Mentor
	users   []*core.User
}

func NewDirectoryService(gateway core.Gateway, auth *AuthService, notifier core.Notifier) *DirectoryService {
	return &DirectoryService{gateway: gateway, auth: auth, notifier: notifier}
}

func (d *DirectoryService) fail(err error) error {
	d.notifier.Failure(err)
	return err
}

// LoadMentors replaces the mentor collection with the server's
// response. On failure the collection is left unchanged.
func (d *DirectoryService) LoadMentors(ctx context.Context) ([]*core.Mentor, error) {
	mentors, err := d.gateway.Mentors(ctx)
	if err != nil {
		return nil, d.fail(err)
	}

	d.mu.Lock()
	d.mentors = mentors
	d.mu.Unlock()

	return mentors, nil
}

// LoadUsers fetches the full user directory. Admin only.
func (d *DirectoryService) LoadUsers(ctx context.Context) ([]*core.User, error) {
	if !d.auth.Current().Is(core.RoleAdmin) {
		return nil, d.fail(core.ErrUnauthorized)
	}

	users, err := d.gateway.Users(ctx)
	if err != nil {
		return nil, d.fail(err)
	}

	d.mu.Lock()
	d.users = users
	d.mu.Unlock()

	return users, nil
}

// FetchMentor fetches one mentor from the backend and upserts it into
// the local collection.
func (d *DirectoryService) FetchMentor(ctx context.Context, id string) (*core.Mentor, error) {
	mentor, err := d.gateway.MentorByID(ctx, id)
	if err != nil {
		return nil, d.fail(err)
	}

	d.mu.Lock()
	replaced := false
	for i, m := range d.mentors {
		if m.ID == mentor.ID {
			d.mentors[i] = mentor
			replaced = true
			break
		}
	}
	if !replaced {
		d.mentors = append(d.mentors, mentor)
	}
	d.mu.Unlock()

	return mentor, nil
}

// Mentors returns the cached mentor collection.
func (d *DirectoryService) Mentors() []*core.Mentor {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*core.Mentor, len(d.mentors))
	copy(out, d.mentors)
	return out
}

// MentorByID looks a mentor up in the local collection.
func (d *DirectoryService) MentorByID(id string) (*core.Mentor, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, m := range d.mentors {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// UserByID looks a user up in the local collection, falling back to
// the mentor collection.
func (d *DirectoryService) UserByID(id string) (*core.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	for _, m := range d.mentors {
		if m.ID == id {
			return &m.User, true
		}
	}
	return nil, false
}

// HasMentors reports whether the mentor directory has been loaded.
func (d *DirectoryService) HasMentors() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mentors != nil
}

// ChangeToMentor promotes a user to mentor. Admin only; the backend
// exposes no demotion, so there is no reverse operation here either.
func (d *DirectoryService) ChangeToMentor(ctx context.Context, userID string) (*core.User, error) {
	if !d.auth.Current().Is(core.RoleAdmin) {
		return nil, d.fail(core.ErrUnauthorized)
	}

	user, err := d.gateway.ChangeToMentor(ctx, userID)
	if err != nil {
		return nil, d.fail(err)
	}

	d.mu.Lock()
	for i, u := range d.users {
		if u.ID == user.ID {
			d.users[i] = user
			break
		}
	}
	d.mu.Unlock()

	d.notifier.Success("User promoted to mentor successfully!")
	return user, nil
}

// ApplyAggregate installs a recomputed rating summary on a cached
// mentor. A no-op when the mentor is not held locally.
func (d *DirectoryService) ApplyAggregate(mentorID string, agg core.Aggregate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range d.mentors {
		if m.ID == mentorID {
			m.Rating = agg.Rating
			m.TotalReviews = agg.Count
			return
		}
	}
}
