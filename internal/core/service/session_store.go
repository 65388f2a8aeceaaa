package service

import (
	"sync"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// SessionStore is the single authoritative copy of one browser session's
// identity. It exposes exactly the named transitions the UI can trigger;
// every mutation replaces the affected slice wholesale (last-write-wins,
// no merge). Reads return deep copies so callers never alias store state.
//
// Each explicit transition bumps a generation counter. The bootstrap
// controller uses it to discard a fetch result that arrives after the user
// has already logged in or out through other means.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session
	gen     uint64
}

// NewSessionStore returns a store in the unauthenticated initial state.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Login installs an authenticated snapshot. No validation is performed;
// the caller guarantees user is well-formed.
func (s *SessionStore) Login(user *domain.User, profile *domain.GuideProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.session = domain.Session{
		IsAuthenticated: true,
		User:            user.Clone(),
		GuideProfile:    profile.Clone(),
	}
}

// Logout resets the authenticated flag and user. The guide profile is
// deliberately left in place: that asymmetry is observed product behaviour
// whose intent is unresolved, so it is reproduced (and pinned by tests)
// rather than fixed.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.session.IsAuthenticated = false
	s.session.User = nil
}

// UpdateGuideAvailability replaces the profile's availability array.
// Silent no-op when the session holds no guide profile; tolerating the
// no-profile case is deliberate, not a failure.
func (s *SessionStore) UpdateGuideAvailability(entries []domain.AvailabilityEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.GuideProfile == nil {
		return
	}
	s.gen++
	s.session.GuideProfile.Availability = append([]domain.AvailabilityEntry(nil), entries...)
}

// ReplaceUser swaps the user snapshot while keeping the rest of the
// session, used after a profile display-field update.
func (s *SessionStore) ReplaceUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.IsAuthenticated {
		return
	}
	s.gen++
	s.session.User = user.Clone()
}

// Snapshot returns a deep copy of the current session.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Session{
		IsAuthenticated: s.session.IsAuthenticated,
		User:            s.session.User.Clone(),
		GuideProfile:    s.session.GuideProfile.Clone(),
	}
}

// Generation returns the current transition counter.
func (s *SessionStore) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// loginIfGeneration applies Login only when no explicit transition has
// happened since gen was observed. Reports whether the login was applied.
func (s *SessionStore) loginIfGeneration(gen uint64, user *domain.User, profile *domain.GuideProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.gen++
	s.session = domain.Session{
		IsAuthenticated: true,
		User:            user.Clone(),
		GuideProfile:    profile.Clone(),
	}
	return true
}
