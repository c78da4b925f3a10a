package store

import (
	"crypto/subtle"
	"sync"
	"time"

	"distress-relay-api/internal/model"
)

// Users is the in-memory user registry, keyed by email. Accounts are never
// deleted.
type Users struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]*model.User)}
}

// Create inserts a new user. The uniqueness check and the insert happen under
// one lock acquisition, so of two concurrent sign-ups with the same email
// exactly one can win; the other gets ErrDuplicateEmail.
func (s *Users) Create(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}

	now := time.Now()
	cp := *u
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.byEmail[cp.Email] = &cp
	return nil
}

// ByEmail returns a copy so callers can't mutate registry state outside the
// lock.
func (s *Users) ByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// RotateSession stores a freshly minted session token, invalidating whatever
// token the user held before. Single active session per user.
func (s *Users) RotateSession(email, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return ErrUserNotFound
	}
	u.SessionToken = token
	u.UpdatedAt = time.Now()
	return nil
}

// Authorize resolves the caller and checks the supplied token against their
// current session. It returns a copy of the user on success so callers can
// read profile fields without holding the lock.
func (s *Users) Authorize(email, token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	if !authorized(u, token) {
		return nil, ErrSessionMismatch
	}
	cp := *u
	return &cp, nil
}

func (s *Users) UpdateLocation(email, token, lat, lng string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return ErrUserNotFound
	}
	if !authorized(u, token) {
		return ErrSessionMismatch
	}
	u.LocationLat = lat
	u.LocationLng = lng
	u.UpdatedAt = time.Now()
	return nil
}

func (s *Users) UpdateAvailability(email, token, avail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return ErrUserNotFound
	}
	if !authorized(u, token) {
		return ErrSessionMismatch
	}
	u.Available = avail
	u.UpdatedAt = time.Now()
	return nil
}

// authorized is the single session guard every mutating operation goes
// through. Constant-time compare; a rotated or forged token never authorizes.
func authorized(u *model.User, token string) bool {
	return subtle.ConstantTimeCompare([]byte(u.SessionToken), []byte(token)) == 1
}
