package store

import (
	"sync"

	"github.com/crucial707/portfolio-api/internal/models"
)

// ==========================
// UserStore
// ==========================
// UserStore holds user records in process memory. Nothing is persisted:
// a restart starts from an empty store. That is a documented limitation
// of this service, not a bug.
//
// The mutex makes each individual operation safe to call from concurrent
// request handlers. It does NOT make a check-then-insert sequence across
// two calls atomic; callers that need uniqueness do the exists-check
// themselves and accept the race (see AuthGateway.Register).
type UserStore struct {
	mu    sync.Mutex
	users []*models.User
}

// ==========================
// Constructor
// ==========================
func NewUserStore() *UserStore {
	return &UserStore{}
}

// ==========================
// Find By Email
// ==========================
// FindByEmail returns the user with the given email, or false when no
// record matches. Emails compare exactly as stored (case-sensitive).
func (s *UserStore) FindByEmail(email string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// ==========================
// Find By ID
// ==========================
func (s *UserStore) FindByID(id int) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// ==========================
// Insert
// ==========================
// Insert appends a new record and assigns it the next sequential ID
// (count + 1). The store never deletes records, so IDs stay unique.
func (s *UserStore) Insert(email, passwordHash, name, role string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &models.User{
		ID:           len(s.users) + 1,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
	}
	s.users = append(s.users, u)
	return u
}

// ==========================
// Count
// ==========================
func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}
