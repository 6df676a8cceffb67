package users

import (
	"context"
	"sync"
)

// InMemoryStore implements UserStore with in-memory storage.
// Records live in an insertion-ordered slice; the collection stays small
// enough that linear scans are the whole indexing strategy. A single
// RWMutex serializes access so handlers may run concurrently.
type InMemoryStore struct {
	mu    sync.RWMutex
	users []*User
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make([]*User, 0),
	}
}

// ListUsers returns all users in insertion order
func (s *InMemoryStore) ListUsers(ctx context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*User, 0, len(s.users))
	for _, user := range s.users {
		// Copy so callers cannot mutate stored records
		u := *user
		result = append(result, &u)
	}

	return result, nil
}

// GetUser retrieves a user by id
func (s *InMemoryStore) GetUser(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}

	return nil, NewUserNotFoundError(id)
}

// CreateUser appends a new user, rejecting duplicate ids
func (s *InMemoryStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == user.ID {
			return NewUserAlreadyExistsError(user.ID)
		}
	}

	u := *user
	s.users = append(s.users, &u)
	return nil
}

// UpdateUser replaces the mutable fields of the user with the given id.
// The id of the stored record never changes.
func (s *InMemoryStore) UpdateUser(ctx context.Context, id int64, user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == id {
			existing.Username = user.Username
			existing.Wallet = user.Wallet
			existing.Birthdate = user.Birthdate

			u := *existing
			return &u, nil
		}
	}

	return nil, NewUserNotFoundError(id)
}

// DeleteUser removes the user with the given id and returns the removed record
func (s *InMemoryStore) DeleteUser(ctx context.Context, id int64) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.ID == id {
			removed := *existing
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &removed, nil
		}
	}

	return nil, NewUserNotFoundError(id)
}
