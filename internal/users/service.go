package users

import (
	"context"
)

// UserServiceImpl implements the UserManager interface
type UserServiceImpl struct {
	store UserStore
}

// NewUserService creates a new user service instance
func NewUserService(store UserStore) *UserServiceImpl {
	return &UserServiceImpl{
		store: store,
	}
}

// ListUsers lists all users in insertion order
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser retrieves a user by id
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.store.GetUser(ctx, id)
}

// CreateUser creates a new user with the client-supplied id
func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	user := &User{
		ID:        req.ID,
		Username:  req.Username,
		Wallet:    req.Wallet,
		Birthdate: req.Birthdate,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser replaces username, wallet and birthdate of an existing user.
// The id in the request body is ignored; only the path id selects the record.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	user := &User{
		ID:        id,
		Username:  req.Username,
		Wallet:    req.Wallet,
		Birthdate: req.Birthdate,
	}

	return s.store.UpdateUser(ctx, id, user)
}

// DeleteUser removes a user and returns the removed record
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) (*User, error) {
	return s.store.DeleteUser(ctx, id)
}
