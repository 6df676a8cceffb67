package users

import (
	"context"
)

// UserStore defines the interface for user storage operations
type UserStore interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, id int64, user *User) (*User, error)
	DeleteUser(ctx context.Context, id int64) (*User, error)
}

// UserManager defines the interface for user service operations
type UserManager interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64) (*User, error)
}
