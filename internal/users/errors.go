package users

import (
	"errors"
	"fmt"
)

// UserError represents errors related to user operations
type UserError struct {
	Type    string
	UserID  int64
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("user error [%s] for user %d: %s (caused by: %v)", e.Type, e.UserID, e.Message, e.Cause)
	}
	return fmt.Sprintf("user error [%s] for user %d: %s", e.Type, e.UserID, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// User error types
const (
	UserErrorTypeAlreadyExists  = "already_exists"
	UserErrorTypeNotFound       = "not_found"
	UserErrorTypeInvalidRequest = "invalid_request"
)

// NewUserAlreadyExistsError creates an error for when a user id is already taken
func NewUserAlreadyExistsError(userID int64) *UserError {
	return &UserError{
		Type:    UserErrorTypeAlreadyExists,
		UserID:  userID,
		Message: "user with this ID already exists",
	}
}

// NewUserNotFoundError creates an error for when a user is not found
func NewUserNotFoundError(userID int64) *UserError {
	return &UserError{
		Type:    UserErrorTypeNotFound,
		UserID:  userID,
		Message: "user not found",
	}
}

// NewUserInvalidRequestError creates an error for malformed user requests
func NewUserInvalidRequestError(userID int64, message string) *UserError {
	return &UserError{
		Type:    UserErrorTypeInvalidRequest,
		UserID:  userID,
		Message: message,
	}
}

// IsNotFound reports whether err is a not_found user error
func IsNotFound(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr) && userErr.Type == UserErrorTypeNotFound
}

// IsAlreadyExists reports whether err is an already_exists user error
func IsAlreadyExists(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr) && userErr.Type == UserErrorTypeAlreadyExists
}
