package users

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for birthdate values.
const DateLayout = "2006-01-02"

// Date is a calendar date that serializes as "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("birthdate must be a %q string", DateLayout)
	}

	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid birthdate: %w", err)
	}

	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// User represents one user record
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Wallet    float64 `json:"wallet"`
	Birthdate Date    `json:"birthdate"`
}

// CreateUserRequest represents the request to create a user.
// The client supplies the id; the server never generates one.
type CreateUserRequest struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Wallet    float64 `json:"wallet"`
	Birthdate Date    `json:"birthdate"`
}

// UpdateUserRequest represents the request to replace a user's mutable fields.
// An id field in the body is accepted but ignored.
type UpdateUserRequest struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Wallet    float64 `json:"wallet"`
	Birthdate Date    `json:"birthdate"`
}
