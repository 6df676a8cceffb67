package users

import (
	"context"
	"time"
)

// SetupDefaults seeds the store with the two fixed startup records.
// Creating an id that already exists is not an error here, so restart-style
// re-seeding of a shared store is harmless.
func SetupDefaults(ctx context.Context, service UserManager) error {
	defaults := []*CreateUserRequest{
		{ID: 1, Username: "user1", Wallet: 100.0, Birthdate: NewDate(1990, time.January, 1)},
		{ID: 2, Username: "user2", Wallet: 200.0, Birthdate: NewDate(1995, time.May, 15)},
	}

	for _, req := range defaults {
		if _, err := service.CreateUser(ctx, req); err != nil {
			if IsAlreadyExists(err) {
				continue
			}
			return err
		}
	}

	return nil
}
