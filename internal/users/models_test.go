package users

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONShape(t *testing.T) {
	user := User{
		ID:        1,
		Username:  "user1",
		Wallet:    100.0,
		Birthdate: NewDate(1990, time.January, 1),
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"user1","wallet":100,"birthdate":"1990-01-01"}`, string(data))
}

func TestDateUnmarshal(t *testing.T) {
	var user User
	err := json.Unmarshal([]byte(`{"id":3,"username":"new_user","wallet":50.0,"birthdate":"2000-01-01"}`), &user)
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", user.Birthdate.String())
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"wrong format", `{"birthdate":"01/02/1990"}`},
		{"not a string", `{"birthdate":19900101}`},
		{"datetime instead of date", `{"birthdate":"1990-01-01T00:00:00Z"}`},
		{"impossible date", `{"birthdate":"1990-13-45"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var user User
			err := json.Unmarshal([]byte(tc.body), &user)
			assert.Error(t, err)
		})
	}
}
