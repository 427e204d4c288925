//go:build unit

package user_test

import (
	"testing"

	"maison-booking/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userView projects the entity's observable state for comparison.
type userView struct {
	Email    string
	Role     user.Role
	IsActive bool
}

func viewOf(u *user.User) userView {
	return userView{
		Email:    u.Email().String(),
		Role:     u.Role(),
		IsActive: u.IsActive(),
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("claire@example.com")
	require.NoError(t, err)
	role, err := user.NewRole("customer")
	require.NoError(t, err)

	actual := user.NewUser(email, "hashed_password", role)

	expected := userView{
		Email:    "claire@example.com",
		Role:     user.RoleCustomer,
		IsActive: true,
	}
	if diff := cmp.Diff(expected, viewOf(actual)); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "hashed_password", actual.PasswordHash())
	assert.Nil(t, actual.LastLogin())
}

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"Claire@Example.COM", "claire@example.com"},
			{"  claire@example.com  ", "claire@example.com"},
			{"claire+vip@example.com", "claire+vip@example.com"},
		}

		for _, tc := range testCases {
			email, err := user.NewEmail(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			if diff := cmp.Diff(tc.expected, email.String()); diff != "" {
				t.Errorf("Email mismatch for %q (-want +got):\n%s", tc.input, diff)
			}
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"", "not-an-email", "missing@tld", "@example.com", "claire example@example.com"} {
			_, err := user.NewEmail(input)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "input %q", input)
		}
	})
}

func TestNewRole(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		for _, s := range []string{"customer", "staff", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		for _, s := range []string{"", "manager", "CUSTOMER"} {
			_, err := user.NewRole(s)
			assert.ErrorIs(t, err, user.ErrInvalidRole, "input %q", s)
		}
	})
}
