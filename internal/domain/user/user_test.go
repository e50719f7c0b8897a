//go:build unit

package user_test

import (
	"testing"

	"guesthouse-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role user.Role
		cap  user.Capability
		want bool
	}{
		{user.RoleAdmin, user.CapUpdatePricing, true},
		{user.RoleAdmin, user.CapManagePromos, true},
		{user.RoleManager, user.CapUpdatePricing, false},
		{user.RoleManager, user.CapChangeBookingStatus, true},
		{user.RoleManager, user.CapExportBookings, true},
		{user.RoleViewer, user.CapViewBookings, true},
		{user.RoleViewer, user.CapChangeBookingStatus, false},
		{user.RoleViewer, user.CapExportBookings, false},
		{user.Role("guest"), user.CapViewBookings, false},
	}
	for _, c := range cases {
		t.Run(c.role.String()+" "+c.cap.String(), func(t *testing.T) {
			assert.Equal(t, c.want, c.role.Can(c.cap))
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"admin", "manager", "viewer"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}
	for _, s := range []string{"", "operator", "root"} {
		_, err := user.NewRole(s)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	}
}

func TestCredentials(t *testing.T) {
	c, err := user.NewCredentials(" Admin@Guesthouse.TN ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin@guesthouse.tn", c.Email().Value())

	_, err = user.NewCredentials("admin", "password123")
	require.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = user.NewCredentials("admin@guesthouse.tn", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("manager@guesthouse.tn")
	require.NoError(t, err)
	u := user.NewUser(email, "hash", user.RoleManager)
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())

	u.Deactivate()
	assert.False(t, u.IsActive())
}
