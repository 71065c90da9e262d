package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Pins the full capability table: ADMIN implies developer access but not
// moderator access, and MODERATOR stays in its own lane.
func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		want Capabilities
	}{
		{role: RoleUser, want: Capabilities{IsDeveloper: false, IsAdmin: false, IsModerator: false}},
		{role: RoleDeveloper, want: Capabilities{IsDeveloper: true, IsAdmin: false, IsModerator: false}},
		{role: RoleModerator, want: Capabilities{IsDeveloper: false, IsAdmin: false, IsModerator: true}},
		{role: RoleAdmin, want: Capabilities{IsDeveloper: true, IsAdmin: true, IsModerator: false}},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.role.Capabilities())
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	for _, role := range []Role{RoleUser, RoleDeveloper, RoleModerator, RoleAdmin} {
		assert.True(t, role.IsValid(), role.String())
	}

	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}
