package group

import "testing"

func TestRoleOf(t *testing.T) {
	tests := []struct {
		name       string
		membership *Membership
		want       Role
	}{
		{"non-member", nil, Role{}},
		{"plain member", &Membership{}, Role{Member: true}},
		{"admin", &Membership{IsAdmin: true}, Role{Member: true, Admin: true}},
		{"mod", &Membership{IsMod: true}, Role{Member: true, Mod: true}},
		{"admin and mod", &Membership{IsAdmin: true, IsMod: true}, Role{Member: true, Admin: true, Mod: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleOf(tt.membership); got != tt.want {
				t.Errorf("RoleOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRolePredicates(t *testing.T) {
	var (
		outsider = Role{}
		member   = Role{Member: true}
		mod      = Role{Member: true, Mod: true}
		admin    = Role{Member: true, Admin: true}
		adminMod = Role{Member: true, Admin: true, Mod: true}
	)

	tests := []struct {
		name string
		fn   func(Role) bool
		want map[Role]bool
	}{
		{
			name: "CanManageGroup",
			fn:   Role.CanManageGroup,
			want: map[Role]bool{outsider: false, member: false, mod: true, admin: true, adminMod: true},
		},
		{
			name: "CanDeleteGroup",
			fn:   Role.CanDeleteGroup,
			want: map[Role]bool{outsider: false, member: false, mod: false, admin: true, adminMod: true},
		},
		{
			name: "CanInvite",
			fn:   Role.CanInvite,
			want: map[Role]bool{outsider: false, member: true, mod: true, admin: true, adminMod: true},
		},
		{
			name: "CanModerateRequests",
			fn:   Role.CanModerateRequests,
			want: map[Role]bool{outsider: false, member: false, mod: true, admin: true, adminMod: true},
		},
		{
			name: "CanRemoveMember",
			fn:   Role.CanRemoveMember,
			want: map[Role]bool{outsider: false, member: false, mod: true, admin: true, adminMod: true},
		},
		{
			name: "CanChangeRoles",
			fn:   Role.CanChangeRoles,
			want: map[Role]bool{outsider: false, member: false, mod: false, admin: true, adminMod: true},
		},
		{
			name: "CanLeave",
			fn:   Role.CanLeave,
			want: map[Role]bool{outsider: false, member: true, mod: true, admin: false, adminMod: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for role, want := range tt.want {
				if got := tt.fn(role); got != want {
					t.Errorf("%s(%+v) = %v, want %v", tt.name, role, got, want)
				}
			}
		})
	}
}
