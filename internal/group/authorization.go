// Authorization rules for group actions, as pure predicates over a member's
// capability tuple:
//   - update details / change privacy: admin or mod
//   - delete group: admin
//   - invite: any member
//   - accept/deny join requests, remove members: admin or mod
//   - all role changes: admin
//   - leave: member who is not admin (admins transfer admin status first)
package group

// Role is the capability tuple of an actor with respect to one group. Admin
// and Mod are independent bits, not ranks; either implies Member.
type Role struct {
	Member bool
	Admin  bool
	Mod    bool
}

// RoleOf derives the capability tuple from a membership row. A nil
// membership is a non-member.
func RoleOf(m *Membership) Role {
	if m == nil {
		return Role{}
	}
	return Role{Member: true, Admin: m.IsAdmin, Mod: m.IsMod}
}

// CanManageGroup reports whether the role may update group details or
// change its privacy flag.
func (r Role) CanManageGroup() bool { return r.Admin || r.Mod }

// CanDeleteGroup reports whether the role may delete the group.
func (r Role) CanDeleteGroup() bool { return r.Admin }

// CanInvite reports whether the role may invite another user.
func (r Role) CanInvite() bool { return r.Member }

// CanModerateRequests reports whether the role may accept or deny join
// requests.
func (r Role) CanModerateRequests() bool { return r.Admin || r.Mod }

// CanRemoveMember reports whether the role may remove another member.
func (r Role) CanRemoveMember() bool { return r.Admin || r.Mod }

// CanChangeRoles reports whether the role may promote, demote, grant or
// revoke any role bit.
func (r Role) CanChangeRoles() bool { return r.Admin }

// CanLeave reports whether the role may leave the group. Admins must hand
// off the admin bit before leaving so a group never loses its last admin.
func (r Role) CanLeave() bool { return r.Member && !r.Admin }
