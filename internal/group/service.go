package group

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/internal/notification"
	"github.com/circleapp/circles/internal/user"
	"github.com/circleapp/circles/pkg/apperror"
)

// Store interfaces let tests substitute in-memory fakes for the SQL
// repositories. The concrete repositories satisfy them.

type groupStore interface {
	Create(ctx context.Context, q database.Querier, creatorID int64, req *CreateGroupRequest) (*Group, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*Group, error)
	GetByName(ctx context.Context, q database.Querier, name string) (*Group, error)
	ListByUserID(ctx context.Context, q database.Querier, userID int64) ([]*Group, error)
	Update(ctx context.Context, q database.Querier, id int64, req *UpdateGroupRequest) (*Group, error)
	SetPrivacy(ctx context.Context, q database.Querier, id int64, isPrivate bool) (*Group, error)
	Delete(ctx context.Context, q database.Querier, id int64) error
}

type membershipStore interface {
	Add(ctx context.Context, q database.Querier, userID, groupID int64, isAdmin, isMod bool) (*Membership, error)
	Get(ctx context.Context, q database.Querier, userID, groupID int64) (*Membership, error)
	ListByGroup(ctx context.Context, q database.Querier, groupID int64) ([]*Membership, error)
	UpdateRoles(ctx context.Context, q database.Querier, userID, groupID int64, req *UpdateRolesRequest) (*Membership, error)
	Remove(ctx context.Context, q database.Querier, userID, groupID int64) error
	RemoveByGroup(ctx context.Context, q database.Querier, groupID int64) error
	CountAdmins(ctx context.Context, q database.Querier, groupID int64) (int, error)
}

type requestLedger interface {
	Create(ctx context.Context, q database.Querier, userID, groupID int64, kind RequestKind) (*Request, error)
	GetPending(ctx context.Context, q database.Querier, userID, groupID int64) (*Request, error)
	GetByID(ctx context.Context, q database.Querier, id, groupID int64) (*Request, error)
	Resolve(ctx context.Context, q database.Querier, id int64, status RequestStatus) (*Request, error)
	DeletePending(ctx context.Context, q database.Querier, userID, groupID int64) error
	DeleteByGroup(ctx context.Context, q database.Querier, groupID int64) error
	ListPending(ctx context.Context, q database.Querier, groupID int64, kind RequestKind) ([]*Request, error)
}

type userDirectory interface {
	GetByID(ctx context.Context, q database.Querier, id int64) (*user.User, error)
}

// Notifier records a notification inside the caller's transaction.
type Notifier interface {
	Notify(ctx context.Context, q database.Querier, p *notification.CreateParams) (*notification.Notification, error)
}

// Service coordinates group membership transitions. Every mutating operation
// runs as one transaction: authorization checks, invariant re-checks, store
// writes and the notification write all commit or roll back together.
type Service struct {
	db       database.TxQuerier
	groups   groupStore
	members  membershipStore
	requests requestLedger
	users    userDirectory
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a new group service
func NewService(db database.TxQuerier, groups groupStore, members membershipStore, requests requestLedger, users userDirectory, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		groups:   groups,
		members:  members,
		requests: requests,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Create creates a new group with the creator as its first admin and mod.
func (s *Service) Create(ctx context.Context, actorID int64, req *CreateGroupRequest) (*Group, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateGroupName(req.Name); err != nil {
		return nil, err
	}

	var group *Group
	err := s.db.Transact(ctx, func(q database.Querier) error {
		var err error
		group, err = s.groups.Create(ctx, q, actorID, req)
		if err != nil {
			return err
		}
		_, err = s.members.Add(ctx, q, actorID, group.ID, true, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("group created",
		zap.Int64("group_id", group.ID),
		zap.Int64("creator_id", actorID))
	return group, nil
}

// Get retrieves a group with its members, subject to the visibility gate.
func (s *Service) Get(ctx context.Context, actorID, groupID int64) (*Group, []*Membership, error) {
	group, err := s.getGroup(ctx, s.db, groupID)
	if err != nil {
		return nil, nil, err
	}

	visible, err := s.Visible(ctx, s.db, actorID, group)
	if err != nil {
		return nil, nil, err
	}
	if !visible {
		// A private group is indistinguishable from a missing one for outsiders.
		return nil, nil, apperror.New(apperror.ErrNotFound, "group not found")
	}

	members, err := s.members.ListByGroup(ctx, s.db, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

// ListByUserID retrieves the groups the actor belongs to.
func (s *Service) ListByUserID(ctx context.Context, actorID int64) ([]*Group, error) {
	return s.groups.ListByUserID(ctx, s.db, actorID)
}

// ListMembers retrieves a group's member list, subject to the visibility gate.
func (s *Service) ListMembers(ctx context.Context, actorID, groupID int64) ([]*Membership, error) {
	_, members, err := s.Get(ctx, actorID, groupID)
	return members, err
}

// Update modifies a group's name and/or description. Requires admin or mod.
func (s *Service) Update(ctx context.Context, actorID, groupID int64, req *UpdateGroupRequest) (*Group, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
		if err := validateGroupName(trimmed); err != nil {
			return nil, err
		}
	}

	var group *Group
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanManageGroup() {
			return apperror.New(apperror.ErrForbidden, "only admins and moderators can update the group")
		}

		group, err = s.groups.Update(ctx, q, groupID, req)
		if err != nil {
			return err
		}
		if group == nil {
			return apperror.New(apperror.ErrNotFound, "group not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// SetPrivacy changes the group's privacy flag. Requires admin or mod.
func (s *Service) SetPrivacy(ctx context.Context, actorID, groupID int64, isPrivate bool) (*Group, error) {
	var group *Group
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanManageGroup() {
			return apperror.New(apperror.ErrForbidden, "only admins and moderators can change group privacy")
		}

		group, err = s.groups.SetPrivacy(ctx, q, groupID, isPrivate)
		if err != nil {
			return err
		}
		if group == nil {
			return apperror.New(apperror.ErrNotFound, "group not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Delete removes a group and cascades its memberships and requests in the
// same transaction. Requires admin.
func (s *Service) Delete(ctx context.Context, actorID, groupID int64) error {
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanDeleteGroup() {
			return apperror.New(apperror.ErrForbidden, "only admins can delete the group")
		}

		if err := s.requests.DeleteByGroup(ctx, q, g.ID); err != nil {
			return err
		}
		if err := s.members.RemoveByGroup(ctx, q, g.ID); err != nil {
			return err
		}
		return s.groups.Delete(ctx, q, g.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("group deleted",
		zap.Int64("group_id", groupID),
		zap.Int64("actor_id", actorID))
	return nil
}

// Join adds the actor to a public group directly, or records a pending join
// request for a private one.
func (s *Service) Join(ctx context.Context, actorID, groupID int64) (*Membership, *Request, error) {
	var (
		member  *Membership
		request *Request
	)
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}

		existing, err := s.members.Get(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.New(apperror.ErrConflict, "you are already a member of this group")
		}

		if g.IsPrivate {
			request, err = s.requests.Create(ctx, q, actorID, g.ID, KindJoin)
			return err
		}

		// Clear any pending request left over from before the group went public.
		if err := s.requests.DeletePending(ctx, q, actorID, g.ID); err != nil {
			return err
		}
		member, err = s.members.Add(ctx, q, actorID, g.ID, false, false)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return member, request, nil
}

// CancelJoinRequest withdraws the actor's own pending join request.
func (s *Service) CancelJoinRequest(ctx context.Context, actorID, groupID int64) error {
	return s.db.Transact(ctx, func(q database.Querier) error {
		if _, err := s.getGroup(ctx, q, groupID); err != nil {
			return err
		}

		pending, err := s.requests.GetPending(ctx, q, actorID, groupID)
		if err != nil {
			return err
		}
		if pending == nil || pending.Kind != KindJoin {
			return apperror.New(apperror.ErrNotFound, "no pending join request")
		}
		return s.requests.DeletePending(ctx, q, actorID, groupID)
	})
}

// Invite records a pending invite for the target user and notifies them.
// The issuer must be a member; the target must have no membership and no
// pending request in either direction.
func (s *Service) Invite(ctx context.Context, actorID, groupID, targetID int64) (*Request, error) {
	if actorID == targetID {
		return nil, apperror.New(apperror.ErrValidation, "you cannot invite yourself")
	}

	var request *Request
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanInvite() {
			return apperror.New(apperror.ErrForbidden, "only members can invite users")
		}

		target, err := s.users.GetByID(ctx, q, targetID)
		if err != nil {
			return err
		}
		if target == nil {
			return apperror.New(apperror.ErrNotFound, "user not found")
		}

		existing, err := s.members.Get(ctx, q, targetID, g.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.New(apperror.ErrConflict, "user is already a member of this group")
		}

		request, err = s.requests.Create(ctx, q, targetID, g.ID, KindInvite)
		if err != nil {
			return err
		}

		actor, err := s.actor(ctx, q, actorID)
		if err != nil {
			return err
		}
		return s.notify(ctx, q, &notification.CreateParams{
			RecipientID: targetID,
			SenderID:    actor.ID,
			SenderName:  actor.Username,
			Type:        notification.TypeGroupInvite,
			Message:     fmt.Sprintf("%s invited you to join %s", actor.Username, g.Name),
			RefType:     notification.RefTypeGroup,
			RefID:       g.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// AcceptInvite turns the actor's pending invite into a membership.
func (s *Service) AcceptInvite(ctx context.Context, actorID, groupID int64) (*Membership, error) {
	var member *Membership
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}

		pending, err := s.requests.GetPending(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if pending == nil || pending.Kind != KindInvite {
			return apperror.New(apperror.ErrNotFound, "no pending invite")
		}

		resolved, err := s.requests.Resolve(ctx, q, pending.ID, StatusApproved)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperror.New(apperror.ErrNotFound, "invite is no longer pending")
		}

		member, err = s.members.Add(ctx, q, actorID, g.ID, false, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// DeclineInvite resolves the actor's pending invite to denied.
func (s *Service) DeclineInvite(ctx context.Context, actorID, groupID int64) error {
	return s.db.Transact(ctx, func(q database.Querier) error {
		if _, err := s.getGroup(ctx, q, groupID); err != nil {
			return err
		}

		pending, err := s.requests.GetPending(ctx, q, actorID, groupID)
		if err != nil {
			return err
		}
		if pending == nil || pending.Kind != KindInvite {
			return apperror.New(apperror.ErrNotFound, "no pending invite")
		}

		resolved, err := s.requests.Resolve(ctx, q, pending.ID, StatusDenied)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperror.New(apperror.ErrNotFound, "invite is no longer pending")
		}
		return nil
	})
}

// ListJoinRequests retrieves a group's pending join requests. Requires admin
// or mod.
func (s *Service) ListJoinRequests(ctx context.Context, actorID, groupID int64) ([]*Request, error) {
	group, err := s.getGroup(ctx, s.db, groupID)
	if err != nil {
		return nil, err
	}
	role, err := s.roleOf(ctx, s.db, actorID, group.ID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerateRequests() {
		return nil, apperror.New(apperror.ErrForbidden, "only admins and moderators can view join requests")
	}
	return s.requests.ListPending(ctx, s.db, groupID, KindJoin)
}

// AcceptJoinRequest approves a pending join request and creates the
// membership, notifying the applicant. Requires admin or mod.
func (s *Service) AcceptJoinRequest(ctx context.Context, actorID, groupID, requestID int64) (*Membership, error) {
	var member *Membership
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanModerateRequests() {
			return apperror.New(apperror.ErrForbidden, "only admins and moderators can accept join requests")
		}

		request, err := s.requests.GetByID(ctx, q, requestID, g.ID)
		if err != nil {
			return err
		}
		if request == nil || request.Kind != KindJoin || request.Status != StatusPending {
			return apperror.New(apperror.ErrNotFound, "join request not found")
		}

		resolved, err := s.requests.Resolve(ctx, q, request.ID, StatusApproved)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperror.New(apperror.ErrNotFound, "join request is no longer pending")
		}

		member, err = s.members.Add(ctx, q, request.UserID, g.ID, false, false)
		if err != nil {
			return err
		}

		actor, err := s.actor(ctx, q, actorID)
		if err != nil {
			return err
		}
		return s.notify(ctx, q, &notification.CreateParams{
			RecipientID: request.UserID,
			SenderID:    actor.ID,
			SenderName:  actor.Username,
			Type:        notification.TypeGroupJoinApproved,
			Message:     fmt.Sprintf("%s approved your request to join %s", actor.Username, g.Name),
			RefType:     notification.RefTypeGroup,
			RefID:       g.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// DenyJoinRequest resolves a pending join request to denied and notifies the
// applicant. Requires admin or mod.
func (s *Service) DenyJoinRequest(ctx context.Context, actorID, groupID, requestID int64) error {
	return s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanModerateRequests() {
			return apperror.New(apperror.ErrForbidden, "only admins and moderators can deny join requests")
		}

		request, err := s.requests.GetByID(ctx, q, requestID, g.ID)
		if err != nil {
			return err
		}
		if request == nil || request.Kind != KindJoin || request.Status != StatusPending {
			return apperror.New(apperror.ErrNotFound, "join request not found")
		}

		resolved, err := s.requests.Resolve(ctx, q, request.ID, StatusDenied)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperror.New(apperror.ErrNotFound, "join request is no longer pending")
		}

		actor, err := s.actor(ctx, q, actorID)
		if err != nil {
			return err
		}
		return s.notify(ctx, q, &notification.CreateParams{
			RecipientID: request.UserID,
			SenderID:    actor.ID,
			SenderName:  actor.Username,
			Type:        notification.TypeGroupJoinDenied,
			Message:     fmt.Sprintf("%s declined your request to join %s", actor.Username, g.Name),
			RefType:     notification.RefTypeGroup,
			RefID:       g.ID,
		})
	})
}

// Leave removes the actor's own membership. Admins must hand off the admin
// bit first.
func (s *Service) Leave(ctx context.Context, actorID, groupID int64) error {
	return s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}

		m, err := s.members.Get(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if m == nil {
			return apperror.New(apperror.ErrNotFound, "you are not a member of this group")
		}
		if !RoleOf(m).CanLeave() {
			return apperror.New(apperror.ErrForbidden, "admins must transfer admin status before leaving")
		}

		if err := s.members.Remove(ctx, q, actorID, g.ID); err != nil {
			return err
		}
		return s.requests.DeletePending(ctx, q, actorID, g.ID)
	})
}

// RemoveMember removes another user's membership, or clears their pending
// request, and notifies removed members. Requires admin or mod.
func (s *Service) RemoveMember(ctx context.Context, actorID, groupID, targetID int64) error {
	if actorID == targetID {
		return apperror.New(apperror.ErrValidation, "use leave to remove yourself")
	}

	return s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanRemoveMember() {
			return apperror.New(apperror.ErrForbidden, "only admins and moderators can remove members")
		}

		m, err := s.members.Get(ctx, q, targetID, g.ID)
		if err != nil {
			return err
		}
		pending, err := s.requests.GetPending(ctx, q, targetID, g.ID)
		if err != nil {
			return err
		}
		if m == nil && pending == nil {
			return apperror.New(apperror.ErrNotFound, "no membership or pending request for this user")
		}

		if m != nil {
			if m.IsAdmin {
				// Re-checked here, in the same transaction as the delete.
				admins, err := s.members.CountAdmins(ctx, q, g.ID)
				if err != nil {
					return err
				}
				if admins <= 1 {
					return apperror.New(apperror.ErrConflict, "cannot remove the group's last admin")
				}
			}
			if err := s.members.Remove(ctx, q, targetID, g.ID); err != nil {
				return err
			}
		}
		if pending != nil {
			if err := s.requests.DeletePending(ctx, q, targetID, g.ID); err != nil {
				return err
			}
		}

		if m == nil {
			return nil
		}

		actor, err := s.actor(ctx, q, actorID)
		if err != nil {
			return err
		}
		return s.notify(ctx, q, &notification.CreateParams{
			RecipientID: targetID,
			SenderID:    actor.ID,
			SenderName:  actor.Username,
			Type:        notification.TypeGroupRemoved,
			Message:     fmt.Sprintf("%s removed you from %s", actor.Username, g.Name),
			RefType:     notification.RefTypeGroup,
			RefID:       g.ID,
		})
	})
}

// UpdateMemberRoles applies partial admin/mod bit changes to a member and
// notifies them of each change. Requires admin. Revoking the last admin bit
// is refused.
func (s *Service) UpdateMemberRoles(ctx context.Context, actorID, groupID, targetID int64, req *UpdateRolesRequest) (*Membership, error) {
	if req.IsAdmin == nil && req.IsMod == nil {
		return nil, apperror.New(apperror.ErrValidation, "no role changes requested")
	}

	var updated *Membership
	err := s.db.Transact(ctx, func(q database.Querier) error {
		g, err := s.getGroup(ctx, q, groupID)
		if err != nil {
			return err
		}
		role, err := s.roleOf(ctx, q, actorID, g.ID)
		if err != nil {
			return err
		}
		if !role.CanChangeRoles() {
			return apperror.New(apperror.ErrForbidden, "only admins can change member roles")
		}

		before, err := s.members.Get(ctx, q, targetID, g.ID)
		if err != nil {
			return err
		}
		if before == nil {
			return apperror.New(apperror.ErrNotFound, "member not found")
		}

		if req.IsAdmin != nil && !*req.IsAdmin && before.IsAdmin {
			// Admin count re-checked immediately before the write, inside
			// the same transaction, so concurrent revocations cannot both
			// pass the check.
			admins, err := s.members.CountAdmins(ctx, q, g.ID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return apperror.New(apperror.ErrConflict, "cannot revoke the group's last admin")
			}
		}

		updated, err = s.members.UpdateRoles(ctx, q, targetID, g.ID, req)
		if err != nil {
			return err
		}
		if updated == nil {
			return apperror.New(apperror.ErrNotFound, "member not found")
		}

		if targetID == actorID {
			return nil
		}

		actor, err := s.actor(ctx, q, actorID)
		if err != nil {
			return err
		}
		for _, msg := range roleChangeMessages(actor.Username, g.Name, before, updated) {
			if err := s.notify(ctx, q, &notification.CreateParams{
				RecipientID: targetID,
				SenderID:    actor.ID,
				SenderName:  actor.Username,
				Type:        notification.TypeGroupRoleChanged,
				Message:     msg,
				RefType:     notification.RefTypeGroup,
				RefID:       g.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func roleChangeMessages(actorName, groupName string, before, after *Membership) []string {
	var msgs []string
	if before.IsAdmin != after.IsAdmin {
		if after.IsAdmin {
			msgs = append(msgs, fmt.Sprintf("%s made you an admin of %s", actorName, groupName))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s removed you as an admin of %s", actorName, groupName))
		}
	}
	if before.IsMod != after.IsMod {
		if after.IsMod {
			msgs = append(msgs, fmt.Sprintf("%s made you a moderator of %s", actorName, groupName))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s removed you as a moderator of %s", actorName, groupName))
		}
	}
	return msgs
}

func (s *Service) getGroup(ctx context.Context, q database.Querier, groupID int64) (*Group, error) {
	group, err := s.groups.GetByID(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.New(apperror.ErrNotFound, "group not found")
	}
	return group, nil
}

func (s *Service) roleOf(ctx context.Context, q database.Querier, userID, groupID int64) (Role, error) {
	m, err := s.members.Get(ctx, q, userID, groupID)
	if err != nil {
		return Role{}, err
	}
	return RoleOf(m), nil
}

func (s *Service) actor(ctx context.Context, q database.Querier, actorID int64) (*user.User, error) {
	actor, err := s.users.GetByID(ctx, q, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperror.New(apperror.ErrUnauthenticated, "acting user no longer exists")
	}
	return actor, nil
}

func (s *Service) notify(ctx context.Context, q database.Querier, p *notification.CreateParams) error {
	_, err := s.notifier.Notify(ctx, q, p)
	return err
}

func validateGroupName(name string) error {
	if len(name) < 3 || len(name) > 100 {
		return apperror.New(apperror.ErrValidation, "group name must be between 3 and 100 characters")
	}
	return nil
}
