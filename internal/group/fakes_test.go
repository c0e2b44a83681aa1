package group

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/circleapp/circles/internal/database"
	"github.com/circleapp/circles/internal/notification"
	"github.com/circleapp/circles/internal/user"
	"github.com/circleapp/circles/pkg/apperror"
)

// In-memory fakes standing in for the SQL repositories. fakeDB snapshots the
// whole state before each Transact call and restores it on error, mirroring
// transaction rollback.

type memberKey struct {
	userID  int64
	groupID int64
}

type fakeState struct {
	groups        map[int64]*Group
	members       map[memberKey]*Membership
	requests      map[int64]*Request
	users         map[int64]*user.User
	notifications []*notification.CreateParams

	nextGroupID   int64
	nextRequestID int64

	notifyErr error
}

func newFakeState() *fakeState {
	return &fakeState{
		groups:        make(map[int64]*Group),
		members:       make(map[memberKey]*Membership),
		requests:      make(map[int64]*Request),
		users:         make(map[int64]*user.User),
		nextGroupID:   1,
		nextRequestID: 1,
	}
}

func (st *fakeState) clone() *fakeState {
	cp := &fakeState{
		groups:        make(map[int64]*Group, len(st.groups)),
		members:       make(map[memberKey]*Membership, len(st.members)),
		requests:      make(map[int64]*Request, len(st.requests)),
		users:         st.users,
		notifications: append([]*notification.CreateParams(nil), st.notifications...),
		nextGroupID:   st.nextGroupID,
		nextRequestID: st.nextRequestID,
		notifyErr:     st.notifyErr,
	}
	for id, g := range st.groups {
		c := *g
		cp.groups[id] = &c
	}
	for k, m := range st.members {
		c := *m
		cp.members[k] = &c
	}
	for id, r := range st.requests {
		c := *r
		cp.requests[id] = &c
	}
	return cp
}

func (st *fakeState) addUser(id int64, username string) {
	st.users[id] = &user.User{ID: id, Username: username, Email: username + "@example.com"}
}

type fakeDB struct {
	state *fakeState
}

func (d *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, errors.New("fakeDB does not execute SQL")
}

func (d *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("fakeDB does not execute SQL")
}

func (d *fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func (d *fakeDB) Transact(ctx context.Context, fn func(q database.Querier) error) error {
	snapshot := d.state.clone()
	if err := fn(d); err != nil {
		*d.state = *snapshot
		return err
	}
	return nil
}

type fakeGroupStore struct{ state *fakeState }

func (s *fakeGroupStore) Create(ctx context.Context, q database.Querier, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	for _, g := range s.state.groups {
		if strings.EqualFold(g.Name, req.Name) {
			return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
		}
	}
	g := &Group{
		ID:          s.state.nextGroupID,
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.state.nextGroupID++
	s.state.groups[g.ID] = g
	c := *g
	return &c, nil
}

func (s *fakeGroupStore) GetByID(ctx context.Context, q database.Querier, id int64) (*Group, error) {
	g, ok := s.state.groups[id]
	if !ok {
		return nil, nil
	}
	c := *g
	return &c, nil
}

func (s *fakeGroupStore) GetByName(ctx context.Context, q database.Querier, name string) (*Group, error) {
	for _, g := range s.state.groups {
		if strings.EqualFold(g.Name, name) {
			c := *g
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeGroupStore) ListByUserID(ctx context.Context, q database.Querier, userID int64) ([]*Group, error) {
	var groups []*Group
	for key, m := range s.state.members {
		if m.UserID == userID {
			if g, ok := s.state.groups[key.groupID]; ok {
				c := *g
				groups = append(groups, &c)
			}
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *fakeGroupStore) Update(ctx context.Context, q database.Querier, id int64, req *UpdateGroupRequest) (*Group, error) {
	g, ok := s.state.groups[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		for otherID, other := range s.state.groups {
			if otherID != id && strings.EqualFold(other.Name, *req.Name) {
				return nil, apperror.New(apperror.ErrConflict, "a group with this name already exists")
			}
		}
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = req.Description
	}
	g.UpdatedAt = time.Now()
	c := *g
	return &c, nil
}

func (s *fakeGroupStore) SetPrivacy(ctx context.Context, q database.Querier, id int64, isPrivate bool) (*Group, error) {
	g, ok := s.state.groups[id]
	if !ok {
		return nil, nil
	}
	g.IsPrivate = isPrivate
	g.UpdatedAt = time.Now()
	c := *g
	return &c, nil
}

func (s *fakeGroupStore) Delete(ctx context.Context, q database.Querier, id int64) error {
	if _, ok := s.state.groups[id]; !ok {
		return apperror.New(apperror.ErrNotFound, "group not found")
	}
	delete(s.state.groups, id)
	return nil
}

type fakeMembershipStore struct{ state *fakeState }

func (s *fakeMembershipStore) Add(ctx context.Context, q database.Querier, userID, groupID int64, isAdmin, isMod bool) (*Membership, error) {
	key := memberKey{userID, groupID}
	if _, ok := s.state.members[key]; ok {
		return nil, apperror.New(apperror.ErrConflict, "user is already a member of this group")
	}
	m := &Membership{
		UserID:   userID,
		GroupID:  groupID,
		IsAdmin:  isAdmin,
		IsMod:    isMod,
		JoinedAt: time.Now(),
	}
	if u, ok := s.state.users[userID]; ok {
		m.Username = u.Username
		m.Email = u.Email
	}
	s.state.members[key] = m
	c := *m
	return &c, nil
}

func (s *fakeMembershipStore) Get(ctx context.Context, q database.Querier, userID, groupID int64) (*Membership, error) {
	m, ok := s.state.members[memberKey{userID, groupID}]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (s *fakeMembershipStore) ListByGroup(ctx context.Context, q database.Querier, groupID int64) ([]*Membership, error) {
	var members []*Membership
	for key, m := range s.state.members {
		if key.groupID == groupID {
			c := *m
			members = append(members, &c)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if a.IsAdmin != b.IsAdmin {
			return a.IsAdmin
		}
		if a.IsMod != b.IsMod {
			return a.IsMod
		}
		return a.JoinedAt.Before(b.JoinedAt)
	})
	return members, nil
}

func (s *fakeMembershipStore) UpdateRoles(ctx context.Context, q database.Querier, userID, groupID int64, req *UpdateRolesRequest) (*Membership, error) {
	m, ok := s.state.members[memberKey{userID, groupID}]
	if !ok {
		return nil, nil
	}
	if req.IsAdmin != nil {
		m.IsAdmin = *req.IsAdmin
	}
	if req.IsMod != nil {
		m.IsMod = *req.IsMod
	}
	c := *m
	return &c, nil
}

func (s *fakeMembershipStore) Remove(ctx context.Context, q database.Querier, userID, groupID int64) error {
	key := memberKey{userID, groupID}
	if _, ok := s.state.members[key]; !ok {
		return apperror.New(apperror.ErrNotFound, "member not found")
	}
	delete(s.state.members, key)
	return nil
}

func (s *fakeMembershipStore) RemoveByGroup(ctx context.Context, q database.Querier, groupID int64) error {
	for key := range s.state.members {
		if key.groupID == groupID {
			delete(s.state.members, key)
		}
	}
	return nil
}

func (s *fakeMembershipStore) CountAdmins(ctx context.Context, q database.Querier, groupID int64) (int, error) {
	count := 0
	for key, m := range s.state.members {
		if key.groupID == groupID && m.IsAdmin {
			count++
		}
	}
	return count, nil
}

type fakeRequestLedger struct{ state *fakeState }

func (s *fakeRequestLedger) Create(ctx context.Context, q database.Querier, userID, groupID int64, kind RequestKind) (*Request, error) {
	for _, r := range s.state.requests {
		if r.UserID == userID && r.GroupID == groupID && r.Status == StatusPending {
			return nil, apperror.New(apperror.ErrConflict, "a pending request already exists for this user and group")
		}
	}
	r := &Request{
		ID:          s.state.nextRequestID,
		UserID:      userID,
		GroupID:     groupID,
		Kind:        kind,
		Status:      StatusPending,
		RequestedAt: time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.state.nextRequestID++
	s.state.requests[r.ID] = r
	c := *r
	return &c, nil
}

func (s *fakeRequestLedger) GetPending(ctx context.Context, q database.Querier, userID, groupID int64) (*Request, error) {
	for _, r := range s.state.requests {
		if r.UserID == userID && r.GroupID == groupID && r.Status == StatusPending {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeRequestLedger) GetByID(ctx context.Context, q database.Querier, id, groupID int64) (*Request, error) {
	r, ok := s.state.requests[id]
	if !ok || r.GroupID != groupID {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (s *fakeRequestLedger) Resolve(ctx context.Context, q database.Querier, id int64, status RequestStatus) (*Request, error) {
	r, ok := s.state.requests[id]
	if !ok || r.Status != StatusPending {
		return nil, nil
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	c := *r
	return &c, nil
}

func (s *fakeRequestLedger) DeletePending(ctx context.Context, q database.Querier, userID, groupID int64) error {
	for id, r := range s.state.requests {
		if r.UserID == userID && r.GroupID == groupID && r.Status == StatusPending {
			delete(s.state.requests, id)
		}
	}
	return nil
}

func (s *fakeRequestLedger) DeleteByGroup(ctx context.Context, q database.Querier, groupID int64) error {
	for id, r := range s.state.requests {
		if r.GroupID == groupID {
			delete(s.state.requests, id)
		}
	}
	return nil
}

func (s *fakeRequestLedger) ListPending(ctx context.Context, q database.Querier, groupID int64, kind RequestKind) ([]*Request, error) {
	var requests []*Request
	for _, r := range s.state.requests {
		if r.GroupID == groupID && r.Status == StatusPending && r.Kind == kind {
			c := *r
			if u, ok := s.state.users[r.UserID]; ok {
				c.Username = u.Username
			}
			requests = append(requests, &c)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

type fakeUserDirectory struct{ state *fakeState }

func (s *fakeUserDirectory) GetByID(ctx context.Context, q database.Querier, id int64) (*user.User, error) {
	u, ok := s.state.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

type fakeNotifier struct{ state *fakeState }

func (s *fakeNotifier) Notify(ctx context.Context, q database.Querier, p *notification.CreateParams) (*notification.Notification, error) {
	if s.state.notifyErr != nil {
		return nil, s.state.notifyErr
	}
	s.state.notifications = append(s.state.notifications, p)
	return &notification.Notification{
		ID:          int64(len(s.state.notifications)),
		RecipientID: p.RecipientID,
		Type:        p.Type,
		Message:     p.Message,
	}, nil
}
