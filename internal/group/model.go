package group

import "time"

// Group represents a named collection users can join. Names are unique
// case-insensitively.
type Group struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Membership represents a user's membership in a group. The admin and mod
// bits are independent capabilities: a member can hold both, either, or
// neither.
type Membership struct {
	UserID   int64     `json:"user_id"`
	GroupID  int64     `json:"group_id"`
	IsAdmin  bool      `json:"is_admin"`
	IsMod    bool      `json:"is_mod"`
	JoinedAt time.Time `json:"joined_at"`

	// Populated from JOIN
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RequestKind distinguishes who initiated a pending request.
type RequestKind string

const (
	// KindJoin means the user asked to join the group.
	KindJoin RequestKind = "JOIN"
	// KindInvite means a member invited the user into the group.
	KindInvite RequestKind = "INVITE"
)

func (k RequestKind) isInvite() bool { return k == KindInvite }

func kindFromBool(isInvite bool) RequestKind {
	if isInvite {
		return KindInvite
	}
	return KindJoin
}

// RequestStatus is the lifecycle state of a request. Resolved requests are
// retained with a terminal status; withdrawals are hard-deleted instead.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusDenied   RequestStatus = "DENIED"
)

// Request is a pending relation between a user and a group awaiting
// resolution. UserID is the prospective member in both directions.
type Request struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	GroupID     int64         `json:"group_id"`
	Kind        RequestKind   `json:"kind"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requested_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Populated from JOIN on list queries
	Username string `json:"username,omitempty"`
}
