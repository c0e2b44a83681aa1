package notification

import "time"

// Notification represents a notification in the system. Sender fields
// describe the user whose action the message reports; the recipient is the
// user being notified.
type Notification struct {
	ID                int64     `json:"id"`
	RecipientID       int64     `json:"recipient_id"`
	SenderID          *int64    `json:"sender_id,omitempty"`
	SenderName        string    `json:"sender_name,omitempty"`
	Type              Type      `json:"type"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"is_read"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"` // e.g., "GROUP"
	RelatedEntityID   *int64    `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Type tags a notification with the transition that produced it.
type Type string

const (
	TypeGroupInvite       Type = "GROUP_INVITE"
	TypeGroupJoinApproved Type = "GROUP_JOIN_APPROVED"
	TypeGroupJoinDenied   Type = "GROUP_JOIN_DENIED"
	TypeGroupRemoved      Type = "GROUP_MEMBER_REMOVED"
	TypeGroupRoleChanged  Type = "GROUP_ROLE_CHANGED"
)

// RefTypeGroup is the reference type for notifications pointing back at a group.
const RefTypeGroup = "GROUP"
