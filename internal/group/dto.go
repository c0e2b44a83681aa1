package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description *string `json:"description,omitempty"`
	IsPrivate   bool    `json:"is_private"`
}

// UpdateGroupRequest represents the request to update a group's details
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty"`
}

// SetPrivacyRequest represents the request to change a group's privacy flag
type SetPrivacyRequest struct {
	IsPrivate bool `json:"is_private"`
}

// InviteRequest represents the request to invite a user into a group
type InviteRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// UpdateRolesRequest carries partial role changes for a member. Nil fields
// are left unchanged.
type UpdateRolesRequest struct {
	IsAdmin *bool `json:"is_admin,omitempty"`
	IsMod   *bool `json:"is_mod,omitempty"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID          int64             `json:"id"`
	CreatorID   int64             `json:"creator_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	IsPrivate   bool              `json:"is_private"`
	CreatedAt   string            `json:"created_at"`
	Members     []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	IsMod    bool   `json:"is_mod"`
	JoinedAt string `json:"joined_at"`
}

// RequestResponse represents a pending request in a response
type RequestResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username,omitempty"`
	GroupID     int64  `json:"group_id"`
	Kind        string `json:"kind"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}

// JoinResponse is returned by the join endpoint: a membership for public
// groups, a pending request for private ones.
type JoinResponse struct {
	Member  *MemberResponse  `json:"member,omitempty"`
	Request *RequestResponse `json:"request,omitempty"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		CreatorID:   g.CreatorID,
		Name:        g.Name,
		Description: g.Description,
		IsPrivate:   g.IsPrivate,
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Membership model to a MemberResponse DTO
func (m *Membership) ToResponse() *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID,
		Username: m.Username,
		Email:    m.Email,
		IsAdmin:  m.IsAdmin,
		IsMod:    m.IsMod,
		JoinedAt: m.JoinedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Request model to a RequestResponse DTO
func (r *Request) ToResponse() *RequestResponse {
	return &RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Username:    r.Username,
		GroupID:     r.GroupID,
		Kind:        string(r.Kind),
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt.Format("2006-01-02T15:04:05Z"),
	}
}
