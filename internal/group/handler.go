package group

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/circleapp/circles/pkg/middleware"
	"github.com/circleapp/circles/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new group handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for group endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// Reads go through the visibility gate, so unauthenticated requests are
	// allowed here and denied per group.
	r.Get("/{id}", h.Get)
	r.Get("/{id}/members", h.ListMembers)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Put("/{id}", h.Update)
		r.Put("/{id}/privacy", h.SetPrivacy)
		r.Delete("/{id}", h.Delete)

		r.Post("/{id}/join", h.Join)
		r.Delete("/{id}/join", h.CancelJoinRequest)
		r.Post("/{id}/leave", h.Leave)

		r.Post("/{id}/invites", h.Invite)
		r.Post("/{id}/invites/accept", h.AcceptInvite)
		r.Post("/{id}/invites/decline", h.DeclineInvite)

		r.Get("/{id}/requests", h.ListJoinRequests)
		r.Post("/{id}/requests/{requestId}/accept", h.AcceptJoinRequest)
		r.Post("/{id}/requests/{requestId}/deny", h.DenyJoinRequest)

		r.Delete("/{id}/members/{userId}", h.RemoveMember)
		r.Put("/{id}/members/{userId}/roles", h.UpdateMemberRoles)
	})

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a new group; the creator becomes its first admin and moderator
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} response.APIResponse{data=GroupResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	group, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, group.ToResponse())
}

// Get handles GET /groups/{id}
// @Summary      Get group by ID
// @Description  Get a group with its members; private groups are visible to members only
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	group, members, err := h.service.Get(r.Context(), actorID, groupID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	groupResp := group.ToResponse()
	groupResp.Members = make([]*MemberResponse, len(members))
	for i, m := range members {
		groupResp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, groupResp)
}

// List handles GET /groups
// @Summary      List my groups
// @Tags         groups
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]GroupResponse}
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r.Context())

	groups, err := h.service.ListByUserID(r.Context(), actorID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	groupResponses := make([]*GroupResponse, len(groups))
	for i, group := range groups {
		groupResponses[i] = group.ToResponse()
	}

	response.JSON(w, http.StatusOK, groupResponses)
}

// Update handles PUT /groups/{id}
// @Summary      Update group details
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body UpdateGroupRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	var req UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	group, err := h.service.Update(r.Context(), actorID, groupID, &req)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, group.ToResponse())
}

// SetPrivacy handles PUT /groups/{id}/privacy
// @Summary      Change group privacy
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body SetPrivacyRequest true "New privacy flag"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/privacy [put]
func (h *Handler) SetPrivacy(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	var req SetPrivacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	group, err := h.service.SetPrivacy(r.Context(), actorID, groupID, req.IsPrivate)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, group.ToResponse())
}

// Delete handles DELETE /groups/{id}
// @Summary      Delete a group
// @Description  Delete a group and all its memberships and pending requests
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), actorID, groupID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Group deleted successfully"})
}

// ListMembers handles GET /groups/{id}/members
// @Summary      List group members
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/members [get]
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	members, err := h.service.ListMembers(r.Context(), actorID, groupID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	memberResponses := make([]*MemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, memberResponses)
}

// Join handles POST /groups/{id}/join
// @Summary      Join a group
// @Description  Join a public group directly, or file a join request for a private one
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      201 {object} response.APIResponse{data=JoinResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/join [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	member, request, err := h.service.Join(r.Context(), actorID, groupID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	resp := &JoinResponse{}
	if member != nil {
		resp.Member = member.ToResponse()
	}
	if request != nil {
		resp.Request = request.ToResponse()
	}
	response.JSON(w, http.StatusCreated, resp)
}

// CancelJoinRequest handles DELETE /groups/{id}/join
// @Summary      Cancel my pending join request
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/join [delete]
func (h *Handler) CancelJoinRequest(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.CancelJoinRequest(r.Context(), actorID, groupID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Join request cancelled"})
}

// Leave handles POST /groups/{id}/leave
// @Summary      Leave a group
// @Description  Leave a group; admins must transfer admin status first
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/leave [post]
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Leave(r.Context(), actorID, groupID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Left group successfully"})
}

// Invite handles POST /groups/{id}/invites
// @Summary      Invite a user to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body InviteRequest true "User to invite"
// @Success      201 {object} response.APIResponse{data=RequestResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/invites [post]
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	request, err := h.service.Invite(r.Context(), actorID, groupID, req.UserID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, request.ToResponse())
}

// AcceptInvite handles POST /groups/{id}/invites/accept
// @Summary      Accept my pending invite
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/invites/accept [post]
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	member, err := h.service.AcceptInvite(r.Context(), actorID, groupID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, member.ToResponse())
}

// DeclineInvite handles POST /groups/{id}/invites/decline
// @Summary      Decline my pending invite
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/invites/decline [post]
func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.DeclineInvite(r.Context(), actorID, groupID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Invite declined"})
}

// ListJoinRequests handles GET /groups/{id}/requests
// @Summary      List pending join requests
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]RequestResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/requests [get]
func (h *Handler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	requests, err := h.service.ListJoinRequests(r.Context(), actorID, groupID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	requestResponses := make([]*RequestResponse, len(requests))
	for i, req := range requests {
		requestResponses[i] = req.ToResponse()
	}

	response.JSON(w, http.StatusOK, requestResponses)
}

// AcceptJoinRequest handles POST /groups/{id}/requests/{requestId}/accept
// @Summary      Accept a join request
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        requestId path int true "Request ID"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/requests/{requestId}/accept [post]
func (h *Handler) AcceptJoinRequest(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	member, err := h.service.AcceptJoinRequest(r.Context(), actorID, groupID, requestID)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, member.ToResponse())
}

// DenyJoinRequest handles POST /groups/{id}/requests/{requestId}/deny
// @Summary      Deny a join request
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        requestId path int true "Request ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/requests/{requestId}/deny [post]
func (h *Handler) DenyJoinRequest(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.DenyJoinRequest(r.Context(), actorID, groupID, requestID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Join request denied"})
}

// RemoveMember handles DELETE /groups/{id}/members/{userId}
// @Summary      Remove a member from a group
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        userId path int true "User ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/members/{userId} [delete]
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.service.RemoveMember(r.Context(), actorID, groupID, targetID); err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}

// UpdateMemberRoles handles PUT /groups/{id}/members/{userId}/roles
// @Summary      Change a member's roles
// @Description  Grant or revoke the admin and moderator bits; revoking the last admin is refused
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        userId path int true "User ID"
// @Param        request body UpdateRolesRequest true "Role changes"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/members/{userId}/roles [put]
func (h *Handler) UpdateMemberRoles(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r)
	if !ok {
		return
	}
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}
	actorID, _ := middleware.GetUserID(r.Context())

	var req UpdateRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	member, err := h.service.UpdateMemberRoles(r.Context(), actorID, groupID, targetID, &req)
	if err != nil {
		response.FromError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, member.ToResponse())
}

func (h *Handler) groupID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return 0, false
	}
	return id, true
}
