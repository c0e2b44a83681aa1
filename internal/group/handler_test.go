package group

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"github.com/circleapp/circles/pkg/middleware"
	"github.com/circleapp/circles/pkg/response"
)

func newTestHandler(st *fakeState) (http.Handler, *Service) {
	svc := newTestService(st)
	h := NewHandler(svc, zap.NewNop())
	return h.Routes(), svc
}

// doRequest runs one request against the group router, optionally
// authenticated as userID (0 means anonymous).
func doRequest(t *testing.T, router http.Handler, method, path string, body any, userID int64) (*httptest.ResponseRecorder, *response.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != 0 {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, &envelope
}

func decodeData(t *testing.T, envelope *response.APIResponse, out any) {
	t.Helper()
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHandlerCreateGroup(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	router, _ := newTestHandler(st)

	rec, envelope := doRequest(t, router, http.MethodPost, "/",
		CreateGroupRequest{Name: "Book Club", IsPrivate: true}, 1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}

	var group GroupResponse
	decodeData(t, envelope, &group)
	if group.Name != "Book Club" || !group.IsPrivate {
		t.Errorf("group = %q private:%v, want \"Book Club\" private:true", group.Name, group.IsPrivate)
	}

	// Unauthenticated creation is rejected before reaching the service.
	rec, _ = doRequest(t, router, http.MethodPost, "/",
		CreateGroupRequest{Name: "Another"}, 0)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec, envelope = doRequest(t, router, http.MethodPost, "/",
		CreateGroupRequest{Name: "book club"}, 1)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate name status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if envelope.Error == nil || envelope.Error.Code != "CONFLICT" {
		t.Errorf("error = %+v, want code CONFLICT", envelope.Error)
	}
}

func TestHandlerGetGroup(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	router, svc := newTestHandler(st)

	public := mustCreateGroup(t, svc, 1, "Runners", false)
	private := mustCreateGroup(t, svc, 1, "Secret Society", true)

	// Public group profile is readable anonymously.
	rec, envelope := doRequest(t, router, http.MethodGet, groupPath(public.ID), nil, 0)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var group GroupResponse
	decodeData(t, envelope, &group)
	if group.Name != "Runners" || len(group.Members) != 1 {
		t.Errorf("group = %q with %d members, want \"Runners\" with 1", group.Name, len(group.Members))
	}

	// Private group reads as missing for outsiders.
	rec, _ = doRequest(t, router, http.MethodGet, groupPath(private.ID), nil, 0)
	if rec.Code != http.StatusNotFound {
		t.Errorf("anonymous private status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec, _ = doRequest(t, router, http.MethodGet, groupPath(private.ID), nil, 1)
	if rec.Code != http.StatusOK {
		t.Errorf("member private status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/not-a-number", nil, 0)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandlerJoinRequestFlow(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	st.addUser(2, "bob")
	router, svc := newTestHandler(st)

	g := mustCreateGroup(t, svc, 1, "Secret Society", true)

	// bob files a join request.
	rec, envelope := doRequest(t, router, http.MethodPost, groupPath(g.ID)+"/join", nil, 2)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var join JoinResponse
	decodeData(t, envelope, &join)
	if join.Member != nil {
		t.Error("private join must not return a membership")
	}
	if join.Request == nil || join.Request.Status != string(StatusPending) {
		t.Fatalf("join request = %+v, want pending", join.Request)
	}

	// alice reviews the queue.
	rec, envelope = doRequest(t, router, http.MethodGet, groupPath(g.ID)+"/requests", nil, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("list requests status = %d, want %d", rec.Code, http.StatusOK)
	}
	var requests []*RequestResponse
	decodeData(t, envelope, &requests)
	if len(requests) != 1 || requests[0].UserID != 2 {
		t.Fatalf("requests = %+v, want one from user 2", requests)
	}

	// bob may not review it himself.
	rec, _ = doRequest(t, router, http.MethodGet, groupPath(g.ID)+"/requests", nil, 2)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-moderator list status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	// alice accepts.
	acceptPath := groupPath(g.ID) + "/requests/" + itoa(requests[0].ID) + "/accept"
	rec, envelope = doRequest(t, router, http.MethodPost, acceptPath, nil, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var member MemberResponse
	decodeData(t, envelope, &member)
	if member.UserID != 2 || member.IsAdmin || member.IsMod {
		t.Errorf("member = %+v, want user 2 with no roles", member)
	}

	// Accepting an already resolved request is a 404.
	rec, _ = doRequest(t, router, http.MethodPost, acceptPath, nil, 1)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second accept status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerInviteFlow(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	st.addUser(2, "bob")
	router, svc := newTestHandler(st)

	g := mustCreateGroup(t, svc, 1, "Chess Club", true)

	rec, envelope := doRequest(t, router, http.MethodPost, groupPath(g.ID)+"/invites",
		InviteRequest{UserID: 2}, 1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("invite status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var request RequestResponse
	decodeData(t, envelope, &request)
	if request.UserID != 2 || request.Kind != string(KindInvite) {
		t.Errorf("invite = %+v, want user 2 kind %s", request, KindInvite)
	}

	rec, _ = doRequest(t, router, http.MethodPost, groupPath(g.ID)+"/invites/accept", nil, 2)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept invite status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if _, ok := st.members[memberKey{2, g.ID}]; !ok {
		t.Error("accepting the invite did not create the membership")
	}
}

func TestHandlerLeaveAndRoles(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	st.addUser(2, "bob")
	router, svc := newTestHandler(st)

	g := mustCreateGroup(t, svc, 1, "Runners", false)
	mustJoin(t, svc, 2, g.ID)

	// Sole admin cannot leave.
	rec, _ := doRequest(t, router, http.MethodPost, groupPath(g.ID)+"/leave", nil, 1)
	if rec.Code != http.StatusForbidden {
		t.Errorf("admin leave status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	// Revoking the last admin bit over HTTP is a conflict.
	notAdmin := false
	rec, _ = doRequest(t, router, http.MethodPut, groupPath(g.ID)+"/members/1/roles",
		UpdateRolesRequest{IsAdmin: &notAdmin}, 1)
	if rec.Code != http.StatusConflict {
		t.Errorf("revoke last admin status = %d, want %d", rec.Code, http.StatusConflict)
	}

	isMod := true
	rec, envelope := doRequest(t, router, http.MethodPut, groupPath(g.ID)+"/members/2/roles",
		UpdateRolesRequest{IsMod: &isMod}, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("grant mod status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var member MemberResponse
	decodeData(t, envelope, &member)
	if !member.IsMod {
		t.Error("mod bit not set in response")
	}

	rec, _ = doRequest(t, router, http.MethodPost, groupPath(g.ID)+"/leave", nil, 2)
	if rec.Code != http.StatusOK {
		t.Errorf("member leave status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandlerRemoveMember(t *testing.T) {
	st := newFakeState()
	st.addUser(1, "alice")
	st.addUser(2, "bob")
	router, svc := newTestHandler(st)

	g := mustCreateGroup(t, svc, 1, "Runners", false)
	mustJoin(t, svc, 2, g.ID)

	rec, _ := doRequest(t, router, http.MethodDelete, groupPath(g.ID)+"/members/1", nil, 2)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin remove status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	rec, _ = doRequest(t, router, http.MethodDelete, groupPath(g.ID)+"/members/2", nil, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if _, ok := st.members[memberKey{2, g.ID}]; ok {
		t.Error("membership still present after removal")
	}
}

func groupPath(id int64) string {
	return "/" + itoa(id)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
