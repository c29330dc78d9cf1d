package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/danmuck/memberbar/internal/config"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/danmuck/memberbar/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
)

const testConfig = `
[site]
name = "community"
root_url = "https://example.org"
signup_allowed = false
components = ["members", "xprofile", "settings", "notifications"]

[server]
admin_token = "%s"

[[users]]
id = 1
slug = "admin"
capabilities = ["edit_users", "members_invitations_view_screens"]

[[users]]
id = 2
slug = "bob"

[[notifications]]
id = 5
user = "admin"
content = "Bob joined"
`

func newTestServer(t *testing.T, token string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, err := config.Parse([]byte(fmt.Sprintf(testConfig, token)), config.FormatTOML)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	composer, err := app.NewComposer(cfg)
	if err != nil {
		t.Fatalf("composer: %v", err)
	}
	return New(cfg, composer)
}

func get(t *testing.T, s *Server, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeToolbar(t *testing.T, rr *httptest.ResponseRecorder) toolbarResponse {
	t.Helper()
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body toolbarResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, "")
	rr := get(t, s, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	logging.Logf("server/http: GET /health status=%d", rr.Code)
}

func TestToolbarAnonymous(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, "")
	body := decodeToolbar(t, get(t, s, "/toolbar?url=https://example.org/", ""))

	if !body.Visible {
		t.Fatalf("anonymous toolbar should be forced visible")
	}
	var titles []string
	for _, n := range body.Nodes {
		titles = append(titles, n.Title)
	}
	if len(body.Nodes) != 2 || body.Nodes[1].ID != "bp-login" {
		t.Fatalf("expected secondary group and login node, got %v", titles)
	}
}

func TestToolbarEditorOnMemberPage(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, "")
	body := decodeToolbar(t, get(t, s, "/toolbar?viewer=admin&displayed=bob&tree=true", ""))

	if len(body.Nodes) != 0 || len(body.Tree) == 0 {
		t.Fatalf("expected tree response only")
	}
	var userAdmin, notifications int
	for _, br := range body.Tree {
		switch br.ID {
		case "user-admin":
			userAdmin = len(br.Children)
		case "top-secondary":
			for _, child := range br.Children {
				if child.ID == "bp-notifications" {
					notifications = len(child.Children)
				}
			}
		}
	}
	// show_avatars defaults on; cover images are off in this config.
	if userAdmin != 4 {
		t.Fatalf("expected 4 user-admin children, got %d", userAdmin)
	}
	if notifications != 1 {
		t.Fatalf("expected 1 notification child, got %d", notifications)
	}
}

func TestToolbarRejectsUnknownMembers(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, "")
	if rr := get(t, s, "/toolbar?viewer=ghost", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown viewer, got %d", rr.Code)
	}
	if rr := get(t, s, "/toolbar?displayed=ghost", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown member, got %d", rr.Code)
	}
	if rr := get(t, s, "/toolbar?ajax=maybe", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad ajax flag, got %d", rr.Code)
	}
}

func TestTokenGuard(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, "sekrit")
	if rr := get(t, s, "/toolbar", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if rr := get(t, s, "/hooks", "wrong"); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rr.Code)
	}
	rr := get(t, s, "/hooks", "sekrit")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rr.Code)
	}
	var hooks map[string][]hookEntry
	if err := json.Unmarshal(rr.Body.Bytes(), &hooks); err != nil {
		t.Fatalf("decode hooks: %v", err)
	}
	setup := hooks["bp_setup_admin_bar"]
	if len(setup) != 2 || setup[0].Name != "members.account-menu" || setup[1].Name != "members.invitations-menu" {
		t.Fatalf("unexpected setup hooks: %+v", setup)
	}
	if rr := get(t, s, "/health", ""); rr.Code != http.StatusOK {
		t.Fatalf("health must stay open, got %d", rr.Code)
	}
}
