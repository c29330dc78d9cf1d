package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/danmuck/memberbar/internal/testutil/testlog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, format string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config."+format)
	if _, err := run(t, "init", "--output", path, "--format", format); err != nil {
		t.Fatalf("init: %v", err)
	}
	return path
}

func TestInitRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "toml")
	if _, err := run(t, "init", "--output", path); err == nil {
		t.Fatalf("expected init to refuse existing file")
	}
	if _, err := run(t, "init", "--output", path, "--force"); err != nil {
		t.Fatalf("init --force: %v", err)
	}
}

func TestValidateTemplates(t *testing.T) {
	testlog.Start(t)
	for _, format := range []string{"toml", "yaml"} {
		path := writeConfig(t, format)
		out, err := run(t, "validate", "--config", path)
		if err != nil {
			t.Fatalf("validate %s: %v", format, err)
		}
		if !strings.Contains(out, "members=2") {
			t.Fatalf("unexpected validate output for %s: %q", format, out)
		}
	}
}

func TestRenderText(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "toml")
	out, err := run(t, "render", "--config", path, "--viewer", "admin", "--displayed", "alice")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"toolbar visible", "[my-account-buddypress]", "[user-admin]", "[bp-notifications]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAnonymousJSON(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "render", "--format", "json", "--url", "http://localhost:9300/")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var body struct {
		Visible bool `json:"visible"`
		Tree    []struct {
			ID string `json:"id"`
		} `json:"tree"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if !body.Visible {
		t.Fatalf("anonymous toolbar should be visible")
	}
	var ids []string
	for _, br := range body.Tree {
		ids = append(ids, br.ID)
	}
	if !strings.Contains(strings.Join(ids, ","), "bp-login") {
		t.Fatalf("expected login node, got %v", ids)
	}
}

func TestRenderUnknownViewer(t *testing.T) {
	testlog.Start(t)
	_, err := run(t, "render", "--viewer", "nobody")
	if !errors.Is(err, app.ErrUnknownMember) {
		t.Fatalf("expected unknown member error, got %v", err)
	}
	if _, err := run(t, "render", "--format", "xml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestHooksListing(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "hooks")
	if err != nil {
		t.Fatalf("hooks: %v", err)
	}
	account := strings.Index(out, "members.account-menu")
	invitations := strings.Index(out, "members.invitations-menu")
	if account < 0 || invitations < 0 || account > invitations {
		t.Fatalf("setup callbacks out of order:\n%s", out)
	}
}
