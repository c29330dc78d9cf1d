package notifications

import (
	"errors"
	"testing"

	"github.com/danmuck/memberbar/internal/site"
	"github.com/danmuck/memberbar/internal/testutil/testlog"
	"github.com/danmuck/memberbar/internal/toolbar"
	"github.com/google/go-cmp/cmp"
)

type failingStore struct{}

func (failingStore) Unread(int64) ([]Notification, error) {
	return nil, errors.New("store offline")
}

func barWithSecondary(t *testing.T) *toolbar.Bar {
	t.Helper()
	bar := toolbar.New()
	if err := bar.AddGroup(toolbar.Node{ID: parentID}); err != nil {
		t.Fatalf("add group: %v", err)
	}
	return bar
}

func memberEnv() *site.Env {
	return &site.Env{
		Site:   site.New("community", "https://example.org"),
		Viewer: site.Viewer{User: site.User{ID: 7, Slug: "alice"}, LoggedIn: true},
	}
}

func TestToolbarMenuListsUnread(t *testing.T) {
	testlog.Start(t)
	store := NewMemoryStore()
	_ = store.Add(Notification{ID: 12, UserID: 7, Content: "Bob mentioned you", Href: "https://example.org/activity/12/"})
	_ = store.Add(Notification{ID: 11, UserID: 7, Content: "New friend request"})
	_ = store.Add(Notification{ID: 13, UserID: 8, Content: "not alice's"})

	bar := barWithSecondary(t)
	if err := NewMenu(store).ToolbarMenu(bar, memberEnv()); err != nil {
		t.Fatalf("toolbar menu: %v", err)
	}

	top, ok := bar.Node(MenuID)
	if !ok {
		t.Fatalf("expected %s node", MenuID)
	}
	if top.Title != "2" || top.Meta.Class != alertClass || top.Href != "https://example.org/members/alice/notifications/" {
		t.Fatalf("unexpected top node: %+v", top)
	}
	want := []toolbar.Node{
		{ID: "notification-11", Parent: MenuID, Title: "New friend request", Href: "https://example.org/members/alice/notifications/"},
		{ID: "notification-12", Parent: MenuID, Title: "Bob mentioned you", Href: "https://example.org/activity/12/"},
	}
	if diff := cmp.Diff(want, bar.Children(MenuID)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestToolbarMenuEmpty(t *testing.T) {
	testlog.Start(t)
	bar := barWithSecondary(t)
	if err := NewMenu(NewMemoryStore()).ToolbarMenu(bar, memberEnv()); err != nil {
		t.Fatalf("toolbar menu: %v", err)
	}
	top, _ := bar.Node(MenuID)
	if top.Title != "0" || top.Meta.Class != quietClass {
		t.Fatalf("unexpected top node: %+v", top)
	}
	empty, ok := bar.Node(EmptyID)
	if !ok || empty.Title != "No new notifications" {
		t.Fatalf("expected empty placeholder, got %+v ok=%v", empty, ok)
	}
}

func TestToolbarMenuAnonymousAndErrors(t *testing.T) {
	testlog.Start(t)
	bar := barWithSecondary(t)
	env := memberEnv()
	env.Viewer = site.Anonymous()
	if err := NewMenu(failingStore{}).ToolbarMenu(bar, env); err != nil {
		t.Fatalf("anonymous viewer should not touch the store: %v", err)
	}
	if bar.Len() != 1 {
		t.Fatalf("anonymous viewer should add nothing")
	}
	if err := NewMenu(failingStore{}).ToolbarMenu(bar, memberEnv()); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestMemoryStore(t *testing.T) {
	testlog.Start(t)
	s := NewMemoryStore()
	if err := s.Add(Notification{ID: 0, UserID: 1}); !errors.Is(err, ErrInvalidNotification) {
		t.Fatalf("expected ErrInvalidNotification, got %v", err)
	}
	_ = s.Add(Notification{ID: 1, UserID: 1})
	if err := s.Add(Notification{ID: 1, UserID: 2}); !errors.Is(err, ErrNotificationExists) {
		t.Fatalf("expected ErrNotificationExists, got %v", err)
	}
	if !s.MarkRead(1) || s.MarkRead(1) {
		t.Fatalf("unexpected MarkRead results")
	}
	if list, _ := s.Unread(1); len(list) != 0 {
		t.Fatalf("expected no unread, got %v", list)
	}
}
