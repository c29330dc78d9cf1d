package members

import (
	"fmt"

	"github.com/danmuck/memberbar/internal/adminbar"
)

// Callback names and priorities for the members toolbar contributors.
const (
	AccountMenuCallback       = "members.account-menu"
	UserAdminMenuCallback     = "members.user-admin-menu"
	NotificationsMenuCallback = "members.notifications-menu"
	RemoveEditPageCallback    = "members.remove-edit-page-menu"
	InvitationsMenuCallback   = "members.invitations-menu"

	AccountMenuPriority       = 4
	UserAdminMenuPriority     = 99
	NotificationsMenuPriority = 90
	RemoveEditPagePriority    = 10
	InvitationsMenuPriority   = 90
)

type Options struct {
	// Notifications builds the notifications dropdown; nil disables it.
	Notifications NotificationsToolbar
}

// Register wires every members contributor into h.
func Register(h *adminbar.Hooks, opts Options) error {
	regs := []struct {
		hook     string
		name     string
		priority int
		cb       func(*adminbar.Frame)
	}{
		{adminbar.HookSetup, AccountMenuCallback, AccountMenuPriority, AccountMenu},
		{adminbar.HookMenu, UserAdminMenuCallback, UserAdminMenuPriority, UserAdminMenu},
		{adminbar.HookMenu, NotificationsMenuCallback, NotificationsMenuPriority, NotificationsMenu(opts.Notifications)},
		{adminbar.HookAddMenus, RemoveEditPageCallback, RemoveEditPagePriority, RemoveEditPageMenu},
		{adminbar.HookSetup, InvitationsMenuCallback, InvitationsMenuPriority, InvitationsMenu},
	}
	for _, r := range regs {
		if err := h.Add(r.hook, r.name, r.priority, r.cb); err != nil {
			return fmt.Errorf("members: register %s: %w", r.name, err)
		}
	}
	return nil
}
