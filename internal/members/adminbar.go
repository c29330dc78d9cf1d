package members

import (
	"github.com/danmuck/memberbar/internal/adminbar"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/danmuck/memberbar/internal/site"
	"github.com/danmuck/memberbar/internal/toolbar"
)

const (
	// MyAccountMenuID is the parent for everything under the viewer's
	// account menu.
	MyAccountMenuID = "my-account-buddypress"
	UserAdminMenuID = "user-admin"
	LoginNodeID     = "bp-login"
	RegisterNodeID  = "bp-register"

	InvitationsNodeID     = MyAccountMenuID + "-invitations"
	InvitationsSendNodeID = InvitationsNodeID + "-send"
	InvitationsListNodeID = InvitationsNodeID + "-list"

	secondaryClass = "ab-sub-secondary"
)

// Capabilities checked by the invitations menu.
const (
	CapInvitationsViewScreens = "members_invitations_view_screens"
	CapInvitationsSendScreen  = "members_invitations_view_send_screen"
)

// AccountMenu adds the viewer's account entry, or login and signup links
// for anonymous viewers.
func AccountMenu(f *adminbar.Frame) {
	env := f.Env
	if env.Request.Ajax {
		return
	}

	if env.Viewer.LoggedIn {
		f.AddNode(toolbar.Node{
			ID:    MyAccountMenuID,
			Group: true,
			Title: env.T("Edit My Profile"),
			Href:  env.LoggedInUserURL(),
			Meta:  toolbar.Meta{Class: secondaryClass},
		})
		return
	}

	f.Bar.ForceVisible()
	f.AddNode(toolbar.Node{
		ID:    LoginNodeID,
		Title: env.T("Log In"),
		Href:  env.Site.URLs.LoginURL(env.Request.URL),
	})
	if env.Site.SignupAllowed {
		f.AddNode(toolbar.Node{
			ID:    RegisterNodeID,
			Title: env.T("Register"),
			Href:  env.Site.URLs.SignupPage(),
		})
	}
}

// UserAdminMenu adds moderation links for the displayed member. It only
// acts for editors looking at someone else's profile.
func UserAdminMenu(f *adminbar.Frame) {
	env := f.Env
	if !env.IsUser() {
		return
	}
	if !env.Viewer.Can(site.CapEditUsers) || env.IsMyProfile() {
		return
	}

	f.AddNode(toolbar.Node{
		ID:    UserAdminMenuID,
		Title: env.T("Edit Member"),
		Href:  env.DisplayedUserURL(),
	})

	if env.ComponentActive(site.ComponentXProfile) {
		f.AddNode(toolbar.Node{
			Parent: UserAdminMenuID,
			ID:     UserAdminMenuID + "-edit-profile",
			Title:  env.T("Edit Profile"),
			Href:   env.ComponentLink(site.ComponentXProfile, "edit"),
		})
		if env.Site.ShowAvatars {
			f.AddNode(toolbar.Node{
				Parent: UserAdminMenuID,
				ID:     UserAdminMenuID + "-change-avatar",
				Title:  env.T("Edit Profile Photo"),
				Href:   env.ComponentLink(site.ComponentXProfile, "change-avatar"),
			})
		}
		if env.Site.CoverImageHeader {
			f.AddNode(toolbar.Node{
				Parent: UserAdminMenuID,
				ID:     UserAdminMenuID + "-change-cover-image",
				Title:  env.T("Edit Cover Image"),
				Href:   env.ComponentLink(site.ComponentXProfile, "change-cover-image"),
			})
		}
	}

	if env.ComponentActive(site.ComponentSettings) {
		f.AddNode(toolbar.Node{
			Parent: UserAdminMenuID,
			ID:     UserAdminMenuID + "-user-capabilities",
			Title:  env.T("User Capabilities"),
			Href:   env.ComponentLink(site.ComponentSettings, "capabilities"),
		})
		f.AddNode(toolbar.Node{
			Parent: UserAdminMenuID,
			ID:     UserAdminMenuID + "-delete-user",
			Title:  env.T("Delete Account"),
			Href:   env.ComponentLink(site.ComponentSettings, "delete-account"),
		})
	}
}

// NotificationsToolbar is the notifications component's own menu builder.
type NotificationsToolbar interface {
	ToolbarMenu(bar *toolbar.Bar, env *site.Env) error
}

// NotificationsMenu hands the toolbar to n when notifications are active.
func NotificationsMenu(n NotificationsToolbar) func(*adminbar.Frame) {
	return func(f *adminbar.Frame) {
		if n == nil || !f.Env.ComponentActive(site.ComponentNotifications) {
			return
		}
		if err := n.ToolbarMenu(f.Bar, f.Env); err != nil {
			logging.Warnf("members.NotificationsMenu viewer=%q err=%v", f.Env.Viewer.Slug, err)
		}
	}
}

// RemoveEditPageMenu drops the host "Edit Page" entry on member pages,
// where there is no content page to edit.
func RemoveEditPageMenu(f *adminbar.Frame) {
	if !f.Env.IsUser() {
		return
	}
	f.Hooks.Remove(adminbar.HookMenu, adminbar.EditMenuCallback, adminbar.EditMenuPriority)
}

// InvitationsMenu adds the invitations screens under the account menu.
func InvitationsMenu(f *adminbar.Frame) {
	env := f.Env
	if env.Request.Ajax {
		return
	}
	if !env.Viewer.Can(CapInvitationsViewScreens) {
		return
	}

	slug := env.Site.InvitationsSlug
	f.AddNode(toolbar.Node{
		ID:     InvitationsNodeID,
		Parent: MyAccountMenuID,
		Title:  env.T("Invitations"),
		Href:   env.LoggedInUserURL(site.PathChunks(slug)...),
		Meta:   toolbar.Meta{Class: secondaryClass},
	})

	if env.Viewer.Can(CapInvitationsSendScreen) {
		f.AddNode(toolbar.Node{
			ID:     InvitationsSendNodeID,
			Parent: InvitationsNodeID,
			Title:  env.T("Send Invites"),
			Href:   env.LoggedInUserURL(site.PathChunks(slug, "send-invites")...),
			Meta:   toolbar.Meta{Class: secondaryClass},
		})
	}

	f.AddNode(toolbar.Node{
		ID:     InvitationsListNodeID,
		Parent: InvitationsNodeID,
		Title:  env.T("Pending Invites"),
		Href:   env.LoggedInUserURL(site.PathChunks(slug, "list-invites")...),
		Meta:   toolbar.Meta{Class: secondaryClass},
	})
}
