package notifications

import (
	"fmt"
	"strconv"

	"github.com/danmuck/memberbar/internal/site"
	"github.com/danmuck/memberbar/internal/toolbar"
)

const (
	MenuID          = "bp-notifications"
	EmptyID         = "no-notifications"
	parentID        = "top-secondary"
	alertClass      = "pending-count alert"
	quietClass      = "count no-alert"
	notificationPfx = "notification-"
)

// Menu builds the notifications dropdown from a Store.
type Menu struct {
	store Store
}

func NewMenu(store Store) *Menu {
	return &Menu{store: store}
}

// ToolbarMenu adds the unread count and one child per unread item. It adds
// nothing for anonymous viewers.
func (m *Menu) ToolbarMenu(bar *toolbar.Bar, env *site.Env) error {
	if !env.Viewer.LoggedIn {
		return nil
	}
	unread, err := m.store.Unread(env.Viewer.ID)
	if err != nil {
		return fmt.Errorf("load unread notifications user=%d: %w", env.Viewer.ID, err)
	}

	slug, ok := env.Site.Components.Slug(site.ComponentNotifications)
	if !ok {
		slug = site.ComponentNotifications
	}
	link := env.LoggedInUserURL(slug)

	class := quietClass
	if len(unread) > 0 {
		class = alertClass
	}
	if err := bar.AddNode(toolbar.Node{
		ID:     MenuID,
		Parent: parentID,
		Title:  env.Site.Lang.Number(len(unread)),
		Href:   link,
		Meta:   toolbar.Meta{Class: class},
	}); err != nil {
		return err
	}

	if len(unread) == 0 {
		return bar.AddNode(toolbar.Node{
			ID:     EmptyID,
			Parent: MenuID,
			Title:  env.T("No new notifications"),
			Href:   link,
		})
	}
	for _, n := range unread {
		href := n.Href
		if href == "" {
			href = link
		}
		if err := bar.AddNode(toolbar.Node{
			ID:     notificationPfx + strconv.FormatInt(n.ID, 10),
			Parent: MenuID,
			Title:  n.Content,
			Href:   href,
		}); err != nil {
			return err
		}
	}
	return nil
}
