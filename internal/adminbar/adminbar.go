package adminbar

import (
	"time"

	"github.com/danmuck/memberbar/internal/hooks"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/danmuck/memberbar/internal/observability"
	"github.com/danmuck/memberbar/internal/site"
	"github.com/danmuck/memberbar/internal/toolbar"
)

// Extension points run during one toolbar render, in this order.
const (
	// HookAddMenus runs first so contributors can deregister menu callbacks.
	HookAddMenus = "add_admin_bar_menus"
	// HookMenu populates the toolbar.
	HookMenu = "admin_bar_menu"
	// HookSetup is dispatched from HookMenu for community contributors.
	HookSetup = "bp_setup_admin_bar"
)

// Default callbacks registered by RegisterDefaults.
const (
	SecondaryGroupsCallback = "adminbar.secondary-groups"
	SetupCallback           = "adminbar.setup"
	EditMenuCallback        = "adminbar.edit-menu"

	SecondaryGroupsPriority = 0
	SetupPriority           = 20
	EditMenuPriority        = 80
)

const (
	TopSecondaryID = "top-secondary"
	EditNodeID     = "edit"
)

// Frame is the argument every contributor receives.
type Frame struct {
	Bar   *toolbar.Bar
	Env   *site.Env
	Hooks *hooks.Registry[*Frame]
}

// Hooks is the contributor registry for toolbar renders.
type Hooks = hooks.Registry[*Frame]

func NewHooks() *Hooks {
	return hooks.New[*Frame]()
}

// AddNode inserts n and logs instead of failing; contributors have no
// caller to report to.
func (f *Frame) AddNode(n toolbar.Node) {
	if err := f.Bar.AddNode(n); err != nil {
		logging.Warnf("adminbar.AddNode id=%q parent=%q err=%v", n.ID, n.Parent, err)
	}
}

// RegisterDefaults installs the host menu callbacks contributors build on.
func RegisterDefaults(h *Hooks) error {
	if err := h.Add(HookMenu, SecondaryGroupsCallback, SecondaryGroupsPriority, secondaryGroups); err != nil {
		return err
	}
	if err := h.Add(HookMenu, SetupCallback, SetupPriority, setup); err != nil {
		return err
	}
	return h.Add(HookMenu, EditMenuCallback, EditMenuPriority, editMenu)
}

func secondaryGroups(f *Frame) {
	if err := f.Bar.AddGroup(toolbar.Node{
		ID:   TopSecondaryID,
		Meta: toolbar.Meta{Class: "ab-top-secondary"},
	}); err != nil {
		logging.Warnf("adminbar.secondaryGroups err=%v", err)
	}
}

func setup(f *Frame) {
	n := f.Hooks.Run(HookSetup, f)
	logging.Tracef("adminbar.setup callbacks=%d", n)
}

func editMenu(f *Frame) {
	if f.Env.Request.EditLink == "" {
		return
	}
	f.AddNode(toolbar.Node{
		ID:    EditNodeID,
		Title: f.Env.T("Edit Page"),
		Href:  f.Env.Request.EditLink,
	})
}

// Composer builds toolbars from a shared registry.
type Composer struct {
	hooks *Hooks
}

func NewComposer(h *Hooks) *Composer {
	return &Composer{hooks: h}
}

func (c *Composer) Hooks() *Hooks {
	return c.hooks
}

// Build renders a fresh toolbar for env. Registry changes made by
// contributors during the render stay local to it.
func (c *Composer) Build(env *site.Env) *toolbar.Bar {
	start := time.Now()
	bar := toolbar.New()
	bar.SetVisible(env.Viewer.LoggedIn)

	frame := &Frame{Bar: bar, Env: env, Hooks: c.hooks.Clone()}
	frame.Hooks.Run(HookAddMenus, frame)
	frame.Hooks.Run(HookMenu, frame)

	state := "anonymous"
	if env.Viewer.LoggedIn {
		state = "member"
	}
	observability.RecordToolbarBuild(state, bar.Len(), time.Since(start))
	logging.Debugf("adminbar.Build viewer=%q nodes=%d visible=%v", env.Viewer.Slug, bar.Len(), bar.Visible())
	return bar
}
