package site

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

const (
	ComponentMembers       = "members"
	ComponentXProfile      = "xprofile"
	ComponentSettings      = "settings"
	ComponentNotifications = "notifications"
)

var (
	ErrComponentExists  = errors.New("site: component already registered")
	ErrUnknownComponent = errors.New("site: unknown component")
	ErrInvalidComponent = errors.New("site: invalid component")
)

// Component is an optional feature module and the URL slug it owns under
// a member's profile.
type Component struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// Components answers "is this subsystem active" for one installation.
type Components struct {
	mu     sync.RWMutex
	items  map[string]Component
	active map[string]bool
}

func NewComponents() *Components {
	return &Components{
		items:  make(map[string]Component),
		active: make(map[string]bool),
	}
}

// DefaultComponents registers the built-in components with only members
// active.
func DefaultComponents() *Components {
	c := NewComponents()
	_ = c.Register(Component{ID: ComponentMembers, Slug: "members"}, true)
	_ = c.Register(Component{ID: ComponentXProfile, Slug: "profile"}, false)
	_ = c.Register(Component{ID: ComponentSettings, Slug: "settings"}, false)
	_ = c.Register(Component{ID: ComponentNotifications, Slug: "notifications"}, false)
	return c
}

func (c *Components) Register(comp Component, active bool) error {
	comp.ID = strings.TrimSpace(comp.ID)
	comp.Slug = strings.Trim(strings.TrimSpace(comp.Slug), "/")
	if comp.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidComponent)
	}
	if comp.Slug == "" {
		comp.Slug = comp.ID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[comp.ID]; ok {
		return fmt.Errorf("%w: %q", ErrComponentExists, comp.ID)
	}
	c.items[comp.ID] = comp
	c.active[comp.ID] = active
	return nil
}

func (c *Components) Activate(id string) error {
	return c.setActive(id, true)
}

func (c *Components) Deactivate(id string) error {
	return c.setActive(id, false)
}

func (c *Components) setActive(id string, active bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, id)
	}
	c.active[id] = active
	return nil
}

// SetSlug changes the URL slug for a registered component.
func (c *Components) SetSlug(id, slug string) error {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return fmt.Errorf("%w: empty slug for %q", ErrInvalidComponent, id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	comp, ok := c.items[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, id)
	}
	comp.Slug = slug
	c.items[id] = comp
	return nil
}

// Active is false for unregistered components.
func (c *Components) Active(id string) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active[id]
}

func (c *Components) Slug(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	comp, ok := c.items[id]
	return comp.Slug, ok
}

// List returns registered components sorted by id.
func (c *Components) List() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, 0, len(c.items))
	for _, comp := range c.items {
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveIDs returns active component ids sorted.
func (c *Components) ActiveIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.active))
	for id, on := range c.active {
		if on {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
