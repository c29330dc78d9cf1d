package site

import (
	"sort"
	"strings"
)

// CapEditUsers lets a viewer administer other members.
const CapEditUsers = "edit_users"

type User struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// Capabilities is a set of granted capability names.
type Capabilities map[string]struct{}

func NewCapabilities(caps ...string) Capabilities {
	out := make(Capabilities, len(caps))
	for _, c := range caps {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out[c] = struct{}{}
	}
	return out
}

func (c Capabilities) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// List returns the granted capabilities sorted.
func (c Capabilities) List() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Viewer is whoever requested the page.
type Viewer struct {
	User
	LoggedIn bool
	Caps     Capabilities
}

func Anonymous() Viewer {
	return Viewer{}
}

// Can reports whether a logged-in viewer holds capability name.
// Anonymous viewers hold none.
func (v Viewer) Can(name string) bool {
	return v.LoggedIn && v.Caps.Has(name)
}
