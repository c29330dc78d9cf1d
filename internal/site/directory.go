package site

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrAccountExists  = errors.New("site: account already exists")
	ErrInvalidAccount = errors.New("site: invalid account")
)

// Account is a member with the capabilities granted to them.
type Account struct {
	User
	Caps Capabilities
}

// Viewer returns the account as a logged-in viewer.
func (a Account) Viewer() Viewer {
	return Viewer{User: a.User, LoggedIn: true, Caps: a.Caps}
}

// Directory resolves members by slug or id.
type Directory struct {
	bySlug map[string]Account
	byID   map[int64]string
}

func NewDirectory() *Directory {
	return &Directory{
		bySlug: make(map[string]Account),
		byID:   make(map[int64]string),
	}
}

func (d *Directory) Add(a Account) error {
	a.Slug = strings.TrimSpace(a.Slug)
	if a.ID <= 0 || a.Slug == "" {
		return fmt.Errorf("%w: id and slug are required", ErrInvalidAccount)
	}
	if _, ok := d.bySlug[a.Slug]; ok {
		return fmt.Errorf("%w: slug=%q", ErrAccountExists, a.Slug)
	}
	if _, ok := d.byID[a.ID]; ok {
		return fmt.Errorf("%w: id=%d", ErrAccountExists, a.ID)
	}
	if a.Caps == nil {
		a.Caps = NewCapabilities()
	}
	d.bySlug[a.Slug] = a
	d.byID[a.ID] = a.Slug
	return nil
}

func (d *Directory) BySlug(slug string) (Account, bool) {
	a, ok := d.bySlug[slug]
	return a, ok
}

func (d *Directory) ByID(id int64) (Account, bool) {
	slug, ok := d.byID[id]
	if !ok {
		return Account{}, false
	}
	return d.BySlug(slug)
}

// List returns accounts ordered by id.
func (d *Directory) List() []Account {
	out := make([]Account, 0, len(d.bySlug))
	for _, a := range d.bySlug {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
