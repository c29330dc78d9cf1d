package app

import (
	"errors"
	"fmt"

	"github.com/danmuck/memberbar/internal/site"
)

var ErrUnknownMember = errors.New("app: unknown member")

// Preview names a render by member slugs. An empty Viewer renders for an
// anonymous visitor.
type Preview struct {
	Viewer    string
	Displayed string
	URL       string
	EditLink  string
	Ajax      bool
}

// NewEnv resolves p against the directory. When a member is displayed and
// no URL is given, the page URL defaults to that member's profile.
func NewEnv(s *site.Site, dir *site.Directory, p Preview) (*site.Env, error) {
	env := &site.Env{
		Site:   s,
		Viewer: site.Anonymous(),
		Request: site.Request{
			URL:      p.URL,
			EditLink: p.EditLink,
			Ajax:     p.Ajax,
		},
	}
	if p.Viewer != "" {
		acct, ok := dir.BySlug(p.Viewer)
		if !ok {
			return nil, fmt.Errorf("%w: viewer=%q", ErrUnknownMember, p.Viewer)
		}
		env.Viewer = acct.Viewer()
	}
	if p.Displayed != "" {
		acct, ok := dir.BySlug(p.Displayed)
		if !ok {
			return nil, fmt.Errorf("%w: displayed=%q", ErrUnknownMember, p.Displayed)
		}
		displayed := acct.User
		env.Displayed = &displayed
		if env.Request.URL == "" {
			env.Request.URL = env.DisplayedUserURL()
		}
	}
	return env, nil
}
