package site

import (
	"net/url"
	"strings"
)

// URLs builds the site links the toolbar points at. Member links end with
// a trailing slash.
type URLs struct {
	Root        string
	MembersSlug string
	LoginPath   string
	SignupSlug  string
}

func DefaultURLs(root string) URLs {
	return URLs{
		Root:        root,
		MembersSlug: "members",
		LoginPath:   "wp-login.php",
		SignupSlug:  "register",
	}
}

// UserURL returns the profile root for user, extended by chunks.
func (u URLs) UserURL(user User, chunks ...string) string {
	segs := append([]string{u.MembersSlug, user.Slug}, chunks...)
	return u.join(segs...)
}

// LoginURL points at the login form, returning to redirect afterwards.
func (u URLs) LoginURL(redirect string) string {
	login := u.root() + "/" + strings.TrimLeft(u.LoginPath, "/")
	if strings.TrimSpace(redirect) == "" {
		return login
	}
	q := url.Values{}
	q.Set("redirect_to", redirect)
	return login + "?" + q.Encode()
}

func (u URLs) SignupPage() string {
	return u.join(u.SignupSlug)
}

func (u URLs) root() string {
	return strings.TrimRight(strings.TrimSpace(u.Root), "/")
}

func (u URLs) join(segs ...string) string {
	parts := PathChunks(segs...)
	var b strings.Builder
	b.WriteString(u.root())
	b.WriteByte('/')
	for _, p := range parts {
		b.WriteString(url.PathEscape(p))
		b.WriteByte('/')
	}
	return b.String()
}

// PathChunks trims slashes and space from each segment and drops empties.
func PathChunks(chunks ...string) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.Trim(strings.TrimSpace(c), "/")
		if c == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
