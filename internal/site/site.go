package site

import "github.com/danmuck/memberbar/internal/i18n"

// Site is the installation-wide state shared by every render.
type Site struct {
	Name            string
	URLs            URLs
	Components      *Components
	InvitationsSlug string
	SignupAllowed   bool
	ShowAvatars     bool
	// CoverImageHeader reports whether the theme renders member cover images.
	CoverImageHeader bool
	Lang             *i18n.Translator
}

func New(name, root string) *Site {
	return &Site{
		Name:            name,
		URLs:            DefaultURLs(root),
		Components:      DefaultComponents(),
		InvitationsSlug: "invitations",
		ShowAvatars:     true,
		Lang:            i18n.New(i18n.BaseLocale),
	}
}
