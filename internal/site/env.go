package site

// Request describes the page being rendered.
type Request struct {
	URL string
	// Ajax marks background requests that render no toolbar.
	Ajax bool
	// EditLink is the edit screen for the content at URL, if any.
	EditLink string
}

// Env is everything a contributor may inspect for one render.
type Env struct {
	Site    *Site
	Viewer  Viewer
	Request Request
	// Displayed is the member whose profile is being viewed, nil elsewhere.
	Displayed *User
}

// IsUser reports whether the page is a member profile page.
func (e *Env) IsUser() bool {
	return e.Displayed != nil
}

func (e *Env) IsMyProfile() bool {
	return e.Viewer.LoggedIn && e.Displayed != nil && e.Displayed.ID == e.Viewer.ID
}

func (e *Env) LoggedInUserURL(chunks ...string) string {
	if !e.Viewer.LoggedIn {
		return ""
	}
	return e.Site.URLs.UserURL(e.Viewer.User, chunks...)
}

func (e *Env) DisplayedUserURL(chunks ...string) string {
	if e.Displayed == nil {
		return ""
	}
	return e.Site.URLs.UserURL(*e.Displayed, chunks...)
}

// ComponentLink links to action inside component on the displayed member's
// profile. It is empty when the component is inactive or no member is
// displayed.
func (e *Env) ComponentLink(component, action string) string {
	if e.Displayed == nil || !e.Site.Components.Active(component) {
		return ""
	}
	slug, ok := e.Site.Components.Slug(component)
	if !ok {
		return ""
	}
	return e.DisplayedUserURL(slug, action)
}

func (e *Env) ComponentActive(component string) bool {
	return e.Site.Components.Active(component)
}

// T translates a toolbar title for the site locale.
func (e *Env) T(msg string) string {
	return e.Site.Lang.T(msg)
}
