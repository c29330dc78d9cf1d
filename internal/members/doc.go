// Package members contributes the members component's toolbar menus.
//
// Ownership boundary:
// - account menu (profile link, or login and signup)
//
// - moderation menu on other members' profiles
//
// - notifications dropdown hand-off
//
// - edit-page suppression on member pages
//
// - invitations menu
//
// Contributors never fail: unmet conditions add nothing.
package members
