// Package adminbar owns toolbar composition for one page render.
//
// Ownership boundary:
// - extension point names and their run order
//
// - host default callbacks (secondary group, setup dispatch, edit page)
//
// - per-render registry cloning and build metrics
//
// Lifecycle order:
// - add_admin_bar_menus -> admin_bar_menu (bp_setup_admin_bar at 20)
package adminbar
