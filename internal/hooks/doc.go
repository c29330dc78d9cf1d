// Package hooks owns named extension points and their ordered callbacks.
//
// Ownership boundary:
// - callback registration and removal
//
// - run order (priority, then registration)
//
// - per-render cloning
package hooks
