// Package toolbar owns the per-render toolbar tree.
//
// Ownership boundary:
// - node record shape (id, parent, title, href, meta, group)
//
// - parent-before-child insertion rule
//
// - visibility flag for the current render
//
// Rendering to HTML is owned by the consumer.
package toolbar
