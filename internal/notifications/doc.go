// Package notifications owns unread member notifications and the toolbar
// dropdown that lists them.
package notifications
