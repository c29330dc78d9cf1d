// Package app wires the toolbar contributors for a loaded configuration.
package app

import (
	"fmt"

	"github.com/danmuck/memberbar/internal/adminbar"
	"github.com/danmuck/memberbar/internal/config"
	"github.com/danmuck/memberbar/internal/members"
	"github.com/danmuck/memberbar/internal/notifications"
)

// NewComposer registers the host defaults and every members contributor.
func NewComposer(cfg config.Config) (*adminbar.Composer, error) {
	h := adminbar.NewHooks()
	if err := adminbar.RegisterDefaults(h); err != nil {
		return nil, fmt.Errorf("register toolbar defaults: %w", err)
	}
	opts := members.Options{}
	if cfg.Notifications != nil {
		opts.Notifications = notifications.NewMenu(cfg.Notifications)
	}
	if err := members.Register(h, opts); err != nil {
		return nil, err
	}
	return adminbar.NewComposer(h), nil
}
