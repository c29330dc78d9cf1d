package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/danmuck/memberbar/internal/i18n"
	"github.com/danmuck/memberbar/internal/notifications"
	"github.com/danmuck/memberbar/internal/site"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const DefaultAddr = ":9300"

// Config is a loaded installation: site settings, members, their unread
// notifications, and the preview server.
type Config struct {
	Site          *site.Site
	Directory     *site.Directory
	Notifications *notifications.MemoryStore
	Server        ServerConfig
}

type ServerConfig struct {
	Addr        string
	CorsOrigins []string
	AdminToken  string
}

type fileConfig struct {
	Site          siteSection           `toml:"site" yaml:"site"`
	Server        serverSection         `toml:"server" yaml:"server"`
	Users         []userSection         `toml:"users" yaml:"users"`
	Notifications []notificationSection `toml:"notifications" yaml:"notifications"`
}

type siteSection struct {
	Name             string            `toml:"name" yaml:"name"`
	RootURL          string            `toml:"root_url" yaml:"root_url"`
	MembersSlug      string            `toml:"members_slug" yaml:"members_slug"`
	LoginPath        string            `toml:"login_path" yaml:"login_path"`
	SignupSlug       string            `toml:"signup_slug" yaml:"signup_slug"`
	InvitationsSlug  string            `toml:"invitations_slug" yaml:"invitations_slug"`
	Locale           string            `toml:"locale" yaml:"locale"`
	SignupAllowed    *bool             `toml:"signup_allowed" yaml:"signup_allowed"`
	ShowAvatars      *bool             `toml:"show_avatars" yaml:"show_avatars"`
	CoverImageHeader *bool             `toml:"cover_image_header" yaml:"cover_image_header"`
	Components       []string          `toml:"components" yaml:"components"`
	ComponentSlugs   map[string]string `toml:"component_slugs" yaml:"component_slugs"`
}

type serverSection struct {
	Addr        string   `toml:"addr" yaml:"addr"`
	CorsOrigins []string `toml:"cors_origins" yaml:"cors_origins"`
	AdminToken  string   `toml:"admin_token" yaml:"admin_token"`
}

type userSection struct {
	ID           int64    `toml:"id" yaml:"id"`
	Login        string   `toml:"login" yaml:"login"`
	Slug         string   `toml:"slug" yaml:"slug"`
	DisplayName  string   `toml:"display_name" yaml:"display_name"`
	Capabilities []string `toml:"capabilities" yaml:"capabilities"`
}

type notificationSection struct {
	ID        int64  `toml:"id" yaml:"id"`
	User      string `toml:"user" yaml:"user"`
	Component string `toml:"component" yaml:"component"`
	Action    string `toml:"action" yaml:"action"`
	Content   string `toml:"content" yaml:"content"`
	Href      string `toml:"href" yaml:"href"`
}

// envOverrides are applied after the file; empty values are ignored.
type envOverrides struct {
	Addr        string   `env:"MEMBERBAR_ADDR"`
	AdminToken  string   `env:"MEMBERBAR_ADMIN_TOKEN"`
	Locale      string   `env:"MEMBERBAR_LOCALE"`
	CorsOrigins []string `env:"MEMBERBAR_CORS_ORIGINS" envSeparator:","`
}

// Default is a config with a single local site and no members.
func Default() Config {
	cfg, err := build(fileConfig{})
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads path, choosing YAML for .yaml/.yml and TOML otherwise, then
// applies environment overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	format := FormatTOML
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, format Format) (Config, error) {
	var raw fileConfig
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, format)
	}
	if err := applyEnv(&raw); err != nil {
		return Config{}, err
	}
	return build(raw)
}

func applyEnv(raw *fileConfig) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(ov.Addr); v != "" {
		raw.Server.Addr = v
	}
	if v := strings.TrimSpace(ov.AdminToken); v != "" {
		raw.Server.AdminToken = v
	}
	if v := strings.TrimSpace(ov.Locale); v != "" {
		raw.Site.Locale = v
	}
	if origins := normalizeList(ov.CorsOrigins); len(origins) > 0 {
		raw.Server.CorsOrigins = origins
	}
	return nil
}

func build(raw fileConfig) (Config, error) {
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	sc := raw.Site
	s := site.New(orDefault(sc.Name, "community"), orDefault(sc.RootURL, "http://localhost:9300"))
	if sc.MembersSlug != "" {
		s.URLs.MembersSlug = sc.MembersSlug
	}
	if sc.LoginPath != "" {
		s.URLs.LoginPath = sc.LoginPath
	}
	if sc.SignupSlug != "" {
		s.URLs.SignupSlug = sc.SignupSlug
	}
	if sc.InvitationsSlug != "" {
		s.InvitationsSlug = sc.InvitationsSlug
	}
	if sc.SignupAllowed != nil {
		s.SignupAllowed = *sc.SignupAllowed
	}
	if sc.ShowAvatars != nil {
		s.ShowAvatars = *sc.ShowAvatars
	}
	if sc.CoverImageHeader != nil {
		s.CoverImageHeader = *sc.CoverImageHeader
	}
	s.Lang = i18n.New(sc.Locale)

	for _, id := range normalizeList(sc.Components) {
		if err := s.Components.Activate(id); err != nil {
			return Config{}, fmt.Errorf("%w: components: %v", ErrInvalidConfig, err)
		}
	}
	for id, slug := range sc.ComponentSlugs {
		if err := s.Components.SetSlug(id, slug); err != nil {
			return Config{}, fmt.Errorf("%w: component_slugs: %v", ErrInvalidConfig, err)
		}
	}

	dir := site.NewDirectory()
	for i, u := range raw.Users {
		acct := site.Account{
			User: site.User{
				ID:          u.ID,
				Login:       orDefault(u.Login, u.Slug),
				Slug:        strings.TrimSpace(u.Slug),
				DisplayName: orDefault(u.DisplayName, u.Slug),
			},
			Caps: site.NewCapabilities(u.Capabilities...),
		}
		if err := dir.Add(acct); err != nil {
			return Config{}, fmt.Errorf("%w: users[%d]: %v", ErrInvalidConfig, i, err)
		}
	}

	store := notifications.NewMemoryStore()
	for i, n := range raw.Notifications {
		acct, ok := dir.BySlug(strings.TrimSpace(n.User))
		if !ok {
			return Config{}, fmt.Errorf("%w: notifications[%d]: unknown user %q", ErrInvalidConfig, i, n.User)
		}
		if err := store.Add(notifications.Notification{
			ID:        n.ID,
			UserID:    acct.ID,
			Component: n.Component,
			Action:    n.Action,
			Content:   n.Content,
			Href:      n.Href,
		}); err != nil {
			return Config{}, fmt.Errorf("%w: notifications[%d]: %v", ErrInvalidConfig, i, err)
		}
	}

	return Config{
		Site:          s,
		Directory:     dir,
		Notifications: store,
		Server: ServerConfig{
			Addr:        orDefault(raw.Server.Addr, DefaultAddr),
			CorsOrigins: normalizeList(raw.Server.CorsOrigins),
			AdminToken:  strings.TrimSpace(raw.Server.AdminToken),
		},
	}, nil
}

func validate(raw fileConfig) error {
	if root := strings.TrimSpace(raw.Site.RootURL); root != "" {
		u, err := url.Parse(root)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: site.root_url must be an absolute url, got %q", ErrInvalidConfig, root)
		}
	}
	for i, u := range raw.Users {
		if u.ID <= 0 {
			return fmt.Errorf("%w: users[%d]: id must be positive", ErrInvalidConfig, i)
		}
		if strings.TrimSpace(u.Slug) == "" {
			return fmt.Errorf("%w: users[%d]: slug is required", ErrInvalidConfig, i)
		}
	}
	return nil
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
