package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(format Format) (string, error) {
	switch Format(strings.ToLower(strings.TrimSpace(string(format)))) {
	case FormatTOML:
		return tomlTemplate, nil
	case FormatYAML:
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config format: %s", format)
	}
}

func WriteTemplate(path string, format Format, overwrite bool) error {
	template, err := Template(format)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `[site]
name = "community"
root_url = "http://localhost:9300"
locale = "en-US"
signup_allowed = true
show_avatars = true
cover_image_header = true
components = ["members", "xprofile", "settings", "notifications"]

[server]
addr = ":9300"
cors_origins = ["http://localhost:3000"]
admin_token = ""

[[users]]
id = 1
slug = "admin"
display_name = "Admin"
capabilities = ["edit_users", "members_invitations_view_screens", "members_invitations_view_send_screen"]

[[users]]
id = 2
slug = "alice"
display_name = "Alice"
capabilities = ["members_invitations_view_screens"]

[[notifications]]
id = 1
user = "alice"
component = "friends"
action = "friendship_request"
content = "Admin requested your friendship"
`

const yamlTemplate = `site:
  name: community
  root_url: http://localhost:9300
  locale: en-US
  signup_allowed: true
  show_avatars: true
  cover_image_header: true
  components: [members, xprofile, settings, notifications]
server:
  addr: ":9300"
  cors_origins: ["http://localhost:3000"]
  admin_token: ""
users:
  - id: 1
    slug: admin
    display_name: Admin
    capabilities: [edit_users, members_invitations_view_screens, members_invitations_view_send_screen]
  - id: 2
    slug: alice
    display_name: Alice
    capabilities: [members_invitations_view_screens]
notifications:
  - id: 1
    user: alice
    component: friends
    action: friendship_request
    content: Admin requested your friendship
`
