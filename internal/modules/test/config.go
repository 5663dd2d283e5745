package test

import "github.com/disgoorg/snowflake/v2"

// Config holds the test module configuration.
type Config struct {
	DocsURL      string         `env:"TEST_DOCS_URL" envDefault:"https://discord.com/developers/docs/interactions/application-commands"`
	AdminRoleIDs []snowflake.ID `env:"TEST_ADMIN_ROLE_IDS"`
}
