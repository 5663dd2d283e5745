package bot

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	// DiscordToken is required by LoadConfig but not by LoadOfflineConfig.
	DiscordToken string `env:"DISCORD_TOKEN"`

	// ApplicationID is taken from the session state when empty.
	ApplicationID string `env:"DISCORD_APPLICATION_ID"`

	Deploy DeployConfig `envPrefix:"DEPLOY_"`
	Log    LogConfig    `envPrefix:"LOG_"`
}

// DeployConfig controls command deployment and the deploy trigger.
type DeployConfig struct {
	// GuildIDs are deployed to on start. Nothing is deployed on start when empty.
	GuildIDs       []snowflake.ID `env:"GUILD_IDS"`
	AllowedUserIDs []snowflake.ID `env:"ALLOWED_USER_IDS"`
	Command        string         `env:"COMMAND" envDefault:"!deploy"`
	SetPermissions bool           `env:"SET_PERMISSIONS"`
	Cooldown       time.Duration  `env:"COOLDOWN" envDefault:"30s"`
}

// LogConfig controls the log output of the CLI.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

var snowflakeParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(snowflake.ID(0)): func(v string) (any, error) {
		return snowflake.Parse(v)
	},
}

// ErrMissingToken is returned by LoadConfig when DISCORD_TOKEN is not set.
var ErrMissingToken = errors.New(`required environment variable "DISCORD_TOKEN" is not set`)

// LoadConfig loads configuration from an optional .env file and environment
// variables. Returns an error if required fields are missing or invalid.
func LoadConfig() (*Config, error) {
	cfg, err := LoadOfflineConfig()
	if err != nil {
		return nil, err
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// LoadOfflineConfig is like LoadConfig but does not require DISCORD_TOKEN.
// It serves commands that never talk to Discord, such as printing the schema.
func LoadOfflineConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv parses environment variables into v, accepting snowflake.ID
// fields and slices. Modules use it to load their own configuration.
func ParseEnv(v any) error {
	return env.ParseWithOptions(v, env.Options{FuncMap: snowflakeParsers})
}

// Validate checks values the environment parser cannot.
func (c *Config) Validate() error {
	if c.ApplicationID != "" {
		if _, err := snowflake.Parse(c.ApplicationID); err != nil {
			return fmt.Errorf("invalid DISCORD_APPLICATION_ID %q: %w", c.ApplicationID, err)
		}
	}
	if c.Deploy.Cooldown < 0 {
		return fmt.Errorf("invalid DEPLOY_COOLDOWN %s: must not be negative", c.Deploy.Cooldown)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.Log.Format)
	}
	return nil
}

// GuildIDStrings returns the deploy guild ids as strings.
func (c *DeployConfig) GuildIDStrings() []string {
	ids := make([]string, len(c.GuildIDs))
	for i, id := range c.GuildIDs {
		ids[i] = id.String()
	}
	return ids
}
