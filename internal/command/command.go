// Package command declares slash commands, sub-command groups and the message
// components attached to them.
package command

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	maxOptions        = 25
	maxChildren       = 25
	maxRows           = 5
	maxDescriptionLen = 100
)

var namePattern = regexp.MustCompile(`^[-_\p{L}\p{N}]{1,32}$`)

// Node is a top-level or nested command declaration: a *Command or a *CommandGroup.
type Node interface {
	Name() string
	Description() string
	GuildOnly() bool
	Permissions() []*discordgo.ApplicationCommandPermissions

	// ApplicationCommand projects the node into the deployment schema.
	ApplicationCommand() *discordgo.ApplicationCommand
	// CommandComponents returns every action row owned by the node and its descendants.
	CommandComponents() []ActionRow
	// MessageComponents renders the node's own action rows.
	MessageComponents() []discordgo.MessageComponent
	// Run invokes the node for an interaction addressed to it.
	Run(ctx *Context) error

	node()
}

// Config declares a Command.
type Config struct {
	// Name is lower-cased and used as the dispatch key.
	Name        string
	Description string
	// Options may contain nil entries, they are dropped. Sub-command options are
	// not allowed, use a CommandGroup instead.
	Options []*discordgo.ApplicationCommandOption
	// GuildOnly, DefaultPermission, DefaultMemberPermissions and Permissions
	// only apply to top-level commands.
	GuildOnly                bool
	DefaultPermission        *bool
	DefaultMemberPermissions *int64
	Permissions              []*discordgo.ApplicationCommandPermissions
	// Components may contain nil entries, they are dropped.
	Components []ActionRow
	Run        HandlerFunc
}

// Command is a slash command, or a sub-command when placed in a CommandGroup.
type Command struct {
	name                     string
	description              string
	options                  []*discordgo.ApplicationCommandOption
	guildOnly                bool
	defaultPermission        *bool
	defaultMemberPermissions *int64
	permissions              []*discordgo.ApplicationCommandPermissions
	components               []ActionRow
	run                      HandlerFunc
}

// New validates cfg and creates a Command.
func New(cfg Config) (*Command, error) {
	name, err := normalizeName(cfg.Name)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(name, cfg.Description); err != nil {
		return nil, err
	}

	options := make([]*discordgo.ApplicationCommandOption, 0, len(cfg.Options))
	for _, opt := range cfg.Options {
		if opt == nil {
			continue
		}
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
			opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			return nil, invalidf("command %q: option %q is a sub-command, use a CommandGroup", name, opt.Name)
		}
		options = append(options, opt)
	}
	if len(options) > maxOptions {
		return nil, invalidf("command %q holds at most %d options, got %d", name, maxOptions, len(options))
	}

	components, err := presentRows(name, cfg.Components)
	if err != nil {
		return nil, err
	}
	if cfg.Run == nil {
		return nil, invalidf("command %q: missing callback", name)
	}

	return &Command{
		name:                     name,
		description:              cfg.Description,
		options:                  options,
		guildOnly:                cfg.GuildOnly,
		defaultPermission:        cfg.DefaultPermission,
		defaultMemberPermissions: cfg.DefaultMemberPermissions,
		permissions:              cfg.Permissions,
		components:               components,
		run:                      cfg.Run,
	}, nil
}

// Must is like New but panics on error.
func Must(cfg Config) *Command {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the lower-cased command name.
func (c *Command) Name() string { return c.name }

// Description returns the command description.
func (c *Command) Description() string { return c.description }

// GuildOnly reports whether the command is rejected outside a guild.
func (c *Command) GuildOnly() bool { return c.guildOnly }

// Permissions returns the per-guild permission overwrites pushed on deploy.
func (c *Command) Permissions() []*discordgo.ApplicationCommandPermissions {
	return c.permissions
}

// Options returns the declared options in order, never nil.
func (c *Command) Options() []*discordgo.ApplicationCommandOption {
	return slices.Clone(c.options)
}

// ApplicationCommand projects the command into the deployment schema.
func (c *Command) ApplicationCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     c.name,
		Description:              c.description,
		Options:                  c.Options(),
		DefaultPermission:        c.defaultPermission,
		DefaultMemberPermissions: c.defaultMemberPermissions,
	}
}

// CommandComponents returns the attached action rows, never nil.
func (c *Command) CommandComponents() []ActionRow {
	return slices.Clone(c.components)
}

// MessageComponents renders the attached action rows for use in a reply.
func (c *Command) MessageComponents() []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(c.components))
	for _, row := range c.components {
		out = append(out, row.MessageComponent())
	}
	return out
}

// Run invokes the callback and returns its error.
func (c *Command) Run(ctx *Context) error {
	return c.run(ctx)
}

func (*Command) node() {}

func normalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !namePattern.MatchString(name) {
		return "", invalidf("name %q must be 1 to 32 letters, digits, '-' or '_'", name)
	}
	return name, nil
}

func validateDescription(name, description string) error {
	if n := utf8.RuneCountInString(description); n == 0 || n > maxDescriptionLen {
		return invalidf("command %q: description must be 1 to %d characters", name, maxDescriptionLen)
	}
	return nil
}

func presentRows(name string, rows []ActionRow) ([]ActionRow, error) {
	out := make([]ActionRow, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			out = append(out, row)
		}
	}
	if len(out) > maxRows {
		return nil, invalidf("command %q holds at most %d action rows, got %d", name, maxRows, len(out))
	}
	return out, nil
}
