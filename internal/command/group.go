package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// GroupConfig declares a CommandGroup.
type GroupConfig struct {
	Name        string
	Description string
	// GuildOnly, DefaultPermission, DefaultMemberPermissions and Permissions
	// are inherited by every child.
	GuildOnly                bool
	DefaultPermission        *bool
	DefaultMemberPermissions *int64
	Permissions              []*discordgo.ApplicationCommandPermissions
	// Run is optional and runs before the addressed child.
	Run HandlerFunc
	// Children holds 1 to 25 Commands or CommandGroups. A CommandGroup placed
	// here may only hold Commands. Nil entries are dropped.
	Children []Node
}

// CommandGroup is a command made of sub-commands and sub-command groups.
type CommandGroup struct {
	name                     string
	description              string
	guildOnly                bool
	defaultPermission        *bool
	defaultMemberPermissions *int64
	permissions              []*discordgo.ApplicationCommandPermissions
	run                      HandlerFunc
	children                 []Node
}

// NewGroup validates cfg and creates a CommandGroup.
func NewGroup(cfg GroupConfig) (*CommandGroup, error) {
	name, err := normalizeName(cfg.Name)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(name, cfg.Description); err != nil {
		return nil, err
	}

	children := make([]Node, 0, len(cfg.Children))
	for _, child := range cfg.Children {
		if child == nil {
			continue
		}
		if err := validateChild(name, child); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 0 || len(children) > maxChildren {
		return nil, invalidf("group %q needs 1 to %d children, got %d", name, maxChildren, len(children))
	}

	return &CommandGroup{
		name:                     name,
		description:              cfg.Description,
		guildOnly:                cfg.GuildOnly,
		defaultPermission:        cfg.DefaultPermission,
		defaultMemberPermissions: cfg.DefaultMemberPermissions,
		permissions:              cfg.Permissions,
		run:                      cfg.Run,
		children:                 children,
	}, nil
}

// MustGroup is like NewGroup but panics on error.
func MustGroup(cfg GroupConfig) *CommandGroup {
	g, err := NewGroup(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

func validateChild(parent string, child Node) error {
	switch c := child.(type) {
	case *Command:
		if c.guildOnly || c.defaultPermission != nil || c.defaultMemberPermissions != nil || len(c.permissions) > 0 {
			return invalidf("group %q: sub-command %q cannot set guild-only or permission flags", parent, c.name)
		}
	case *CommandGroup:
		if c.guildOnly || c.defaultPermission != nil || c.defaultMemberPermissions != nil || len(c.permissions) > 0 {
			return invalidf("group %q: sub-group %q cannot set guild-only or permission flags", parent, c.name)
		}
		for _, grandchild := range c.children {
			if _, ok := grandchild.(*CommandGroup); ok {
				return invalidf("group %q: sub-group %q nests group %q, only two levels are allowed",
					parent, c.name, grandchild.Name())
			}
		}
	}
	return nil
}

// Name returns the lower-cased group name.
func (g *CommandGroup) Name() string { return g.name }

// Description returns the group description.
func (g *CommandGroup) Description() string { return g.description }

// GuildOnly reports whether the group is rejected outside a guild.
func (g *CommandGroup) GuildOnly() bool { return g.guildOnly }

// Permissions returns the per-guild permission overwrites pushed on deploy.
func (g *CommandGroup) Permissions() []*discordgo.ApplicationCommandPermissions {
	return g.permissions
}

// Children returns the direct children in declaration order.
func (g *CommandGroup) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

// ApplicationCommand flattens the children into sub-command and sub-command
// group options.
func (g *CommandGroup) ApplicationCommand() *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(g.children))
	for _, child := range g.children {
		switch c := child.(type) {
		case *CommandGroup:
			subs := make([]*discordgo.ApplicationCommandOption, 0, len(c.children))
			for _, grandchild := range c.children {
				if leaf, ok := grandchild.(*Command); ok {
					subs = append(subs, leaf.subcommandOption())
				}
			}
			options = append(options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        c.name,
				Description: c.description,
				Options:     subs,
			})
		case *Command:
			options = append(options, c.subcommandOption())
		}
	}

	return &discordgo.ApplicationCommand{
		Name:                     g.name,
		Description:              g.description,
		Options:                  options,
		DefaultPermission:        g.defaultPermission,
		DefaultMemberPermissions: g.defaultMemberPermissions,
	}
}

func (c *Command) subcommandOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        c.name,
		Description: c.description,
		Options:     c.Options(),
	}
}

// CommandComponents returns the action rows of every descendant, depth-first.
func (g *CommandGroup) CommandComponents() []ActionRow {
	rows := make([]ActionRow, 0)
	for _, child := range g.children {
		rows = append(rows, child.CommandComponents()...)
	}
	return rows
}

// MessageComponents returns nothing, groups render no components of their own.
func (g *CommandGroup) MessageComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{}
}

// Run invokes the group callback, then delegates to the addressed child.
// It returns a *SubcommandError when no child matches.
func (g *CommandGroup) Run(ctx *Context) error {
	if g.run != nil {
		if err := g.run(ctx); err != nil {
			return err
		}
	}

	group, sub := ctx.SubcommandGroup(), ctx.Subcommand()
	child := g.resolve(group, sub)
	if child == nil {
		name := sub
		if group != "" && group != g.name {
			name = group
		}
		return &SubcommandError{Group: g.name, Name: name}
	}
	return child.Run(ctx)
}

func (g *CommandGroup) resolve(group, sub string) Node {
	if group != "" && group == g.name {
		return g.child(sub)
	}
	if group != "" {
		if c := g.child(group); c != nil {
			return c
		}
	}
	return g.child(sub)
}

func (g *CommandGroup) child(name string) Node {
	if name == "" {
		return nil
	}
	name = strings.ToLower(name)
	for _, c := range g.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (*CommandGroup) node() {}
