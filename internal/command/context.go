package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandlerFunc is the callback signature shared by commands, buttons and select menus.
type HandlerFunc func(ctx *Context) error

// Context carries one inbound interaction to a callback.
type Context struct {
	Session   *discordgo.Session
	Event     *discordgo.InteractionCreate
	Responder Responder
}

// NewContext creates a new Context.
func NewContext(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) *Context {
	return &Context{
		Session:   s,
		Event:     i,
		Responder: r,
	}
}

func (c *Context) interaction() *discordgo.Interaction {
	if c == nil || c.Event == nil {
		return nil
	}
	return c.Event.Interaction
}

func (c *Context) commandData() (discordgo.ApplicationCommandInteractionData, bool) {
	i := c.interaction()
	if i == nil {
		return discordgo.ApplicationCommandInteractionData{}, false
	}
	data, ok := i.Data.(discordgo.ApplicationCommandInteractionData)
	return data, ok
}

func (c *Context) componentData() (discordgo.MessageComponentInteractionData, bool) {
	i := c.interaction()
	if i == nil {
		return discordgo.MessageComponentInteractionData{}, false
	}
	data, ok := i.Data.(discordgo.MessageComponentInteractionData)
	return data, ok
}

// CommandName returns the addressed top-level command name, lower-cased.
func (c *Context) CommandName() string {
	data, ok := c.commandData()
	if !ok {
		return ""
	}
	return strings.ToLower(data.Name)
}

// SubcommandGroup returns the addressed sub-command group name, or "" when absent.
func (c *Context) SubcommandGroup() string {
	data, ok := c.commandData()
	if !ok || len(data.Options) == 0 {
		return ""
	}
	if opt := data.Options[0]; opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
		return strings.ToLower(opt.Name)
	}
	return ""
}

// Subcommand returns the addressed sub-command name, or "" when absent.
func (c *Context) Subcommand() string {
	if leaf := c.leaf(); leaf != nil {
		return strings.ToLower(leaf.Name)
	}
	return ""
}

func (c *Context) leaf() *discordgo.ApplicationCommandInteractionDataOption {
	data, ok := c.commandData()
	if !ok || len(data.Options) == 0 {
		return nil
	}

	opt := data.Options[0]
	switch opt.Type {
	case discordgo.ApplicationCommandOptionSubCommand:
		return opt
	case discordgo.ApplicationCommandOptionSubCommandGroup:
		if len(opt.Options) > 0 && opt.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
			return opt.Options[0]
		}
	}
	return nil
}

// Options returns the options passed to the addressed leaf command.
func (c *Context) Options() []*discordgo.ApplicationCommandInteractionDataOption {
	if leaf := c.leaf(); leaf != nil {
		return leaf.Options
	}
	data, ok := c.commandData()
	if !ok {
		return nil
	}
	return data.Options
}

// Option finds an option of the addressed leaf command by name.
func (c *Context) Option(name string) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, opt := range c.Options() {
		if opt.Name == name {
			return opt, true
		}
	}
	return nil, false
}

// CustomID returns the custom id of the activated component, lower-cased.
func (c *Context) CustomID() string {
	data, ok := c.componentData()
	if !ok {
		return ""
	}
	return strings.ToLower(data.CustomID)
}

// Values returns the values picked in a select menu.
func (c *Context) Values() []string {
	data, ok := c.componentData()
	if !ok {
		return nil
	}
	return data.Values
}

// InGuild reports whether the interaction was invoked inside a guild.
func (c *Context) InGuild() bool {
	i := c.interaction()
	return i != nil && i.GuildID != ""
}

// UserID returns the id of the invoking user.
func (c *Context) UserID() string {
	i := c.interaction()
	switch {
	case i == nil:
		return ""
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	}
	return ""
}

// Reply sends a message response through the Responder.
func (c *Context) Reply(content string, ephemeral bool, components ...discordgo.MessageComponent) error {
	data := &discordgo.InteractionResponseData{
		Content:    content,
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return c.Responder.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}
