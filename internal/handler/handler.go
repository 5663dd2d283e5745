// Package handler registers slash commands with their components and routes
// inbound interactions to them.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/slashkit/internal/command"
	"golang.org/x/time/rate"
)

// Replies sent by the dispatcher. All of them are ephemeral.
const (
	guildOnlyReply         = "This command can only be executed within a guild!"
	missingCommandReply    = "Implementation for command `%s` is missing!"
	missingSubcommandReply = "Implementation for sub-command `%s` is missing!"
	missingButtonReply     = "Implementation for button `%s` is missing!"
	missingSelectMenuReply = "Implementation for select menu `%s` is missing!"
	failedCommandReply     = "Command `%s` failed!"
	failedButtonReply      = "Button `%s` failed!"
	failedSelectMenuReply  = "Select menu `%s` failed!"
	defaultDeployCommand   = "!deploy"
	deployedReply          = "Commands deployed!"
	deployFailedReply      = "Failed to deploy commands!"
	deployOnCooldownReply  = "Deploy is on cooldown, try again later."
)

// ErrCallbackPanic wraps a panic recovered from a command or component callback.
var ErrCallbackPanic = errors.New("callback panicked")

// Session is the subset of *discordgo.Session used for deployment and the
// deploy trigger reply.
type Session interface {
	ApplicationCommandBulkOverwrite(
		appID, guildID string,
		commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommands(
		appID, guildID string,
		options ...discordgo.RequestOption,
	) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandPermissionsEdit(
		appID, guildID, cmdID string,
		permissions *discordgo.ApplicationCommandPermissionsList,
		options ...discordgo.RequestOption,
	) error
	ChannelMessageSendReply(
		channelID, content string,
		reference *discordgo.MessageReference,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

// ResponderFactory creates the Responder handed to callbacks for one interaction.
type ResponderFactory func(s *discordgo.Session, i *discordgo.Interaction) command.Responder

// DeployOptions configures the deploy trigger and permission sync.
type DeployOptions struct {
	// AllowedUserIDs may use the deploy trigger. The trigger is disabled when empty.
	AllowedUserIDs []snowflake.ID
	// Command is the message content that triggers a deploy. Defaults to "!deploy".
	Command string
	// SetPermissions pushes command permissions after every successful deploy.
	SetPermissions bool
	// Cooldown is the minimum interval between triggered deploys. Zero disables throttling.
	Cooldown time.Duration
}

// Options configures a CommandHandler.
type Options struct {
	Session       Session
	ApplicationID string
	Deploy        DeployOptions
	// NewResponder defaults to command.NewDiscordResponder.
	NewResponder ResponderFactory
}

// CommandHandler owns the registry and dispatches interactions to it.
type CommandHandler struct {
	registry     *Registry
	session      Session
	deploy       DeployOptions
	newResponder ResponderFactory
	limiter      *rate.Limiter

	mu            sync.RWMutex
	applicationID string
}

// New creates a CommandHandler with an empty registry.
func New(opts Options) *CommandHandler {
	deploy := opts.Deploy
	if deploy.Command == "" {
		deploy.Command = defaultDeployCommand
	}

	limit := rate.Inf
	if deploy.Cooldown > 0 {
		limit = rate.Every(deploy.Cooldown)
	}

	newResponder := opts.NewResponder
	if newResponder == nil {
		newResponder = command.NewDiscordResponder
	}

	return &CommandHandler{
		registry:      NewRegistry(),
		session:       opts.Session,
		deploy:        deploy,
		newResponder:  newResponder,
		limiter:       rate.NewLimiter(limit, 1),
		applicationID: opts.ApplicationID,
	}
}

// RegisterCommand registers top-level commands and every component their
// subtrees own.
func (h *CommandHandler) RegisterCommand(nodes ...command.Node) {
	h.registry.Register(nodes...)
}

// RegisterButton registers buttons that are not declared on any command.
// They survive later RegisterCommand calls.
func (h *CommandHandler) RegisterButton(buttons ...*command.FunctionButton) {
	h.registry.RegisterButtons(buttons...)
}

// RegisterSelectMenu registers select menus that are not declared on any
// command.
func (h *CommandHandler) RegisterSelectMenu(menus ...*command.SelectMenuRow) {
	h.registry.RegisterSelectMenus(menus...)
}

// Registry returns the underlying registry.
func (h *CommandHandler) Registry() *Registry {
	return h.registry
}

// SetApplicationID sets the application id used for deployment.
func (h *CommandHandler) SetApplicationID(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applicationID = id
}

// ApplicationID returns the application id used for deployment.
func (h *CommandHandler) ApplicationID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.applicationID
}

// HandleInteraction routes an interaction to the registered command, button or
// select menu. It matches the discordgo handler signature.
func (h *CommandHandler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil {
		return
	}

	ctx := command.NewContext(s, i, h.newResponder(s, i.Interaction))

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx)
	case discordgo.InteractionMessageComponent:
		data, ok := i.Data.(discordgo.MessageComponentInteractionData)
		if !ok {
			return
		}
		switch data.ComponentType {
		case discordgo.ButtonComponent:
			h.handleButton(ctx)
		case discordgo.SelectMenuComponent,
			discordgo.UserSelectMenuComponent,
			discordgo.RoleSelectMenuComponent,
			discordgo.MentionableSelectMenuComponent,
			discordgo.ChannelSelectMenuComponent:
			h.handleSelectMenu(ctx)
		default:
			slog.Debug("ignored component interaction", "component_type", data.ComponentType)
		}
	default:
		slog.Debug("ignored interaction", "type", i.Type.String())
	}
}

func (h *CommandHandler) handleCommand(ctx *command.Context) {
	name := ctx.CommandName()

	node, ok := h.registry.Command(name)
	if !ok {
		slog.Warn("found no implementation for command", "command", name)
		h.reply(ctx, fmt.Sprintf(missingCommandReply, name))
		return
	}

	if node.GuildOnly() && !ctx.InGuild() {
		h.reply(ctx, guildOnlyReply)
		return
	}

	err := invoke(node.Run, ctx)
	if err == nil {
		return
	}

	var subErr *command.SubcommandError
	if errors.As(err, &subErr) {
		slog.Warn("found no implementation for sub-command",
			"command", name,
			"group", subErr.Group,
			"subcommand", subErr.Name,
		)
		h.reply(ctx, fmt.Sprintf(missingSubcommandReply, subErr.Name))
		return
	}

	slog.Error("failed to run command", "command", name, "error", err)
	h.reply(ctx, fmt.Sprintf(failedCommandReply, name))
}

func (h *CommandHandler) handleButton(ctx *command.Context) {
	id := ctx.CustomID()

	button, ok := h.registry.Button(id)
	if !ok {
		slog.Warn("found no implementation for button", "button", id)
		h.reply(ctx, fmt.Sprintf(missingButtonReply, id))
		return
	}

	if err := invoke(button.Run, ctx); err != nil {
		slog.Error("failed to run button", "button", id, "error", err)
		h.reply(ctx, fmt.Sprintf(failedButtonReply, id))
	}
}

func (h *CommandHandler) handleSelectMenu(ctx *command.Context) {
	id := ctx.CustomID()

	menu, ok := h.registry.SelectMenu(id)
	if !ok {
		slog.Warn("found no implementation for select menu", "select_menu", id)
		h.reply(ctx, fmt.Sprintf(missingSelectMenuReply, id))
		return
	}

	if err := invoke(menu.Run, ctx); err != nil {
		slog.Error("failed to run select menu", "select_menu", id, "error", err)
		h.reply(ctx, fmt.Sprintf(failedSelectMenuReply, id))
	}
}

// reply sends an ephemeral message unless the callback already responded.
func (h *CommandHandler) reply(ctx *command.Context, content string) {
	if ctx.Responder.Responded() {
		return
	}
	if err := ctx.Reply(content, true); err != nil {
		slog.Error("failed to send reply", "error", err)
	}
}

// invoke runs a callback, turning a panic into an error.
func invoke(run command.HandlerFunc, ctx *command.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
		}
	}()
	return run(ctx)
}
