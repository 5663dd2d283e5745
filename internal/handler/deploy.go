package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

var (
	// ErrNoApplicationID is returned when deploying before the application id is known.
	ErrNoApplicationID = errors.New("application id is not set")
	// ErrNoSession is returned when deploying without a REST session.
	ErrNoSession = errors.New("session is not set")
)

// DeployCommands overwrites the commands of a guild with every registered
// command, in registration order. An empty guildID deploys globally.
// When permission sync is enabled it runs after a successful deploy.
func (h *CommandHandler) DeployCommands(guildID string) error {
	appID, err := h.deployTarget()
	if err != nil {
		return err
	}

	commands := h.registry.ApplicationCommands()
	if _, err := h.session.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("failed to deploy commands to guild %q: %w", guildID, err)
	}
	slog.Info("deployed commands", "guild_id", guildID, "count", len(commands))

	if !h.deploy.SetPermissions {
		return nil
	}
	if guildID == "" {
		slog.Debug("skipped permission sync for global commands")
		return nil
	}
	return h.SetPermissions(guildID)
}

// SetPermissions pushes the local permission list of every deployed command
// that is registered here. Commands only known remotely are left untouched.
func (h *CommandHandler) SetPermissions(guildID string) error {
	appID, err := h.deployTarget()
	if err != nil {
		return err
	}

	deployed, err := h.session.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("failed to fetch commands of guild %q: %w", guildID, err)
	}

	var errs []error
	for _, remote := range deployed {
		local, ok := h.registry.Command(remote.Name)
		if !ok {
			continue
		}
		perms := local.Permissions()
		if len(perms) == 0 {
			continue
		}

		err := h.session.ApplicationCommandPermissionsEdit(appID, guildID, remote.ID,
			&discordgo.ApplicationCommandPermissionsList{Permissions: perms})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to set permissions of command %q: %w", remote.Name, err))
			continue
		}
		slog.Debug("set command permissions", "guild_id", guildID, "command", remote.Name, "count", len(perms))
	}

	return errors.Join(errs...)
}

func (h *CommandHandler) deployTarget() (string, error) {
	if h.session == nil {
		return "", ErrNoSession
	}
	appID := h.ApplicationID()
	if appID == "" {
		return "", ErrNoApplicationID
	}
	return appID, nil
}

// HandleMessage deploys the registered commands to the current guild when an
// allowed user sends the deploy command. It matches the discordgo handler
// signature.
func (h *CommandHandler) HandleMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if !h.DeployTriggerEnabled() {
		return
	}
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" || m.Content != h.deploy.Command {
		return
	}
	if !h.allowedToDeploy(m.Author.ID) {
		slog.Debug("ignored deploy command from user", "user_id", m.Author.ID)
		return
	}

	if !h.limiter.Allow() {
		h.replyToMessage(m.Message, deployOnCooldownReply)
		return
	}

	if err := h.DeployCommands(m.GuildID); err != nil {
		slog.Error("failed to deploy commands", "guild_id", m.GuildID, "user_id", m.Author.ID, "error", err)
		h.replyToMessage(m.Message, deployFailedReply)
		return
	}
	h.replyToMessage(m.Message, deployedReply)
}

// DeployTriggerEnabled reports whether any user may use the deploy command.
func (h *CommandHandler) DeployTriggerEnabled() bool {
	return len(h.deploy.AllowedUserIDs) > 0
}

func (h *CommandHandler) allowedToDeploy(userID string) bool {
	id, err := snowflake.Parse(userID)
	if err != nil {
		return false
	}
	return slices.Contains(h.deploy.AllowedUserIDs, id)
}

func (h *CommandHandler) replyToMessage(m *discordgo.Message, content string) {
	if h.session == nil {
		return
	}
	if _, err := h.session.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		slog.Error("failed to reply to message", "channel_id", m.ChannelID, "error", err)
	}
}
