package presentation

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/slashkit/internal/command"
)

// Custom ids of the module's components.
const (
	PingAgainButtonID = "ping-again"
	RolePickerID      = "role-picker"
)

// CommandsConfig holds the settings the command declarations depend on.
type CommandsConfig struct {
	DocsURL      string
	AdminRoleIDs []snowflake.ID
}

// NewCommands declares the /ping command and the /admin command group.
func NewCommands(cfg CommandsConfig, ping *PingHandler, admin *AdminHandler) ([]command.Node, error) {
	pingCmd, err := newPingCommand(cfg, ping)
	if err != nil {
		return nil, fmt.Errorf("failed to declare ping command: %w", err)
	}

	adminGroup, err := newAdminGroup(cfg, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to declare admin command: %w", err)
	}

	return []command.Node{pingCmd, adminGroup}, nil
}

func newPingCommand(cfg CommandsConfig, h *PingHandler) (*command.Command, error) {
	again, err := command.NewFunctionButton(command.FunctionButtonConfig{
		CustomID: PingAgainButtonID,
		Label:    "Ping again",
		Emoji:    &discordgo.ComponentEmoji{Name: "🏓"},
		Run:      h.HandleAgain,
	})
	if err != nil {
		return nil, err
	}

	docs, err := command.NewLinkButton(command.LinkButtonConfig{
		URL:   cfg.DocsURL,
		Label: "Docs",
	})
	if err != nil {
		return nil, err
	}

	row, err := command.NewButtonRow(again, docs)
	if err != nil {
		return nil, err
	}

	return command.New(command.Config{
		Name:        "ping",
		Description: "Replies with Pong!",
		Components:  []command.ActionRow{row},
		Run: func(ctx *command.Context) error {
			return h.Handle(ctx, row.MessageComponent())
		},
	})
}

func newAdminGroup(cfg CommandsConfig, h *AdminHandler) (*command.CommandGroup, error) {
	echo, err := command.New(command.Config{
		Name:        "echo",
		Description: "Repeats a message",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Text to repeat",
				Required:    true,
			},
		},
		Run: h.Echo,
	})
	if err != nil {
		return nil, err
	}

	picker, err := command.NewSelectMenuRow(command.SelectMenuConfig{
		CustomID:    RolePickerID,
		MenuType:    discordgo.RoleSelectMenu,
		Placeholder: "Pick roles",
		MaxValues:   5,
		Run:         h.PickRoles,
	})
	if err != nil {
		return nil, err
	}

	list, err := command.New(command.Config{
		Name:        "list",
		Description: "Pick roles to describe",
		Components:  []command.ActionRow{picker},
		Run: func(ctx *command.Context) error {
			return h.ListRoles(ctx, picker.MessageComponent())
		},
	})
	if err != nil {
		return nil, err
	}

	info, err := command.New(command.Config{
		Name:        "info",
		Description: "Describes a role",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "Role to describe",
				Required:    true,
			},
		},
		Run: h.RoleInfo,
	})
	if err != nil {
		return nil, err
	}

	roles, err := command.NewGroup(command.GroupConfig{
		Name:        "roles",
		Description: "Role tools",
		Children:    []command.Node{list, info},
	})
	if err != nil {
		return nil, err
	}

	permissions := make([]*discordgo.ApplicationCommandPermissions, len(cfg.AdminRoleIDs))
	for i, id := range cfg.AdminRoleIDs {
		permissions[i] = command.AllowRole(id)
	}
	memberPermissions := int64(discordgo.PermissionManageRoles)

	return command.NewGroup(command.GroupConfig{
		Name:                     "admin",
		Description:              "Administration tools",
		GuildOnly:                true,
		DefaultMemberPermissions: &memberPermissions,
		Permissions:              permissions,
		Run:                      h.Audit,
		Children:                 []command.Node{echo, roles},
	})
}
