package presentation

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/slashkit/internal/command"
)

func TestNewCommands(t *testing.T) {
	nodes, err := NewCommands(CommandsConfig{
		DocsURL:      "https://example.org/docs",
		AdminRoleIDs: []snowflake.ID{700000000000000007},
	}, NewPingHandler(), NewAdminHandler())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(nodes) != 2 || nodes[0].Name() != "ping" || nodes[1].Name() != "admin" {
		t.Fatalf("expected [ping admin], got %d nodes", len(nodes))
	}

	admin := nodes[1]
	if !admin.GuildOnly() {
		t.Error("expected admin to be guild only")
	}
	if len(admin.Permissions()) != 1 || admin.Permissions()[0].Type != discordgo.ApplicationCommandPermissionTypeRole {
		t.Error("expected admin role permission")
	}

	app := admin.ApplicationCommand()
	if len(app.Options) != 2 {
		t.Fatalf("expected 2 admin options, got %d", len(app.Options))
	}
	if app.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand || app.Options[0].Name != "echo" {
		t.Errorf("expected echo sub-command, got %v %q", app.Options[0].Type, app.Options[0].Name)
	}
	if app.Options[1].Type != discordgo.ApplicationCommandOptionSubCommandGroup || app.Options[1].Name != "roles" {
		t.Errorf("expected roles sub-command group, got %v %q", app.Options[1].Type, app.Options[1].Name)
	}
	if app.DefaultMemberPermissions == nil || *app.DefaultMemberPermissions != discordgo.PermissionManageRoles {
		t.Error("expected manage roles default member permission")
	}

	if len(admin.CommandComponents()) != 1 {
		t.Errorf("expected the role picker to be owned by admin, got %d rows", len(admin.CommandComponents()))
	}
}

func TestNewCommands_InvalidDocsURL(t *testing.T) {
	_, err := NewCommands(CommandsConfig{DocsURL: "not a url"}, NewPingHandler(), NewAdminHandler())
	if !errors.Is(err, command.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
