package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/command"
	"github.com/sglre6355/slashkit/internal/command/commandtest"
)

func TestPingHandler_ReturnsMessage(t *testing.T) {
	handler := NewPingHandler()
	responder := &command.MockResponder{}
	ctx := command.NewContext(nil, commandtest.SlashCommand("ping"), responder)

	err := handler.Handle(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastResponse == nil {
		t.Fatal("expected response, got nil")
	}

	if responder.LastResponse.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("expected response type %d, got %d",
			discordgo.InteractionResponseChannelMessageWithSource,
			responder.LastResponse.Type)
	}

	data := responder.LastResponse.Data
	if data == nil {
		t.Fatal("expected response data, got nil")
	}

	if data.Content != "Pong!" {
		t.Errorf("expected content %q, got %q", "Pong!", data.Content)
	}
}

func TestPingHandler_ResponderError(t *testing.T) {
	handler := NewPingHandler()
	expectedErr := errors.New("responder failed")
	responder := &command.MockResponder{Err: expectedErr}
	ctx := command.NewContext(nil, commandtest.SlashCommand("ping"), responder)

	err := handler.Handle(ctx)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestPingHandler_HandleAgain(t *testing.T) {
	handler := NewPingHandler()
	first := &command.MockResponder{}
	second := &command.MockResponder{}

	if err := handler.Handle(command.NewContext(nil, commandtest.SlashCommand("ping"), first)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handler.HandleAgain(command.NewContext(nil, commandtest.Button(PingAgainButtonID), second)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.LastContent() != "Pong! Ping #2." {
		t.Errorf("expected %q, got %q", "Pong! Ping #2.", second.LastContent())
	}
	if second.LastResponse.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected ping-again reply to be ephemeral")
	}
}

func TestAdminHandler_Echo(t *testing.T) {
	handler := NewAdminHandler()
	responder := &command.MockResponder{}
	event := commandtest.Subcommand("admin", "echo", commandtest.StringOption("text", " hi @everyone "))

	if err := handler.Echo(command.NewContext(nil, event, responder)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := responder.LastContent()
	if !strings.HasPrefix(content, "hi @") || strings.Contains(content, "@everyone") {
		t.Errorf("expected defused echo, got %q", content)
	}
}

func TestAdminHandler_EchoEmpty(t *testing.T) {
	handler := NewAdminHandler()
	responder := &command.MockResponder{}
	event := commandtest.Subcommand("admin", "echo", commandtest.StringOption("text", "  "))

	if err := handler.Echo(command.NewContext(nil, event, responder)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastContent() != "There is nothing to echo." {
		t.Errorf("unexpected reply %q", responder.LastContent())
	}
}

func TestAdminHandler_PickRoles(t *testing.T) {
	handler := NewAdminHandler()
	responder := &command.MockResponder{}
	event := commandtest.SelectMenu(RolePickerID, "700000000000000007", "700000000000000008")

	if err := handler.PickRoles(command.NewContext(nil, event, responder)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Selected roles: <@&700000000000000007>, <@&700000000000000008>"
	if responder.LastContent() != expected {
		t.Errorf("expected %q, got %q", expected, responder.LastContent())
	}
}

func TestAdminHandler_PickRolesInvalid(t *testing.T) {
	handler := NewAdminHandler()
	event := commandtest.SelectMenu(RolePickerID, "not-a-role")

	if err := handler.PickRoles(command.NewContext(nil, event, &command.MockResponder{})); err == nil {
		t.Error("expected error for invalid role id, got nil")
	}
}

func TestAdminHandler_RoleInfo(t *testing.T) {
	handler := NewAdminHandler()
	responder := &command.MockResponder{}
	event := commandtest.GroupSubcommand("admin", "roles", "info", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "role",
		Type:  discordgo.ApplicationCommandOptionRole,
		Value: "700000000000000007",
	})

	if err := handler.RoleInfo(command.NewContext(nil, event, responder)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastContent() != "Selected roles: <@&700000000000000007>" {
		t.Errorf("unexpected reply %q", responder.LastContent())
	}
}
