package handler

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/command"
	"github.com/sglre6355/slashkit/internal/command/commandtest"
)

// responders hands out MockResponders and remembers the last one.
type responders struct {
	last *command.MockResponder
}

func (r *responders) factory(*discordgo.Session, *discordgo.Interaction) command.Responder {
	r.last = &command.MockResponder{}
	return r.last
}

func newTestHandler(nodes ...command.Node) (*CommandHandler, *responders) {
	r := &responders{}
	h := New(Options{NewResponder: r.factory})
	h.RegisterCommand(nodes...)
	return h, r
}

func assertEphemeralReply(t *testing.T, r *command.MockResponder, expected string) {
	t.Helper()

	if len(r.Responses) != 1 {
		t.Fatalf("expected exactly 1 response, got %d", len(r.Responses))
	}
	if got := r.LastContent(); got != expected {
		t.Errorf("expected reply %q, got %q", expected, got)
	}
	if r.LastResponse.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected reply to be ephemeral")
	}
}

func TestHandleInteraction_UnknownCommand(t *testing.T) {
	called := false
	ping := command.Must(command.Config{
		Name:        "ping",
		Description: "Ping",
		Run: func(*command.Context) error {
			called = true
			return nil
		},
	})
	h, r := newTestHandler(ping)

	h.HandleInteraction(nil, commandtest.SlashCommand("unknown"))

	assertEphemeralReply(t, r.last, "Implementation for command `unknown` is missing!")
	if called {
		t.Error("expected no callback to run")
	}
}

func TestHandleInteraction_GuildOnlyOutsideGuild(t *testing.T) {
	called := false
	cmd := command.Must(command.Config{
		Name:        "kick",
		Description: "Kick",
		GuildOnly:   true,
		Run: func(*command.Context) error {
			called = true
			return nil
		},
	})
	h, r := newTestHandler(cmd)

	h.HandleInteraction(nil, commandtest.SlashCommand("kick"))

	assertEphemeralReply(t, r.last, "This command can only be executed within a guild!")
	if called {
		t.Error("expected callback not to run outside a guild")
	}
}

func TestHandleInteraction_GuildOnlyInsideGuild(t *testing.T) {
	called := false
	cmd := command.Must(command.Config{
		Name:        "kick",
		Description: "Kick",
		GuildOnly:   true,
		Run: func(ctx *command.Context) error {
			called = true
			return ctx.Reply("kicked", false)
		},
	})
	h, r := newTestHandler(cmd)

	h.HandleInteraction(nil, commandtest.InGuild(commandtest.SlashCommand("kick")))

	if !called {
		t.Fatal("expected callback to run inside a guild")
	}
	if r.last.LastContent() != "kicked" {
		t.Errorf("expected callback reply, got %q", r.last.LastContent())
	}
}

func TestHandleInteraction_GroupRunsChildAfterOwnCallback(t *testing.T) {
	var calls []string
	record := func(name string) command.HandlerFunc {
		return func(*command.Context) error {
			calls = append(calls, name)
			return nil
		}
	}
	admin := command.MustGroup(command.GroupConfig{
		Name:        "admin",
		Description: "Administration",
		Run:         record("admin"),
		Children: []command.Node{
			command.Must(command.Config{Name: "ban", Description: "Ban", Run: record("ban")}),
		},
	})
	h, _ := newTestHandler(admin)

	h.HandleInteraction(nil, commandtest.GroupSubcommand("admin", "admin", "ban"))

	if len(calls) != 2 || calls[0] != "admin" || calls[1] != "ban" {
		t.Errorf("expected [admin ban], got %v", calls)
	}
}

func TestHandleInteraction_CommandFailure(t *testing.T) {
	cmd := command.Must(command.Config{
		Name:        "ping",
		Description: "Ping",
		Run:         func(*command.Context) error { return errors.New("boom") },
	})
	h, r := newTestHandler(cmd)

	h.HandleInteraction(nil, commandtest.SlashCommand("ping"))

	assertEphemeralReply(t, r.last, "Command `ping` failed!")
}

func TestHandleInteraction_CommandPanic(t *testing.T) {
	cmd := command.Must(command.Config{
		Name:        "ping",
		Description: "Ping",
		Run:         func(*command.Context) error { panic("unexpected") },
	})
	h, r := newTestHandler(cmd)

	h.HandleInteraction(nil, commandtest.SlashCommand("ping"))

	assertEphemeralReply(t, r.last, "Command `ping` failed!")
}

func TestHandleInteraction_FailureAfterResponseSendsNothing(t *testing.T) {
	cmd := command.Must(command.Config{
		Name:        "ping",
		Description: "Ping",
		Run: func(ctx *command.Context) error {
			if err := ctx.Reply("pong", false); err != nil {
				return err
			}
			return errors.New("late failure")
		},
	})
	h, r := newTestHandler(cmd)

	h.HandleInteraction(nil, commandtest.SlashCommand("ping"))

	if len(r.last.Responses) != 1 {
		t.Fatalf("expected exactly 1 response, got %d", len(r.last.Responses))
	}
	if r.last.LastContent() != "pong" {
		t.Errorf("expected the callback's reply to stand, got %q", r.last.LastContent())
	}
}

func TestHandleInteraction_MissingSubcommand(t *testing.T) {
	admin := command.MustGroup(command.GroupConfig{
		Name:        "admin",
		Description: "Administration",
		Children: []command.Node{
			command.Must(command.Config{Name: "ban", Description: "Ban", Run: noop}),
		},
	})
	h, r := newTestHandler(admin)

	h.HandleInteraction(nil, commandtest.Subcommand("admin", "mute"))

	assertEphemeralReply(t, r.last, "Implementation for sub-command `mute` is missing!")
}

func TestHandleInteraction_Button(t *testing.T) {
	clicked := 0
	button := command.MustFunctionButton(command.FunctionButtonConfig{
		CustomID: "Confirm",
		Label:    "Confirm",
		Run: func(*command.Context) error {
			clicked++
			return nil
		},
	})
	h, r := newTestHandler(leafCommand("ping", command.MustButtonRow(button)))

	h.HandleInteraction(nil, commandtest.Button("confirm"))

	if clicked != 1 {
		t.Errorf("expected button to run once, got %d", clicked)
	}
	if r.last.Responded() {
		t.Error("expected no dispatcher reply on success")
	}
}

func TestHandleInteraction_ButtonMissingAndFailed(t *testing.T) {
	failing := command.MustFunctionButton(command.FunctionButtonConfig{
		CustomID: "explode",
		Label:    "Explode",
		Run:      func(*command.Context) error { return errors.New("boom") },
	})
	h, r := newTestHandler(leafCommand("ping", command.MustButtonRow(failing)))

	h.HandleInteraction(nil, commandtest.Button("nothing"))
	assertEphemeralReply(t, r.last, "Implementation for button `nothing` is missing!")

	h.HandleInteraction(nil, commandtest.Button("explode"))
	assertEphemeralReply(t, r.last, "Button `explode` failed!")
}

func TestHandleInteraction_SelectMenu(t *testing.T) {
	var picked []string
	menu := command.MustSelectMenuRow(command.SelectMenuConfig{
		CustomID: "Picker",
		Options:  []discordgo.SelectMenuOption{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}},
		Run: func(ctx *command.Context) error {
			picked = ctx.Values()
			return nil
		},
	})
	h, r := newTestHandler(leafCommand("pick", menu))

	h.HandleInteraction(nil, commandtest.SelectMenu("picker", "b"))
	if len(picked) != 1 || picked[0] != "b" {
		t.Errorf("expected [b], got %v", picked)
	}

	h.HandleInteraction(nil, commandtest.SelectMenu("other"))
	assertEphemeralReply(t, r.last, "Implementation for select menu `other` is missing!")
}

func TestHandleInteraction_SelectMenuFailure(t *testing.T) {
	menu := command.MustSelectMenuRow(command.SelectMenuConfig{
		CustomID: "roles",
		MenuType: discordgo.RoleSelectMenu,
		Run:      func(*command.Context) error { return errors.New("boom") },
	})
	h, r := newTestHandler(leafCommand("pick", menu))

	event := commandtest.SelectMenu("roles")
	data := event.Data.(discordgo.MessageComponentInteractionData)
	data.ComponentType = discordgo.RoleSelectMenuComponent
	event.Data = data

	h.HandleInteraction(nil, event)

	assertEphemeralReply(t, r.last, "Select menu `roles` failed!")
}

func TestHandleInteraction_IgnoresOtherTypes(t *testing.T) {
	h, r := newTestHandler(leafCommand("ping"))

	event := commandtest.SlashCommand("ping")
	event.Type = discordgo.InteractionApplicationCommandAutocomplete

	h.HandleInteraction(nil, event)

	if r.last.Responded() {
		t.Error("expected no reply for autocomplete interactions")
	}
}

func TestHandleInteraction_StandaloneComponents(t *testing.T) {
	var clicked, picked int
	vote := command.MustFunctionButton(command.FunctionButtonConfig{
		CustomID: "Vote",
		Label:    "Vote",
		Run: func(*command.Context) error {
			clicked++
			return nil
		},
	})
	colour := command.MustSelectMenuRow(command.SelectMenuConfig{
		CustomID: "colour",
		Options:  []discordgo.SelectMenuOption{{Label: "Red", Value: "red"}},
		Run: func(*command.Context) error {
			picked++
			return nil
		},
	})

	h, r := newTestHandler()
	h.RegisterButton(vote)
	h.RegisterSelectMenu(colour)
	h.RegisterCommand(leafCommand("ping"))

	h.HandleInteraction(nil, commandtest.Button("vote"))
	h.HandleInteraction(nil, commandtest.SelectMenu("colour", "red"))

	if clicked != 1 || picked != 1 {
		t.Errorf("expected both components to run once, got button %d and menu %d", clicked, picked)
	}
	if r.last.Responded() {
		t.Error("expected no dispatcher reply on success")
	}
}
