package presentation

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/command"
	"github.com/sglre6355/slashkit/internal/modules/test/application"
	"github.com/sglre6355/slashkit/internal/modules/test/domain"
)

// PingHandler handles the /ping command and its ping-again button.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
	}
}

// Handle processes the ping command and replies with the given components.
func (h *PingHandler) Handle(ctx *command.Context, components ...discordgo.MessageComponent) error {
	result := h.interactor.Execute(latency(ctx))
	return ctx.Reply(result.Message, false, components...)
}

// HandleAgain processes a click on the ping-again button.
func (h *PingHandler) HandleAgain(ctx *command.Context) error {
	result := h.interactor.Execute(latency(ctx))
	return ctx.Reply(result.Message, true)
}

func latency(ctx *command.Context) time.Duration {
	if ctx.Session == nil {
		return 0
	}
	return ctx.Session.HeartbeatLatency()
}

// AdminHandler handles the /admin command group.
type AdminHandler struct {
	echo  *application.EchoInteractor
	roles *application.RoleInteractor
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		echo:  application.NewEchoInteractor(),
		roles: application.NewRoleInteractor(),
	}
}

// Audit logs every /admin invocation before the sub-command runs.
func (h *AdminHandler) Audit(ctx *command.Context) error {
	slog.Info("ran admin command",
		"user_id", ctx.UserID(),
		"group", ctx.SubcommandGroup(),
		"subcommand", ctx.Subcommand(),
	)
	return nil
}

// Echo repeats the text option back to the channel.
func (h *AdminHandler) Echo(ctx *command.Context) error {
	var text string
	if opt, ok := ctx.Option("text"); ok {
		text = opt.StringValue()
	}

	out, err := h.echo.Execute(text)
	if errors.Is(err, domain.ErrEmptyEcho) {
		return ctx.Reply("There is nothing to echo.", true)
	}
	if err != nil {
		return err
	}

	return ctx.Reply(out, false)
}

// ListRoles replies with the role picker.
func (h *AdminHandler) ListRoles(ctx *command.Context, components ...discordgo.MessageComponent) error {
	return ctx.Reply("Pick the roles to describe.", true, components...)
}

// RoleInfo describes the role option.
func (h *AdminHandler) RoleInfo(ctx *command.Context) error {
	opt, ok := ctx.Option("role")
	if !ok {
		return ctx.Reply("No role given.", true)
	}

	summary, err := h.roles.Summarize([]string{opt.RoleValue(nil, "").ID})
	if err != nil {
		return err
	}
	return ctx.Reply(summary, true)
}

// PickRoles processes a role picker selection.
func (h *AdminHandler) PickRoles(ctx *command.Context) error {
	summary, err := h.roles.Summarize(ctx.Values())
	if err != nil {
		return err
	}
	return ctx.Reply(summary, true)
}

// PongHandler handles messages containing the 🏓 emoji.
type PongHandler struct {
	interactor *application.PongInteractor
}

// NewPongHandler creates a new PongHandler.
func NewPongHandler() *PongHandler {
	return &PongHandler{
		interactor: application.NewPongInteractor(),
	}
}

// HandleMessage is the discordgo event handler for MessageCreate events.
func (h *PongHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bots, including the bot itself
	if m.Author == nil || m.Author.Bot {
		return
	}

	result := h.interactor.Execute(m.Content)
	if result.ShouldRespond {
		if _, err := s.ChannelMessageSend(m.ChannelID, result.Response); err != nil {
			slog.Error("failed to send message", "channel", m.ChannelID, "error", err)
		}
	}
}
