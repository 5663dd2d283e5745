package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/handler"
)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	session *discordgo.Session
	modules []Module
	handler *handler.CommandHandler
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:  cfg,
		modules: make([]Module, 0),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Handler returns the command handler, or nil before the bot is prepared.
func (b *Bot) Handler() *handler.CommandHandler {
	return b.handler
}

// Start initializes the bot, connects to Discord, and deploys commands to the
// configured guilds.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session

	if err := b.prepare(session); err != nil {
		return err
	}

	// Register interaction handler
	b.session.AddHandler(b.handler.HandleInteraction)

	// Register deploy trigger
	if b.handler.DeployTriggerEnabled() {
		b.session.Identify.Intents |= discordgo.IntentMessageContent
		b.session.AddHandler(b.handler.HandleMessage)
	}

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if b.handler.ApplicationID() == "" {
		b.handler.SetApplicationID(b.session.State.User.ID)
	}

	if err := b.deployToGuilds(b.config.Deploy.GuildIDStrings()); err != nil {
		return fmt.Errorf("failed to deploy commands: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"commands", b.handler.Registry().Len(),
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// Deploy deploys the registered commands over REST without opening the
// gateway. An empty guildIDs deploys globally.
func (b *Bot) Deploy(guildIDs []string) error {
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session

	if err := b.prepare(session); err != nil {
		return err
	}

	if b.handler.ApplicationID() == "" {
		app, err := session.Application("@me")
		if err != nil {
			return fmt.Errorf("failed to fetch application: %w", err)
		}
		b.handler.SetApplicationID(app.ID)
	}

	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}
	return b.deployToGuilds(guildIDs)
}

// Schema returns the deployment payload of every module's commands without
// connecting to Discord.
func (b *Bot) Schema() ([]*discordgo.ApplicationCommand, error) {
	if err := b.prepare(nil); err != nil {
		return nil, err
	}
	return b.handler.Registry().ApplicationCommands(), nil
}

// prepare creates the command handler and registers every module's commands.
func (b *Bot) prepare(session *discordgo.Session) error {
	opts := handler.Options{
		ApplicationID: b.config.ApplicationID,
		Deploy: handler.DeployOptions{
			AllowedUserIDs: b.config.Deploy.AllowedUserIDs,
			Command:        b.config.Deploy.Command,
			SetPermissions: b.config.Deploy.SetPermissions,
			Cooldown:       b.config.Deploy.Cooldown,
		},
	}
	if session != nil {
		opts.Session = session
	}
	b.handler = handler.New(opts)

	// Load module configuration
	if err := b.loadModuleConfigs(); err != nil {
		return fmt.Errorf("failed to load module configuration: %w", err)
	}

	// Initialize modules
	if err := b.initModules(session); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	b.registerCommands()

	return nil
}

// loadModuleConfigs calls LoadConfig on every configurable module.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module configuration: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules(session *discordgo.Session) error {
	deps := ModuleDependencies{
		Session: session,
		Config:  b.config,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// registerCommands registers all module commands with the handler.
func (b *Bot) registerCommands() {
	for _, mod := range b.modules {
		commands := mod.Commands()
		b.handler.RegisterCommand(commands...)
		for _, cmd := range commands {
			if cmd == nil {
				continue
			}
			slog.Debug("registered command", "module", mod.Name(), "command", cmd.Name())
		}
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, h := range mod.EventHandlers() {
			b.session.AddHandler(h)
		}
	}
}

// deployToGuilds deploys to every guild, continuing past failures.
func (b *Bot) deployToGuilds(guildIDs []string) error {
	var errs []error
	for _, guildID := range guildIDs {
		if err := b.handler.DeployCommands(guildID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
