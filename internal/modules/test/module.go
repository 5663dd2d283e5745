package test

import (
	"github.com/sglre6355/slashkit/internal/bot"
	"github.com/sglre6355/slashkit/internal/command"
	"github.com/sglre6355/slashkit/internal/modules/test/presentation"
)

func init() {
	bot.Register(&TestModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*TestModule)(nil)

// TestModule provides example commands: /ping with buttons and the /admin
// command group with a role picker.
type TestModule struct {
	config      *Config
	commands    []command.Node
	pongHandler *presentation.PongHandler
}

// Name returns the module name.
func (m *TestModule) Name() string {
	return "test"
}

// Commands returns the commands declared by this module.
func (m *TestModule) Commands() []command.Node {
	return m.commands
}

// EventHandlers returns the event handlers for this module.
func (m *TestModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		m.pongHandler.HandleMessage,
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *TestModule) LoadConfig() error {
	cfg := &Config{}
	if err := bot.ParseEnv(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *TestModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	commands, err := presentation.NewCommands(
		presentation.CommandsConfig{
			DocsURL:      m.config.DocsURL,
			AdminRoleIDs: m.config.AdminRoleIDs,
		},
		presentation.NewPingHandler(),
		presentation.NewAdminHandler(),
	)
	if err != nil {
		return err
	}

	m.commands = commands
	m.pongHandler = presentation.NewPongHandler()
	return nil
}

// Shutdown cleans up module resources.
func (m *TestModule) Shutdown() error {
	return nil
}
