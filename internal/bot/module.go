package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/command"
)

// EventHandler is a generic handler for any Discord event.
// It should be a function matching one of discordgo's handler signatures,
// e.g., func(s *discordgo.Session, m *discordgo.MessageCreate)
type EventHandler any

// ModuleDependencies provides dependencies that modules may need during initialization.
type ModuleDependencies struct {
	// Session is nil when commands are only collected, e.g. to print the schema.
	Session *discordgo.Session
	Config  *Config
}

// Module defines the interface that all bot modules must implement.
// A module provides commands to the handler in place of directory scanning.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Commands returns the top-level commands and command groups this module
	// provides, in deployment order. Called after Init.
	Commands() []command.Node

	// EventHandlers returns event handlers for this module.
	// Each handler should match a discordgo handler signature.
	EventHandlers() []EventHandler

	// Init initializes the module with the provided dependencies.
	Init(deps ModuleDependencies) error

	// Shutdown gracefully shuts down the module.
	Shutdown() error
}

// ConfigurableModule is an optional interface for modules that need configuration.
// Modules implementing this interface will have LoadConfig called before Init.
type ConfigurableModule interface {
	// LoadConfig loads and validates module-specific configuration.
	// Called before Init() and before Discord connection is established.
	// Should return an error if required configuration is missing or invalid.
	LoadConfig() error
}
