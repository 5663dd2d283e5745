package bot

import (
	"testing"

	"github.com/sglre6355/slashkit/internal/command"
)

// stubModule is a test double for Module
type stubModule struct {
	name          string
	commands      []command.Node
	eventHandlers []EventHandler
	initErr       error
	shutErr       error
}

func (m *stubModule) Name() string                       { return m.name }
func (m *stubModule) Commands() []command.Node           { return m.commands }
func (m *stubModule) EventHandlers() []EventHandler      { return m.eventHandlers }
func (m *stubModule) Init(deps ModuleDependencies) error { return m.initErr }
func (m *stubModule) Shutdown() error                    { return m.shutErr }

func TestRegistry_Register(t *testing.T) {
	// Use a fresh registry for testing
	reg := NewModuleRegistry()

	mod := &stubModule{name: "test-module"}
	if err := reg.Register(mod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	modules := reg.Modules()
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}

	if modules[0].Name() != "test-module" {
		t.Errorf("expected module name %q, got %q", "test-module", modules[0].Name())
	}
}

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	reg := NewModuleRegistry()

	reg.Register(&stubModule{name: "module-1"})
	reg.Register(&stubModule{name: "module-2"})

	modules := reg.Modules()
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].Name() != "module-1" || modules[1].Name() != "module-2" {
		t.Errorf("expected registration order, got %q, %q", modules[0].Name(), modules[1].Name())
	}
}

func TestRegistry_ModulesReturnsSnapshot(t *testing.T) {
	reg := NewModuleRegistry()

	mod1 := &stubModule{name: "module-1"}
	reg.Register(mod1)

	modules := reg.Modules()

	// Register another module after getting snapshot
	mod2 := &stubModule{name: "module-2"}
	reg.Register(mod2)

	// Original snapshot should not be affected
	if len(modules) != 1 {
		t.Errorf("expected snapshot to have 1 module, got %d", len(modules))
	}
}

func TestGlobalRegistry(t *testing.T) {
	// Clear global registry before test
	ResetGlobalRegistry()

	mod := &stubModule{name: "global-test"}
	Register(mod)

	modules := Modules()
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}

	if modules[0].Name() != "global-test" {
		t.Errorf("expected module name %q, got %q", "global-test", modules[0].Name())
	}

	// Clean up
	ResetGlobalRegistry()
}

func TestRegistry_RejectsDuplicateName(t *testing.T) {
	reg := NewModuleRegistry()

	if err := reg.Register(&stubModule{name: "music"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Register(&stubModule{name: "music"}); err == nil {
		t.Error("expected error for duplicate module name, got nil")
	}
	if err := reg.Register(nil); err == nil {
		t.Error("expected error for nil module, got nil")
	}

	if names := reg.Names(); len(names) != 1 || names[0] != "music" {
		t.Errorf("expected [music], got %v", names)
	}
}

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	ResetGlobalRegistry()
	defer ResetGlobalRegistry()

	Register(&stubModule{name: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate global registration")
		}
	}()
	Register(&stubModule{name: "dup"})
}
