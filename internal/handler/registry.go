package handler

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/slashkit/internal/command"
)

// Registry indexes registered top-level commands, the components their
// subtrees own and components registered on their own. Entries point into the
// declared trees, nothing is copied.
type Registry struct {
	mu          sync.RWMutex
	nodes       []command.Node
	ownButtons  []*command.FunctionButton
	ownMenus    []*command.SelectMenuRow
	commands    map[string]command.Node
	buttons     map[string]*command.FunctionButton
	selectMenus map[string]*command.SelectMenuRow
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes:       make([]command.Node, 0),
		commands:    make(map[string]command.Node),
		buttons:     make(map[string]*command.FunctionButton),
		selectMenus: make(map[string]*command.SelectMenuRow),
	}
}

// Register adds top-level commands and rebuilds every index.
// Registering a name that already exists replaces the earlier entry in place.
func (r *Registry) Register(nodes ...command.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range nodes {
		if n == nil {
			continue
		}
		if i := r.indexOf(n.Name()); i >= 0 {
			slog.Warn("replaced registered command", "command", n.Name())
			r.nodes[i] = n
			continue
		}
		r.nodes = append(r.nodes, n)
	}

	r.rebuild()
}

// RegisterButtons adds buttons that no command declares, e.g. ones attached to
// messages sent outside an interaction reply.
func (r *Registry) RegisterButtons(buttons ...*command.FunctionButton) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range buttons {
		if b != nil {
			r.ownButtons = append(r.ownButtons, b)
		}
	}

	r.rebuild()
}

// RegisterSelectMenus adds select menus that no command declares.
func (r *Registry) RegisterSelectMenus(menus ...*command.SelectMenuRow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range menus {
		if m != nil {
			r.ownMenus = append(r.ownMenus, m)
		}
	}

	r.rebuild()
}

func (r *Registry) indexOf(name string) int {
	for i, n := range r.nodes {
		if n.Name() == name {
			return i
		}
	}
	return -1
}

// rebuild repopulates the lookup maps from the ordered node list, then from the
// standalone components. Later entries win when component ids collide.
func (r *Registry) rebuild() {
	r.commands = make(map[string]command.Node, len(r.nodes))
	r.buttons = make(map[string]*command.FunctionButton)
	r.selectMenus = make(map[string]*command.SelectMenuRow)

	for _, n := range r.nodes {
		r.commands[n.Name()] = n

		for _, row := range n.CommandComponents() {
			switch row := row.(type) {
			case *command.ButtonRow:
				for _, b := range row.FunctionButtons() {
					if _, ok := r.buttons[b.CustomID()]; ok {
						slog.Warn("found duplicate button id", "button", b.CustomID(), "command", n.Name())
					}
					r.buttons[b.CustomID()] = b
				}
			case *command.SelectMenuRow:
				if _, ok := r.selectMenus[row.CustomID()]; ok {
					slog.Warn("found duplicate select menu id", "select_menu", row.CustomID(), "command", n.Name())
				}
				r.selectMenus[row.CustomID()] = row
			}
		}
	}

	for _, b := range r.ownButtons {
		if _, ok := r.buttons[b.CustomID()]; ok {
			slog.Warn("found duplicate button id", "button", b.CustomID())
		}
		r.buttons[b.CustomID()] = b
	}
	for _, m := range r.ownMenus {
		if _, ok := r.selectMenus[m.CustomID()]; ok {
			slog.Warn("found duplicate select menu id", "select_menu", m.CustomID())
		}
		r.selectMenus[m.CustomID()] = m
	}
}

// Command looks up a top-level command by name.
func (r *Registry) Command(name string) (command.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.commands[strings.ToLower(name)]
	return n, ok
}

// Button looks up a function button by custom id.
func (r *Registry) Button(customID string) (*command.FunctionButton, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buttons[strings.ToLower(customID)]
	return b, ok
}

// SelectMenu looks up a select menu by custom id.
func (r *Registry) SelectMenu(customID string) (*command.SelectMenuRow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.selectMenus[strings.ToLower(customID)]
	return m, ok
}

// Commands returns a snapshot of the registered commands in registration order.
func (r *Registry) Commands() []command.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]command.Node, len(r.nodes))
	copy(result, r.nodes)
	return result
}

// ApplicationCommands projects every registered command to its deployment
// schema, in registration order.
func (r *Registry) ApplicationCommands() []*discordgo.ApplicationCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*discordgo.ApplicationCommand, len(r.nodes))
	for i, n := range r.nodes {
		result[i] = n.ApplicationCommand()
	}
	return result
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
