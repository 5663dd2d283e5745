package command

import (
	"reflect"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	maxButtonsPerRow  = 5
	maxSelectOptions  = 25
	maxPlaceholderLen = 150
)

// ActionRow is either a ButtonRow or a SelectMenuRow.
type ActionRow interface {
	// MessageComponent renders the row.
	MessageComponent() discordgo.MessageComponent

	actionRow()
}

// ButtonRow groups up to 5 buttons.
type ButtonRow struct {
	buttons []Button
}

// NewButtonRow creates a ButtonRow. Nil entries are skipped, typed nil
// pointers are rejected.
func NewButtonRow(buttons ...Button) (*ButtonRow, error) {
	present := make([]Button, 0, len(buttons))
	for i, b := range buttons {
		if b == nil {
			continue
		}
		if v := reflect.ValueOf(b); v.Kind() == reflect.Pointer && v.IsNil() {
			return nil, invalidf("button row: button %d is a nil %T", i, b)
		}
		present = append(present, b)
	}

	switch {
	case len(present) == 0:
		return nil, invalidf("button row needs at least one button")
	case len(present) > maxButtonsPerRow:
		return nil, invalidf("button row holds at most %d buttons, got %d", maxButtonsPerRow, len(present))
	}

	return &ButtonRow{buttons: present}, nil
}

// MustButtonRow is like NewButtonRow but panics on error.
func MustButtonRow(buttons ...Button) *ButtonRow {
	r, err := NewButtonRow(buttons...)
	if err != nil {
		panic(err)
	}
	return r
}

// Buttons returns the buttons of the row in declaration order.
func (r *ButtonRow) Buttons() []Button {
	out := make([]Button, len(r.buttons))
	copy(out, r.buttons)
	return out
}

// FunctionButtons returns the clickable buttons of the row.
func (r *ButtonRow) FunctionButtons() []*FunctionButton {
	var out []*FunctionButton
	for _, b := range r.buttons {
		if fb, ok := b.(*FunctionButton); ok {
			out = append(out, fb)
		}
	}
	return out
}

// MessageComponent renders the row.
func (r *ButtonRow) MessageComponent() discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(r.buttons))
	for _, b := range r.buttons {
		components = append(components, b.MessageComponent())
	}
	return discordgo.ActionsRow{Components: components}
}

func (*ButtonRow) actionRow() {}

// SelectMenuConfig declares a SelectMenuRow.
type SelectMenuConfig struct {
	// CustomID is lower-cased and used as the registry key. Up to 100 characters.
	CustomID string
	// MenuType defaults to discordgo.StringSelectMenu.
	MenuType    discordgo.SelectMenuType
	Placeholder string
	// Options are required for string menus and forbidden for the others.
	Options []discordgo.SelectMenuOption
	// ChannelTypes only applies to channel menus.
	ChannelTypes []discordgo.ChannelType
	Disabled     bool
	MinValues    *int
	MaxValues    int
	Run          HandlerFunc
}

// SelectMenuRow is an action row holding exactly one select menu.
type SelectMenuRow struct {
	customID     string
	menuType     discordgo.SelectMenuType
	placeholder  string
	options      []discordgo.SelectMenuOption
	channelTypes []discordgo.ChannelType
	disabled     bool
	minValues    *int
	maxValues    int
	run          HandlerFunc
}

// NewSelectMenuRow validates cfg and creates a SelectMenuRow.
func NewSelectMenuRow(cfg SelectMenuConfig) (*SelectMenuRow, error) {
	id, err := normalizeCustomID(cfg.CustomID)
	if err != nil {
		return nil, err
	}

	menuType := cfg.MenuType
	if menuType == 0 {
		menuType = discordgo.StringSelectMenu
	}

	switch menuType {
	case discordgo.StringSelectMenu:
		if len(cfg.Options) == 0 || len(cfg.Options) > maxSelectOptions {
			return nil, invalidf("select menu %q needs 1 to %d options, got %d", id, maxSelectOptions, len(cfg.Options))
		}
	case discordgo.UserSelectMenu, discordgo.RoleSelectMenu, discordgo.MentionableSelectMenu, discordgo.ChannelSelectMenu:
		if len(cfg.Options) > 0 {
			return nil, invalidf("select menu %q: options are only allowed on string menus", id)
		}
	default:
		return nil, invalidf("select menu %q: unknown menu type %d", id, menuType)
	}
	if len(cfg.ChannelTypes) > 0 && menuType != discordgo.ChannelSelectMenu {
		return nil, invalidf("select menu %q: channel types are only allowed on channel menus", id)
	}
	if utf8.RuneCountInString(cfg.Placeholder) > maxPlaceholderLen {
		return nil, invalidf("select menu %q: placeholder exceeds %d characters", id, maxPlaceholderLen)
	}
	if cfg.MaxValues < 0 || cfg.MaxValues > maxSelectOptions {
		return nil, invalidf("select menu %q: max values must be within 0 and %d", id, maxSelectOptions)
	}
	if cfg.MinValues != nil {
		if *cfg.MinValues < 0 || *cfg.MinValues > maxSelectOptions {
			return nil, invalidf("select menu %q: min values must be within 0 and %d", id, maxSelectOptions)
		}
		if cfg.MaxValues > 0 && *cfg.MinValues > cfg.MaxValues {
			return nil, invalidf("select menu %q: min values exceeds max values", id)
		}
	}
	if cfg.Run == nil {
		return nil, invalidf("select menu %q: missing callback", id)
	}

	return &SelectMenuRow{
		customID:     id,
		menuType:     menuType,
		placeholder:  cfg.Placeholder,
		options:      cfg.Options,
		channelTypes: cfg.ChannelTypes,
		disabled:     cfg.Disabled,
		minValues:    cfg.MinValues,
		maxValues:    cfg.MaxValues,
		run:          cfg.Run,
	}, nil
}

// MustSelectMenuRow is like NewSelectMenuRow but panics on error.
func MustSelectMenuRow(cfg SelectMenuConfig) *SelectMenuRow {
	r, err := NewSelectMenuRow(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// CustomID returns the lower-cased custom id.
func (r *SelectMenuRow) CustomID() string { return r.customID }

// Run invokes the callback.
func (r *SelectMenuRow) Run(ctx *Context) error {
	return r.run(ctx)
}

// MessageComponent renders the row.
func (r *SelectMenuRow) MessageComponent() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:     r.menuType,
				CustomID:     r.customID,
				Placeholder:  r.placeholder,
				MinValues:    r.minValues,
				MaxValues:    r.maxValues,
				Options:      r.options,
				Disabled:     r.disabled,
				ChannelTypes: r.channelTypes,
			},
		},
	}
}

func (*SelectMenuRow) actionRow() {}
