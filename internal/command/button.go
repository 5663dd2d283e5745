package command

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	maxCustomIDLength = 100
	maxLabelLength    = 80

	// DisabledButtonID is the placeholder custom id of a non-link DisabledButton.
	DisabledButtonID = "_"
	// DisabledButtonURL is the placeholder url of a link-styled DisabledButton.
	DisabledButtonURL = "https://example.com"
)

// Button is one of FunctionButton, LinkButton or DisabledButton.
type Button interface {
	// MessageComponent renders the button.
	MessageComponent() discordgo.Button

	button()
}

// FunctionButtonConfig declares a FunctionButton.
type FunctionButtonConfig struct {
	// CustomID is lower-cased and used as the registry key. Up to 100 characters.
	CustomID string
	// Style defaults to discordgo.PrimaryButton. Link style is not allowed.
	Style discordgo.ButtonStyle
	Label string
	Emoji *discordgo.ComponentEmoji
	Run   HandlerFunc
}

// FunctionButton runs a callback when clicked.
type FunctionButton struct {
	customID string
	style    discordgo.ButtonStyle
	label    string
	emoji    *discordgo.ComponentEmoji
	run      HandlerFunc
}

// NewFunctionButton validates cfg and creates a FunctionButton.
func NewFunctionButton(cfg FunctionButtonConfig) (*FunctionButton, error) {
	id, err := normalizeCustomID(cfg.CustomID)
	if err != nil {
		return nil, err
	}
	if err := validateLabel(cfg.Label, cfg.Emoji); err != nil {
		return nil, invalidf("button %q: %v", id, err)
	}

	style := cfg.Style
	switch style {
	case 0:
		style = discordgo.PrimaryButton
	case discordgo.PrimaryButton, discordgo.SecondaryButton, discordgo.SuccessButton, discordgo.DangerButton:
	default:
		return nil, invalidf("button %q: style %d cannot run a callback", id, style)
	}
	if cfg.Run == nil {
		return nil, invalidf("button %q: missing callback", id)
	}

	return &FunctionButton{
		customID: id,
		style:    style,
		label:    cfg.Label,
		emoji:    cfg.Emoji,
		run:      cfg.Run,
	}, nil
}

// MustFunctionButton is like NewFunctionButton but panics on error.
func MustFunctionButton(cfg FunctionButtonConfig) *FunctionButton {
	b, err := NewFunctionButton(cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// CustomID returns the lower-cased custom id.
func (b *FunctionButton) CustomID() string { return b.customID }

// Run invokes the callback.
func (b *FunctionButton) Run(ctx *Context) error {
	return b.run(ctx)
}

// MessageComponent renders the button.
func (b *FunctionButton) MessageComponent() discordgo.Button {
	return discordgo.Button{
		Style:    b.style,
		Label:    b.label,
		Emoji:    b.emoji,
		CustomID: b.customID,
	}
}

func (*FunctionButton) button() {}

// LinkButtonConfig declares a LinkButton.
type LinkButtonConfig struct {
	URL   string
	Label string
	Emoji *discordgo.ComponentEmoji
}

// LinkButton navigates to a URL when clicked.
type LinkButton struct {
	url   string
	label string
	emoji *discordgo.ComponentEmoji
}

// NewLinkButton validates cfg and creates a LinkButton.
func NewLinkButton(cfg LinkButtonConfig) (*LinkButton, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, invalidf("link button: invalid url %q", cfg.URL)
	}
	if err := validateLabel(cfg.Label, cfg.Emoji); err != nil {
		return nil, invalidf("link button %q: %v", cfg.URL, err)
	}

	return &LinkButton{
		url:   cfg.URL,
		label: cfg.Label,
		emoji: cfg.Emoji,
	}, nil
}

// MustLinkButton is like NewLinkButton but panics on error.
func MustLinkButton(cfg LinkButtonConfig) *LinkButton {
	b, err := NewLinkButton(cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// URL returns the target url.
func (b *LinkButton) URL() string { return b.url }

// MessageComponent renders the button.
func (b *LinkButton) MessageComponent() discordgo.Button {
	return discordgo.Button{
		Style: discordgo.LinkButton,
		Label: b.label,
		Emoji: b.emoji,
		URL:   b.url,
	}
}

func (*LinkButton) button() {}

// DisabledButtonConfig declares a DisabledButton.
type DisabledButtonConfig struct {
	// Style defaults to discordgo.SecondaryButton.
	Style discordgo.ButtonStyle
	Label string
	Emoji *discordgo.ComponentEmoji
}

// DisabledButton cannot be clicked. It carries a placeholder id or url so it
// still satisfies the button schema.
type DisabledButton struct {
	style    discordgo.ButtonStyle
	label    string
	emoji    *discordgo.ComponentEmoji
	customID string
	url      string
}

// NewDisabledButton validates cfg and creates a DisabledButton.
func NewDisabledButton(cfg DisabledButtonConfig) (*DisabledButton, error) {
	if err := validateLabel(cfg.Label, cfg.Emoji); err != nil {
		return nil, invalidf("disabled button: %v", err)
	}

	b := &DisabledButton{
		style: cfg.Style,
		label: cfg.Label,
		emoji: cfg.Emoji,
	}
	if b.style == 0 {
		b.style = discordgo.SecondaryButton
	}
	if b.style == discordgo.LinkButton {
		b.url = DisabledButtonURL
	} else {
		b.customID = DisabledButtonID
	}
	return b, nil
}

// MustDisabledButton is like NewDisabledButton but panics on error.
func MustDisabledButton(cfg DisabledButtonConfig) *DisabledButton {
	b, err := NewDisabledButton(cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// MessageComponent renders the button.
func (b *DisabledButton) MessageComponent() discordgo.Button {
	return discordgo.Button{
		Style:    b.style,
		Label:    b.label,
		Emoji:    b.emoji,
		Disabled: true,
		CustomID: b.customID,
		URL:      b.url,
	}
}

func (*DisabledButton) button() {}

func normalizeCustomID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	switch {
	case id == "":
		return "", invalidf("missing custom id")
	case utf8.RuneCountInString(id) > maxCustomIDLength:
		return "", invalidf("custom id %q exceeds %d characters", id, maxCustomIDLength)
	}
	return id, nil
}

func validateLabel(label string, emoji *discordgo.ComponentEmoji) error {
	hasEmoji := emoji != nil && (emoji.Name != "" || emoji.ID != "")
	switch {
	case label == "" && !hasEmoji:
		return errors.New("needs a label or an emoji")
	case utf8.RuneCountInString(label) > maxLabelLength:
		return fmt.Errorf("label exceeds %d characters", maxLabelLength)
	}
	return nil
}
