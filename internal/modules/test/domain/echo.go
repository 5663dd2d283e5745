package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxEchoLength is the longest text an echo may repeat.
const MaxEchoLength = 2000

// ErrEmptyEcho is returned when there is nothing to echo.
var ErrEmptyEcho = errors.New("nothing to echo")

var massMentions = strings.NewReplacer(
	"@everyone", "@\u200beveryone",
	"@here", "@\u200bhere",
)

// Echo is text repeated back to the channel.
type Echo struct {
	Text string
}

// NewEcho trims text, defuses mass mentions and truncates it to MaxEchoLength runes.
func NewEcho(text string) (*Echo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyEcho
	}

	text = massMentions.Replace(text)
	if utf8.RuneCountInString(text) > MaxEchoLength {
		text = string([]rune(text)[:MaxEchoLength])
	}

	return &Echo{Text: text}, nil
}
