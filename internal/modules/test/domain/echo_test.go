package domain

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewEcho(t *testing.T) {
	echo, err := NewEcho("  hello  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if echo.Text != "hello" {
		t.Errorf("expected text %q, got %q", "hello", echo.Text)
	}
}

func TestNewEcho_Empty(t *testing.T) {
	if _, err := NewEcho("   "); !errors.Is(err, ErrEmptyEcho) {
		t.Errorf("expected ErrEmptyEcho, got %v", err)
	}
}

func TestNewEcho_DefusesMassMentions(t *testing.T) {
	echo, err := NewEcho("hi @everyone and @here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(echo.Text, "@everyone") || strings.Contains(echo.Text, "@here") {
		t.Errorf("expected mass mentions to be defused, got %q", echo.Text)
	}
}

func TestNewEcho_Truncates(t *testing.T) {
	echo, err := NewEcho(strings.Repeat("é", MaxEchoLength+10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := utf8.RuneCountInString(echo.Text); n != MaxEchoLength {
		t.Errorf("expected %d runes, got %d", MaxEchoLength, n)
	}
}
