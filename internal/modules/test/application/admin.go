package application

import (
	"github.com/sglre6355/slashkit/internal/modules/test/domain"
)

// EchoInteractor handles the echo use case.
type EchoInteractor struct{}

// NewEchoInteractor creates a new EchoInteractor.
func NewEchoInteractor() *EchoInteractor {
	return &EchoInteractor{}
}

// Execute returns the text to echo back.
func (e *EchoInteractor) Execute(text string) (string, error) {
	echo, err := domain.NewEcho(text)
	if err != nil {
		return "", err
	}
	return echo.Text, nil
}

// RoleInteractor handles role selection use cases.
type RoleInteractor struct{}

// NewRoleInteractor creates a new RoleInteractor.
func NewRoleInteractor() *RoleInteractor {
	return &RoleInteractor{}
}

// Summarize describes the roles picked in a select menu.
func (r *RoleInteractor) Summarize(values []string) (string, error) {
	selection, err := domain.NewRoleSelection(values)
	if err != nil {
		return "", err
	}
	return selection.Summary(), nil
}
