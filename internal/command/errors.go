package command

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every declaration validation failure.
var ErrInvalid = errors.New("invalid declaration")

// ErrSubcommandNotFound is wrapped when a CommandGroup cannot resolve the addressed child.
var ErrSubcommandNotFound = errors.New("sub-command not found")

// SubcommandError reports the child name a CommandGroup failed to resolve.
type SubcommandError struct {
	Group string
	Name  string
}

// Error implements error.
func (e *SubcommandError) Error() string {
	return fmt.Sprintf("%s: %q in group %q", ErrSubcommandNotFound, e.Name, e.Group)
}

// Unwrap returns ErrSubcommandNotFound.
func (e *SubcommandError) Unwrap() error {
	return ErrSubcommandNotFound
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
