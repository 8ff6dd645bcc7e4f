package repository

import (
	"errors"
	"fmt"
)

// Domain-level errors I prefer to bubble up from roster store implementations.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("duplicate team name")
	ErrInvalidTeamSize = errors.New("invalid team size")
)

// DuplicateNameError is returned when a team name collides with an existing team
// or carries no visible characters. It unwraps to ErrDuplicateName.
type DuplicateNameError struct {
	Name  string
	Empty bool
}

func (e *DuplicateNameError) Error() string {
	if e.Empty {
		return "team name must not be empty"
	}
	return fmt.Sprintf("team %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }
