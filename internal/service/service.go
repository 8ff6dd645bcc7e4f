// Package service holds business logic orchestration across the roster store, the view coordinator and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrPoolNotReady blocks team building while the initial pool fetch is pending or has failed.
var ErrPoolNotReady = errors.New("player pool is not ready")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines team lifecycle and membership use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	RenameTeam(ctx context.Context, oldName, newName string) error
	DeleteTeam(ctx context.Context, name string) error
	GetTeam(ctx context.Context, name string) (model.TeamRoster, error)
	ListTeams(ctx context.Context) ([]model.TeamSummary, error)
	AvailablePlayers(ctx context.Context, teamName string) ([]model.Player, error)
	AddPlayer(ctx context.Context, teamName string, playerID int64) (bool, error)
	RemovePlayer(ctx context.Context, teamName string, playerID int64) (bool, error)
	MaxTeamSize(ctx context.Context) (int, error)
	SetMaxTeamSize(ctx context.Context, size int) error
}

// PlayerService defines pool intake and lookup use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, in CreatePlayerInput) (model.Player, error)
	ImportPlayers(ctx context.Context, r io.Reader) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, error)
	ListPool(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error)
}

// PoolService drives the one asynchronous operation: fetching the initial pool.
type PoolService interface {
	Load(ctx context.Context) error
	Retry(ctx context.Context) error
	State(ctx context.Context) (model.PoolState, error)
	Ping(ctx context.Context) error
}

// ViewService exposes the screen / active team / viewed team state machine.
type ViewService interface {
	State(ctx context.Context) (model.ViewState, error)
	Navigate(ctx context.Context, screen model.Screen) (model.ViewState, error)
	SetActiveTeam(ctx context.Context, name string) (model.ViewState, error)
	ViewTeam(ctx context.Context, name string) (model.ViewState, error)
}
