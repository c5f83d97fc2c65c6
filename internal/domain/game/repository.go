package game

import (
	"context"
	"errors"
)

// ErrSignupNotFound reports that no signup exists for a (game, participant)
// pair. Both repository implementations return it so callers can translate
// the miss uniformly.
var ErrSignupNotFound = errors.New("signup not found")

// ErrSignupExists reports an insert for a (game, participant) pair that is
// already signed up. Repositories enforce the pair's uniqueness themselves,
// so concurrent signups cannot slip past the caller's pre-check.
var ErrSignupExists = errors.New("signup already exists")

// Repository describes scheduling and signup persistence needs from use cases.
type Repository interface {
	ListGames(ctx context.Context) ([]ScheduledGame, error)
	GetGame(ctx context.Context, gameID string) (ScheduledGame, bool, error)
	InsertGame(ctx context.Context, item ScheduledGame) error

	ListSignups(ctx context.Context) ([]Signup, error)
	ListSignupsByGame(ctx context.Context, gameID string) ([]Signup, error)
	InsertSignup(ctx context.Context, item Signup) error
	DeleteSignup(ctx context.Context, gameID, participantID string) error
	SetLastMinuteDropout(ctx context.Context, gameID, participantID string, dropout bool) error
}
