package memory

import (
	"context"
	"fmt"
	"sync"

	"sunday-league/internal/domain/game"
)

type GameRepository struct {
	mu      sync.RWMutex
	games   []game.ScheduledGame
	signups []game.Signup
}

func NewGameRepository(games []game.ScheduledGame, signups []game.Signup) *GameRepository {
	return &GameRepository{
		games:   append([]game.ScheduledGame(nil), games...),
		signups: append([]game.Signup(nil), signups...),
	}
}

func (r *GameRepository) ListGames(_ context.Context) ([]game.ScheduledGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.ScheduledGame, 0, len(r.games))
	out = append(out, r.games...)
	return out, nil
}

func (r *GameRepository) GetGame(_ context.Context, gameID string) (game.ScheduledGame, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.games {
		if item.ID == gameID {
			return item, true, nil
		}
	}
	return game.ScheduledGame{}, false, nil
}

func (r *GameRepository) InsertGame(_ context.Context, item game.ScheduledGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = append(r.games, item)
	return nil
}

func (r *GameRepository) ListSignups(_ context.Context) ([]game.Signup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Signup, 0, len(r.signups))
	out = append(out, r.signups...)
	return out, nil
}

func (r *GameRepository) ListSignupsByGame(_ context.Context, gameID string) ([]game.Signup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Signup, 0, len(r.signups))
	for _, item := range r.signups {
		if item.GameID == gameID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *GameRepository) InsertSignup(_ context.Context, item game.Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.signups {
		if existing.GameID == item.GameID && existing.ParticipantID == item.ParticipantID {
			return fmt.Errorf("%w: game=%s participant=%s", game.ErrSignupExists, item.GameID, item.ParticipantID)
		}
	}
	r.signups = append(r.signups, item)
	return nil
}

func (r *GameRepository) DeleteSignup(_ context.Context, gameID, participantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, item := range r.signups {
		if item.GameID == gameID && item.ParticipantID == participantID {
			r.signups = append(r.signups[:idx], r.signups[idx+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: game=%s participant=%s", game.ErrSignupNotFound, gameID, participantID)
}

func (r *GameRepository) SetLastMinuteDropout(_ context.Context, gameID, participantID string, dropout bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, item := range r.signups {
		if item.GameID == gameID && item.ParticipantID == participantID {
			r.signups[idx].LastMinuteDropout = dropout
			return nil
		}
	}
	return fmt.Errorf("%w: game=%s participant=%s", game.ErrSignupNotFound, gameID, participantID)
}
