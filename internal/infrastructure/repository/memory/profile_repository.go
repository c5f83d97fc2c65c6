package memory

import (
	"context"
	"sync"

	"sunday-league/internal/domain/profile"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	byPlayer map[string]profile.Profile
}

func NewProfileRepository(profiles []profile.Profile) *ProfileRepository {
	byPlayer := make(map[string]profile.Profile, len(profiles))
	for _, item := range profiles {
		byPlayer[item.PlayerID] = item
	}
	return &ProfileRepository{byPlayer: byPlayer}
}

func (r *ProfileRepository) GetByPlayer(_ context.Context, playerID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byPlayer[playerID]
	return item, ok, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, item profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPlayer[item.PlayerID] = item
	return nil
}
