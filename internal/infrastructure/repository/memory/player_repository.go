package memory

import (
	"context"
	"fmt"
	"sync"

	"sunday-league/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	byID    map[string]player.Player
	ordered []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[string]player.Player, len(players))
	ordered := make([]string, 0, len(players))
	for _, item := range players {
		if _, exists := byID[item.ID]; !exists {
			ordered = append(ordered, item.ID)
		}
		byID[item.ID] = item
	}
	return &PlayerRepository{byID: byID, ordered: ordered}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.ordered))
	for _, playerID := range r.ordered {
		out = append(out, r.byID[playerID])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) UpdateAvatarURL(_ context.Context, playerID, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[playerID]
	if !ok {
		return fmt.Errorf("player not found: %s", playerID)
	}
	item.AvatarURL = avatarURL
	r.byID[playerID] = item
	return nil
}
