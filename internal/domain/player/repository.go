package player

import "context"

// Repository describes roster persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	UpdateAvatarURL(ctx context.Context, playerID, avatarURL string) error
}
