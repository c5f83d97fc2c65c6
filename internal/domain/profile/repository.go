package profile

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	GetByPlayer(ctx context.Context, playerID string) (Profile, bool, error)
	Upsert(ctx context.Context, item Profile) error
}
