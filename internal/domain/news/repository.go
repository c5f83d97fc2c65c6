package news

import "context"

// Repository describes news persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Post, error)
	Insert(ctx context.Context, item Post) error
}
