package match

import "context"

// Repository describes match-log persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, record Record) error
}
