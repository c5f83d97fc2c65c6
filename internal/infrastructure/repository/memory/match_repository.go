package memory

import (
	"context"
	"sync"

	"sunday-league/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	records []match.Record
}

func NewMatchRepository(records []match.Record) *MatchRepository {
	return &MatchRepository{records: append([]match.Record(nil), records...)}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

func (r *MatchRepository) Insert(_ context.Context, record match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	return nil
}
