package memory

import (
	"context"
	"sync"

	"sunday-league/internal/domain/news"
)

type NewsRepository struct {
	mu    sync.RWMutex
	posts []news.Post
}

func NewNewsRepository(posts []news.Post) *NewsRepository {
	return &NewsRepository{posts: append([]news.Post(nil), posts...)}
}

func (r *NewsRepository) List(_ context.Context) ([]news.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Post, 0, len(r.posts))
	out = append(out, r.posts...)
	return out, nil
}

func (r *NewsRepository) Insert(_ context.Context, item news.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, item)
	return nil
}
