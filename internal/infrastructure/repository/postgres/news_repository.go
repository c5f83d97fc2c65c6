package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"sunday-league/internal/domain/news"
	qb "sunday-league/internal/platform/querybuilder"
)

type newsTableModel struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	Author      string    `db:"author"`
	PublishedAt time.Time `db:"published_at"`
}

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Post, error) {
	query, args, err := qb.Select("id", "title", "body", "author", "published_at").
		From("news_posts").
		OrderBy("published_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news posts: %w", err)
	}

	out := make([]news.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, news.Post{
			ID:          row.ID,
			Title:       row.Title,
			Body:        row.Body,
			Author:      row.Author,
			PublishedAt: row.PublishedAt,
		})
	}
	return out, nil
}

func (r *NewsRepository) Insert(ctx context.Context, post news.Post) error {
	query, args, err := qb.InsertInto("news_posts").
		Columns("id", "title", "body", "author", "published_at").
		Values(post.ID, post.Title, post.Body, post.Author, post.PublishedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert news query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert news post: %w", err)
	}
	return nil
}
