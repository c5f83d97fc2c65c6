package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sunday-league/internal/domain/match"
	qb "sunday-league/internal/platform/querybuilder"
)

type matchTableModel struct {
	ID        string         `db:"id"`
	TeamA     pq.StringArray `db:"team_a"`
	TeamB     pq.StringArray `db:"team_b"`
	GoalsA    int            `db:"goals_a"`
	GoalsB    int            `db:"goals_b"`
	MVPPlayer string         `db:"mvp_player"`
	PlayedAt  time.Time      `db:"played_at"`
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	query, args, err := qb.Select("id", "team_a", "team_b", "goals_a", "goals_b", "mvp_player", "played_at").
		From("matches").
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Record{
			ID:        row.ID,
			TeamA:     append([]string(nil), row.TeamA...),
			TeamB:     append([]string(nil), row.TeamB...),
			GoalsA:    row.GoalsA,
			GoalsB:    row.GoalsB,
			MVPPlayer: row.MVPPlayer,
			PlayedAt:  row.PlayedAt,
		})
	}
	return out, nil
}

func (r *MatchRepository) Insert(ctx context.Context, record match.Record) error {
	query, args, err := qb.InsertInto("matches").
		Columns("id", "team_a", "team_b", "goals_a", "goals_b", "mvp_player", "played_at").
		Values(
			record.ID,
			pq.StringArray(record.TeamA),
			pq.StringArray(record.TeamB),
			record.GoalsA,
			record.GoalsB,
			record.MVPPlayer,
			record.PlayedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}
