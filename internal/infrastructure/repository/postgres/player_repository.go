package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sunday-league/internal/domain/player"
	qb "sunday-league/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("id", "name", "nickname", "avatar_url").
		From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("id", "name", "nickname", "avatar_url").
		From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) UpdateAvatarURL(ctx context.Context, playerID, avatarURL string) error {
	query, args, err := qb.Update("players").
		Set("avatar_url", avatarURL).
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player avatar query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player avatar: %w", err)
	}
	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Nickname:  row.Nickname,
		AvatarURL: row.AvatarURL,
	}
}
