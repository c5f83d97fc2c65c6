package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sunday-league/internal/domain/profile"
	qb "sunday-league/internal/platform/querybuilder"
)

type profileTableModel struct {
	PlayerID       string         `db:"player_id"`
	FavoriteClub   string         `db:"favorite_club"`
	Pace           int            `db:"pace"`
	Shooting       int            `db:"shooting"`
	Passing        int            `db:"passing"`
	Dribbling      int            `db:"dribbling"`
	Defending      int            `db:"defending"`
	Physical       int            `db:"physical"`
	SignatureMoves pq.StringArray `db:"signature_moves"`
}

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByPlayer(ctx context.Context, playerID string) (profile.Profile, bool, error) {
	query, args, err := qb.Select(
		"player_id", "favorite_club",
		"pace", "shooting", "passing", "dribbling", "defending", "physical",
		"signature_moves",
	).
		From("profiles").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build select profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("select profile: %w", err)
	}

	return profile.Profile{
		PlayerID:     row.PlayerID,
		FavoriteClub: row.FavoriteClub,
		Skills: profile.SkillRatings{
			Pace:      row.Pace,
			Shooting:  row.Shooting,
			Passing:   row.Passing,
			Dribbling: row.Dribbling,
			Defending: row.Defending,
			Physical:  row.Physical,
		},
		SignatureMoves: []string(row.SignatureMoves),
	}, true, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, item profile.Profile) error {
	query, args, err := qb.InsertInto("profiles").
		Columns(
			"player_id", "favorite_club",
			"pace", "shooting", "passing", "dribbling", "defending", "physical",
			"signature_moves",
		).
		Values(
			item.PlayerID, item.FavoriteClub,
			item.Skills.Pace, item.Skills.Shooting, item.Skills.Passing,
			item.Skills.Dribbling, item.Skills.Defending, item.Skills.Physical,
			pq.StringArray(item.SignatureMoves),
		).
		Suffix(`ON CONFLICT (player_id) DO UPDATE SET
			favorite_club = EXCLUDED.favorite_club,
			pace = EXCLUDED.pace,
			shooting = EXCLUDED.shooting,
			passing = EXCLUDED.passing,
			dribbling = EXCLUDED.dribbling,
			defending = EXCLUDED.defending,
			physical = EXCLUDED.physical,
			signature_moves = EXCLUDED.signature_moves`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
