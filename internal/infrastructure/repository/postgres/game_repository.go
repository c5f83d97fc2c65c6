package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"sunday-league/internal/domain/game"
	qb "sunday-league/internal/platform/querybuilder"
)

type gameTableModel struct {
	ID          string    `db:"id"`
	ScheduledAt time.Time `db:"scheduled_at"`
	PitchSize   string    `db:"pitch_size"`
	Location    string    `db:"location"`
}

type signupTableModel struct {
	ID                string    `db:"id"`
	GameID            string    `db:"game_id"`
	ParticipantID     string    `db:"participant_id"`
	SignedUpAt        time.Time `db:"signed_up_at"`
	LastMinuteDropout bool      `db:"last_minute_dropout"`
}

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListGames(ctx context.Context) ([]game.ScheduledGame, error) {
	query, args, err := qb.Select("id", "scheduled_at", "pitch_size", "location").
		From("games").
		OrderBy("scheduled_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.ScheduledGame, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) GetGame(ctx context.Context, gameID string) (game.ScheduledGame, bool, error) {
	query, args, err := qb.Select("id", "scheduled_at", "pitch_size", "location").
		From("games").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.ScheduledGame{}, false, fmt.Errorf("build select game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.ScheduledGame{}, false, nil
		}
		return game.ScheduledGame{}, false, fmt.Errorf("select game: %w", err)
	}
	return gameFromRow(row), true, nil
}

func (r *GameRepository) InsertGame(ctx context.Context, item game.ScheduledGame) error {
	query, args, err := qb.InsertInto("games").
		Columns("id", "scheduled_at", "pitch_size", "location").
		Values(item.ID, item.ScheduledAt, string(item.PitchSize), item.Location).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func (r *GameRepository) ListSignups(ctx context.Context) ([]game.Signup, error) {
	return r.listSignups(ctx, nil)
}

func (r *GameRepository) ListSignupsByGame(ctx context.Context, gameID string) ([]game.Signup, error) {
	return r.listSignups(ctx, []qb.Condition{qb.Eq("game_id", gameID)})
}

func (r *GameRepository) listSignups(ctx context.Context, conditions []qb.Condition) ([]game.Signup, error) {
	builder := qb.Select("id", "game_id", "participant_id", "signed_up_at", "last_minute_dropout").
		From("signups").
		OrderBy("signed_up_at", "id")
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select signups query: %w", err)
	}

	var rows []signupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select signups: %w", err)
	}

	out := make([]game.Signup, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Signup{
			ID:                row.ID,
			GameID:            row.GameID,
			ParticipantID:     row.ParticipantID,
			SignedUpAt:        row.SignedUpAt,
			LastMinuteDropout: row.LastMinuteDropout,
		})
	}
	return out, nil
}

func (r *GameRepository) InsertSignup(ctx context.Context, item game.Signup) error {
	query, args, err := qb.InsertInto("signups").
		Columns("id", "game_id", "participant_id", "signed_up_at", "last_minute_dropout").
		Values(item.ID, item.GameID, item.ParticipantID, item.SignedUpAt, item.LastMinuteDropout).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert signup query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: game=%s participant=%s", game.ErrSignupExists, item.GameID, item.ParticipantID)
		}
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

func (r *GameRepository) DeleteSignup(ctx context.Context, gameID, participantID string) error {
	query, args, err := qb.DeleteFrom("signups").
		Where(qb.Eq("game_id", gameID), qb.Eq("participant_id", participantID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete signup query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete signup: %w", err)
	}
	return signupRowAffected(result, gameID, participantID)
}

func (r *GameRepository) SetLastMinuteDropout(ctx context.Context, gameID, participantID string, dropout bool) error {
	query, args, err := qb.Update("signups").
		Set("last_minute_dropout", dropout).
		Where(qb.Eq("game_id", gameID), qb.Eq("participant_id", participantID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update signup query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update signup dropout: %w", err)
	}
	return signupRowAffected(result, gameID, participantID)
}

func signupRowAffected(result sql.Result, gameID, participantID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("signup rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: game=%s participant=%s", game.ErrSignupNotFound, gameID, participantID)
	}
	return nil
}

func gameFromRow(row gameTableModel) game.ScheduledGame {
	return game.ScheduledGame{
		ID:          row.ID,
		ScheduledAt: row.ScheduledAt,
		PitchSize:   game.PitchSize(row.PitchSize),
		Location:    row.Location,
	}
}
