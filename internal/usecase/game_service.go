package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunday-league/internal/domain/game"
	idgen "sunday-league/internal/platform/id"
	"sunday-league/internal/platform/logging"
)

// GameNotifier announces newly scheduled games to an external channel.
type GameNotifier interface {
	GameScheduled(ctx context.Context, item game.ScheduledGame) error
}

type GameService struct {
	gameRepo game.Repository
	idGen    idgen.Generator
	notifier GameNotifier
	logger   *logging.Logger
	now      func() time.Time
}

func NewGameService(gameRepo game.Repository, idGen idgen.Generator, notifier GameNotifier, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{
		gameRepo: gameRepo,
		idGen:    idGen,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

type ScheduleGameInput struct {
	ScheduledAt time.Time
	PitchSize   game.PitchSize
	Location    string
}

// SignupSheetRow is one signup with its derived position and whether the
// slot carries a cost share.
type SignupSheetRow struct {
	game.Signup
	Position  int
	OwesShare bool
}

func (s *GameService) ListGames(ctx context.Context) ([]game.ScheduledGame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	games, err := s.gameRepo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (s *GameService) Schedule(ctx context.Context, input ScheduleGameInput) (game.ScheduledGame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Schedule")
	defer span.End()

	gameID, err := s.idGen.NewID()
	if err != nil {
		return game.ScheduledGame{}, fmt.Errorf("generate game id: %w", err)
	}

	item := game.ScheduledGame{
		ID:          gameID,
		ScheduledAt: input.ScheduledAt,
		PitchSize:   input.PitchSize,
		Location:    input.Location,
	}
	if err := item.Validate(); err != nil {
		return game.ScheduledGame{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gameRepo.InsertGame(ctx, item); err != nil {
		return game.ScheduledGame{}, fmt.Errorf("insert game: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.GameScheduled(ctx, item); err != nil {
			s.logger.WarnContext(ctx, "game notification failed", "game_id", item.ID, "error", err)
		}
	}

	return item, nil
}

// SignUp registers a participant for a game. The (game, participant) pair
// is unique; the signup position falls out of arrival order and is never
// stored.
func (s *GameService) SignUp(ctx context.Context, gameID, participantID string) (game.Signup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SignUp")
	defer span.End()

	if gameID == "" || participantID == "" {
		return game.Signup{}, fmt.Errorf("%w: game id and participant id are required", ErrInvalidInput)
	}

	if _, exists, err := s.gameRepo.GetGame(ctx, gameID); err != nil {
		return game.Signup{}, fmt.Errorf("get game: %w", err)
	} else if !exists {
		return game.Signup{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	existing, err := s.gameRepo.ListSignupsByGame(ctx, gameID)
	if err != nil {
		return game.Signup{}, fmt.Errorf("list signups: %w", err)
	}
	for _, item := range existing {
		if item.ParticipantID == participantID {
			return game.Signup{}, fmt.Errorf("%w: game=%s participant=%s", ErrDuplicateSignup, gameID, participantID)
		}
	}

	signupID, err := s.idGen.NewID()
	if err != nil {
		return game.Signup{}, fmt.Errorf("generate signup id: %w", err)
	}

	item := game.Signup{
		ID:            signupID,
		GameID:        gameID,
		ParticipantID: participantID,
		SignedUpAt:    s.now().UTC(),
	}
	if err := s.gameRepo.InsertSignup(ctx, item); err != nil {
		// The repository enforces pair uniqueness, so a signup racing
		// past the list check above still surfaces as a duplicate.
		if errors.Is(err, game.ErrSignupExists) {
			return game.Signup{}, fmt.Errorf("%w: game=%s participant=%s", ErrDuplicateSignup, gameID, participantID)
		}
		return game.Signup{}, fmt.Errorf("insert signup: %w", err)
	}
	return item, nil
}

// SignupSheet lists a game's signups in arrival order with positions and
// cost-share flags.
func (s *GameService) SignupSheet(ctx context.Context, gameID string) ([]SignupSheetRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SignupSheet")
	defer span.End()

	item, exists, err := s.gameRepo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	signups, err := s.gameRepo.ListSignupsByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	ordered := game.SignupsByPosition(signups, gameID)
	capacity := item.Capacity()

	out := make([]SignupSheetRow, 0, len(ordered))
	for idx, signup := range ordered {
		out = append(out, SignupSheetRow{
			Signup:    signup,
			Position:  idx + 1,
			OwesShare: game.Owes(idx+1, capacity, signup.LastMinuteDropout),
		})
	}
	return out, nil
}

func (s *GameService) CancelSignup(ctx context.Context, gameID, participantID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CancelSignup")
	defer span.End()

	if gameID == "" || participantID == "" {
		return fmt.Errorf("%w: game id and participant id are required", ErrInvalidInput)
	}
	if err := s.gameRepo.DeleteSignup(ctx, gameID, participantID); err != nil {
		if errors.Is(err, game.ErrSignupNotFound) {
			return fmt.Errorf("%w: game=%s participant=%s", ErrNotFound, gameID, participantID)
		}
		return fmt.Errorf("delete signup: %w", err)
	}
	return nil
}

// MarkLastMinuteDropout flags a signup whose participant bailed too late
// for a replacement; they owe their share regardless of position.
func (s *GameService) MarkLastMinuteDropout(ctx context.Context, gameID, participantID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.MarkLastMinuteDropout")
	defer span.End()

	if gameID == "" || participantID == "" {
		return fmt.Errorf("%w: game id and participant id are required", ErrInvalidInput)
	}
	if err := s.gameRepo.SetLastMinuteDropout(ctx, gameID, participantID, true); err != nil {
		if errors.Is(err, game.ErrSignupNotFound) {
			return fmt.Errorf("%w: game=%s participant=%s", ErrNotFound, gameID, participantID)
		}
		return fmt.Errorf("set last minute dropout: %w", err)
	}
	return nil
}
