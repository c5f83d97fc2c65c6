package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"sunday-league/internal/domain/game"
)

const debtReportWorkers = 4

type DebtService struct {
	gameRepo game.Repository
}

func NewDebtService(gameRepo game.Repository) *DebtService {
	return &DebtService{gameRepo: gameRepo}
}

// ParticipantDebt is one row of the pitch-cost ledger.
type ParticipantDebt struct {
	ParticipantID string
	Amount        float64
}

// DebtFor returns how much of the shared pitch cost the participant owes
// across all games, per signup position and dropout flags.
func (s *DebtService) DebtFor(ctx context.Context, participantID string) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DebtService.DebtFor")
	defer span.End()

	if participantID == "" {
		return 0, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	games, signups, err := s.loadLedgerInputs(ctx)
	if err != nil {
		return 0, err
	}

	return game.DebtFor(participantID, games, signups), nil
}

// DebtReport computes every known participant's total, largest debt first.
func (s *DebtService) DebtReport(ctx context.Context) ([]ParticipantDebt, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DebtService.DebtReport")
	defer span.End()

	games, signups, err := s.loadLedgerInputs(ctx)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]string, 0, len(signups))
	seen := make(map[string]struct{}, len(signups))
	for _, item := range signups {
		if _, dup := seen[item.ParticipantID]; dup {
			continue
		}
		seen[item.ParticipantID] = struct{}{}
		participantIDs = append(participantIDs, item.ParticipantID)
	}

	out := make([]ParticipantDebt, len(participantIDs))
	workers := pool.New().WithMaxGoroutines(debtReportWorkers)
	for idx, participantID := range participantIDs {
		idx, participantID := idx, participantID
		workers.Go(func() {
			out[idx] = ParticipantDebt{
				ParticipantID: participantID,
				Amount:        game.DebtFor(participantID, games, signups),
			}
		})
	}
	workers.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})
	return out, nil
}

func (s *DebtService) loadLedgerInputs(ctx context.Context) ([]game.ScheduledGame, []game.Signup, error) {
	games, err := s.gameRepo.ListGames(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list games: %w", err)
	}
	signups, err := s.gameRepo.ListSignups(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list signups: %w", err)
	}
	return games, signups, nil
}
