package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/player"
	"sunday-league/internal/domain/stats"
	"sunday-league/internal/platform/cache"
	idgen "sunday-league/internal/platform/id"
	"sunday-league/internal/platform/logging"
)

const (
	statsCachePrefix    = "stats:"
	leaderboardCacheKey = statsCachePrefix + "leaderboard"
)

// MatchNotifier pushes matchday updates to an external channel. Failures
// are logged, never propagated to the caller recording the match.
type MatchNotifier interface {
	MatchRecorded(ctx context.Context, record match.Record) error
}

type StatsService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	store      *cache.Store
	idGen      idgen.Generator
	notifier   MatchNotifier
	logger     *logging.Logger
	now        func() time.Time
}

func NewStatsService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	store *cache.Store,
	idGen idgen.Generator,
	notifier MatchNotifier,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		store:      store,
		idGen:      idGen,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

type RecordMatchInput struct {
	TeamA     []string
	TeamB     []string
	GoalsA    int
	GoalsB    int
	MVPPlayer string
	PlayedAt  time.Time
}

// Leaderboard returns the ranked standings. The canonical ranking is cached;
// single-key resorts are applied on a copy per request.
func (s *StatsService) Leaderboard(ctx context.Context, key stats.SortKey, descending bool) ([]stats.PlayerStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Leaderboard")
	defer span.End()

	value, err := s.store.GetOrLoad(ctx, leaderboardCacheKey, func(ctx context.Context) (any, error) {
		rows, loadErr := s.loadStandings(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	cached, ok := value.([]stats.PlayerStanding)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected leaderboard cache entry", ErrDependencyUnavailable)
	}

	out := append([]stats.PlayerStanding(nil), cached...)
	// The cached ranking is already descending by points; every other
	// key, and ascending points, needs a resort.
	if key != "" && (key != stats.SortKeyPoints || !descending) {
		stats.SortBy(out, key, descending)
	}
	return out, nil
}

// PlayerStats computes one player's aggregate from the full match log.
// Players declared on the roster but absent from the log get a zero
// aggregate; ids known to neither are not found.
func (s *StatsService) PlayerStats(ctx context.Context, playerID string) (stats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerStats")
	defer span.End()

	if playerID == "" {
		return stats.Aggregate{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, declared, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return stats.Aggregate{}, fmt.Errorf("get player: %w", err)
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return stats.Aggregate{}, fmt.Errorf("list matches: %w", err)
	}

	agg := stats.AggregateMatches(matches, []string{playerID})[playerID]
	if !declared && agg.GamesPlayed() == 0 {
		return stats.Aggregate{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return agg, nil
}

// RecentOutcomes returns the player's latest results, newest first.
func (s *StatsService) RecentOutcomes(ctx context.Context, playerID string, limit int) ([]match.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.RecentOutcomes")
	defer span.End()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		return []match.Outcome{}, nil
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PlayedAt.After(matches[j].PlayedAt)
	})

	out := make([]match.Outcome, 0, limit)
	for _, record := range matches {
		outcome, ok := record.OutcomeFor(playerID)
		if !ok {
			continue
		}
		out = append(out, outcome)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// RecordMatch validates and appends one match to the log, then invalidates
// derived statistics. Notification delivery is best effort.
func (s *StatsService) RecordMatch(ctx context.Context, input RecordMatchInput) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.RecordMatch")
	defer span.End()

	recordID, err := s.idGen.NewID()
	if err != nil {
		return match.Record{}, fmt.Errorf("generate match id: %w", err)
	}

	playedAt := input.PlayedAt
	if playedAt.IsZero() {
		playedAt = s.now().UTC()
	}

	record := match.Record{
		ID:        recordID,
		TeamA:     input.TeamA,
		TeamB:     input.TeamB,
		GoalsA:    input.GoalsA,
		GoalsB:    input.GoalsB,
		MVPPlayer: input.MVPPlayer,
		PlayedAt:  playedAt,
	}
	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Insert(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("insert match: %w", err)
	}
	s.store.DeletePrefix(ctx, statsCachePrefix)
	s.store.DeletePrefix(ctx, badgeCachePrefix)

	if s.notifier != nil {
		if err := s.notifier.MatchRecorded(ctx, record); err != nil {
			s.logger.WarnContext(ctx, "match notification failed", "match_id", record.ID, "error", err)
		}
	}

	return record, nil
}

func (s *StatsService) loadStandings(ctx context.Context) ([]stats.PlayerStanding, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	roster := make([]string, 0, len(players))
	for _, item := range players {
		roster = append(roster, item.ID)
	}
	aggregates := stats.AggregateMatches(matches, roster)

	rows := make([]stats.PlayerStanding, 0, len(aggregates))
	for playerID, agg := range aggregates {
		rows = append(rows, stats.PlayerStanding{PlayerID: playerID, Aggregate: agg})
	}

	// Deterministic base order before ranking, so fully tied rows always
	// come out in the same order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PlayerID < rows[j].PlayerID
	})
	stats.Rank(rows)
	return rows, nil
}
