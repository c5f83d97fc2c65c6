package usecase

import (
	"context"
	"fmt"
	"hash/fnv"

	"sunday-league/internal/domain/badge"
	"sunday-league/internal/domain/profile"
	"sunday-league/internal/platform/cache"
)

const badgeCachePrefix = "badges:"

type BadgeService struct {
	statsService *StatsService
	profileRepo  profile.Repository
	store        *cache.Store
}

func NewBadgeService(statsService *StatsService, profileRepo profile.Repository, store *cache.Store) *BadgeService {
	return &BadgeService{
		statsService: statsService,
		profileRepo:  profileRepo,
		store:        store,
	}
}

// PlayerBadges derives the player's achievement badges from their current
// aggregate, optional profile and recent form. Results are memoized per
// input fingerprint; the rule engine itself stays cache-free.
func (s *BadgeService) PlayerBadges(ctx context.Context, playerID string) ([]badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.PlayerBadges")
	defer span.End()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	agg, err := s.statsService.PlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.statsService.RecentOutcomes(ctx, playerID, badge.RecentWindow)
	if err != nil {
		return nil, err
	}

	var prof *profile.Profile
	if s.profileRepo != nil {
		item, exists, profErr := s.profileRepo.GetByPlayer(ctx, playerID)
		if profErr != nil {
			return nil, fmt.Errorf("get profile: %w", profErr)
		}
		if exists {
			prof = &item
		}
	}

	input := badge.Input{Stats: agg, Profile: prof, Recent: recent}
	key := badgeCacheKey(playerID, input)

	value, err := s.store.GetOrLoad(ctx, key, func(context.Context) (any, error) {
		return badge.Evaluate(input), nil
	})
	if err != nil {
		return nil, err
	}

	badges, ok := value.([]badge.Badge)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected badge cache entry", ErrDependencyUnavailable)
	}
	return badges, nil
}

// badgeCacheKey fingerprints everything Evaluate looks at, so a stale entry
// can never survive an input change.
func badgeCacheKey(playerID string, in badge.Input) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|%d",
		playerID, in.Stats.Wins, in.Stats.Draws, in.Stats.Losses, in.Stats.MVPAwards, in.Stats.GoalDifference)
	if in.Profile != nil {
		fmt.Fprintf(h, "|%s|%+v", in.Profile.FavoriteClub, in.Profile.Skills)
		for _, move := range in.Profile.SignatureMoves {
			fmt.Fprintf(h, "|%s", move)
		}
	}
	for _, outcome := range in.Recent {
		fmt.Fprintf(h, "|%s", outcome)
	}
	return fmt.Sprintf("%s%s:%x", badgeCachePrefix, playerID, h.Sum64())
}
