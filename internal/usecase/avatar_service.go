package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"sunday-league/internal/domain/player"
	"sunday-league/internal/domain/profile"
	"sunday-league/internal/platform/logging"
)

const defaultAvatarWorkers = 4

// AvatarGenerator produces an image URL for a player portrait prompt.
type AvatarGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AvatarService struct {
	playerRepo  player.Repository
	profileRepo profile.Repository
	generator   AvatarGenerator
	logger      *logging.Logger
	workerCount int
}

func NewAvatarService(
	playerRepo player.Repository,
	profileRepo profile.Repository,
	generator AvatarGenerator,
	logger *logging.Logger,
	workerCount int,
) *AvatarService {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount < 1 {
		workerCount = defaultAvatarWorkers
	}
	return &AvatarService{
		playerRepo:  playerRepo,
		profileRepo: profileRepo,
		generator:   generator,
		logger:      logger,
		workerCount: workerCount,
	}
}

type AvatarTaskResult struct {
	PlayerID  string
	AvatarURL string
	Status    string
	Message   string
}

type AvatarResult struct {
	SuccessCount int
	FailedCount  int
	Tasks        []AvatarTaskResult
}

const (
	avatarStatusSuccess = "success"
	avatarStatusFailed  = "failed"
)

// GenerateForPlayers fans avatar generation out over a bounded worker pool
// and stores each returned image URL on the player. Per-player failures are
// reported, not fatal.
func (s *AvatarService) GenerateForPlayers(ctx context.Context, playerIDs []string) (AvatarResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvatarService.GenerateForPlayers")
	defer span.End()

	if s.generator == nil {
		return AvatarResult{}, fmt.Errorf("%w: avatar generator is not configured", ErrDependencyUnavailable)
	}
	if len(playerIDs) == 0 {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return AvatarResult{}, fmt.Errorf("list players: %w", err)
		}
		for _, item := range players {
			playerIDs = append(playerIDs, item.ID)
		}
	}
	if len(playerIDs) == 0 {
		return AvatarResult{}, nil
	}

	results := make(chan AvatarTaskResult, len(playerIDs))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return AvatarResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, playerID := range playerIDs {
		playerID := playerID
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			row := s.generateOne(ctx, playerID)
			if row.Status == avatarStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return AvatarResult{}, fmt.Errorf("submit avatar task: %w", err)
		}
	}

	workers.Wait()
	close(results)

	result := AvatarResult{}
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].PlayerID < result.Tasks[j].PlayerID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *AvatarService) generateOne(ctx context.Context, playerID string) AvatarTaskResult {
	row := AvatarTaskResult{PlayerID: playerID}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		row.Status = avatarStatusFailed
		row.Message = fmt.Sprintf("get player: %v", err)
		return row
	}
	if !exists {
		row.Status = avatarStatusFailed
		row.Message = "player not found"
		return row
	}

	avatarURL, err := s.generator.Generate(ctx, s.buildPrompt(ctx, item))
	if err != nil {
		s.logger.WarnContext(ctx, "avatar generation failed", "player_id", playerID, "error", err)
		row.Status = avatarStatusFailed
		row.Message = err.Error()
		return row
	}

	if err := s.playerRepo.UpdateAvatarURL(ctx, playerID, avatarURL); err != nil {
		row.Status = avatarStatusFailed
		row.Message = fmt.Sprintf("store avatar url: %v", err)
		return row
	}

	row.Status = avatarStatusSuccess
	row.AvatarURL = avatarURL
	return row
}

func (s *AvatarService) buildPrompt(ctx context.Context, item player.Player) string {
	name := item.Nickname
	if name == "" {
		name = item.Name
	}
	prompt := fmt.Sprintf("cartoon football player portrait of %s", name)

	if s.profileRepo != nil {
		if prof, exists, err := s.profileRepo.GetByPlayer(ctx, item.ID); err == nil && exists && prof.FavoriteClub != "" {
			prompt += fmt.Sprintf(" wearing a %s kit", prof.FavoriteClub)
		}
	}
	return prompt
}
