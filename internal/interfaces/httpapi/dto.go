package httpapi

import (
	"time"

	"sunday-league/internal/domain/badge"
	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/news"
	"sunday-league/internal/domain/stats"
	"sunday-league/internal/usecase"
)

type standingDTO struct {
	Position       int     `json:"position"`
	PlayerID       string  `json:"playerId"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalDifference int     `json:"goalDifference"`
	MVPAwards      int     `json:"mvpAwards"`
	Points         int     `json:"points"`
	PointsPerGame  float64 `json:"pointsPerGame"`
	WinRate        float64 `json:"winRate"`
}

func standingToDTO(row stats.PlayerStanding) standingDTO {
	return standingDTO{
		Position:       row.Position,
		PlayerID:       row.PlayerID,
		GamesPlayed:    row.GamesPlayed(),
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalDifference: row.GoalDifference,
		MVPAwards:      row.MVPAwards,
		Points:         row.Points(),
		PointsPerGame:  row.PointsPerGame(),
		WinRate:        row.WinRate(),
	}
}

type playerStatsDTO struct {
	PlayerID       string  `json:"playerId"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalDifference int     `json:"goalDifference"`
	MVPAwards      int     `json:"mvpAwards"`
	Points         int     `json:"points"`
	PointsPerGame  float64 `json:"pointsPerGame"`
	WinRate        float64 `json:"winRate"`
}

func playerStatsToDTO(playerID string, agg stats.Aggregate) playerStatsDTO {
	return playerStatsDTO{
		PlayerID:       playerID,
		GamesPlayed:    agg.GamesPlayed(),
		Wins:           agg.Wins,
		Draws:          agg.Draws,
		Losses:         agg.Losses,
		GoalDifference: agg.GoalDifference,
		MVPAwards:      agg.MVPAwards,
		Points:         agg.Points(),
		PointsPerGame:  agg.PointsPerGame(),
		WinRate:        agg.WinRate(),
	}
}

type badgeDTO struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func badgeToDTO(item badge.Badge) badgeDTO {
	return badgeDTO{
		Icon:        item.Icon,
		Name:        item.Name,
		Description: item.Description,
	}
}

type matchDTO struct {
	ID        string    `json:"id"`
	TeamA     []string  `json:"teamA"`
	TeamB     []string  `json:"teamB"`
	GoalsA    int       `json:"goalsA"`
	GoalsB    int       `json:"goalsB"`
	MVPPlayer string    `json:"mvpPlayer,omitempty"`
	PlayedAt  time.Time `json:"playedAt"`
}

func matchToDTO(record match.Record) matchDTO {
	return matchDTO{
		ID:        record.ID,
		TeamA:     record.TeamA,
		TeamB:     record.TeamB,
		GoalsA:    record.GoalsA,
		GoalsB:    record.GoalsB,
		MVPPlayer: record.MVPPlayer,
		PlayedAt:  record.PlayedAt,
	}
}

type gameDTO struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduledAt"`
	PitchSize   string    `json:"pitchSize,omitempty"`
	Location    string    `json:"location,omitempty"`
	Capacity    int       `json:"capacity"`
}

func gameToDTO(item game.ScheduledGame) gameDTO {
	return gameDTO{
		ID:          item.ID,
		ScheduledAt: item.ScheduledAt,
		PitchSize:   string(item.PitchSize),
		Location:    item.Location,
		Capacity:    item.Capacity(),
	}
}

type signupDTO struct {
	ID                string    `json:"id"`
	GameID            string    `json:"gameId"`
	ParticipantID     string    `json:"participantId"`
	SignedUpAt        time.Time `json:"signedUpAt"`
	LastMinuteDropout bool      `json:"lastMinuteDropout"`
}

func signupToDTO(item game.Signup) signupDTO {
	return signupDTO{
		ID:                item.ID,
		GameID:            item.GameID,
		ParticipantID:     item.ParticipantID,
		SignedUpAt:        item.SignedUpAt,
		LastMinuteDropout: item.LastMinuteDropout,
	}
}

type signupSheetRowDTO struct {
	signupDTO
	Position  int  `json:"position"`
	OwesShare bool `json:"owesShare"`
}

func signupSheetRowToDTO(row usecase.SignupSheetRow) signupSheetRowDTO {
	return signupSheetRowDTO{
		signupDTO: signupToDTO(row.Signup),
		Position:  row.Position,
		OwesShare: row.OwesShare,
	}
}

type participantDebtDTO struct {
	ParticipantID string  `json:"participantId"`
	Amount        float64 `json:"amount"`
}

type newsPostDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

func newsPostToDTO(post news.Post) newsPostDTO {
	return newsPostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Body:        post.Body,
		Author:      post.Author,
		PublishedAt: post.PublishedAt,
	}
}

type avatarTaskDTO struct {
	PlayerID  string `json:"playerId"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

type avatarResultDTO struct {
	SuccessCount int             `json:"successCount"`
	FailedCount  int             `json:"failedCount"`
	Tasks        []avatarTaskDTO `json:"tasks"`
}

func avatarResultToDTO(result usecase.AvatarResult) avatarResultDTO {
	tasks := make([]avatarTaskDTO, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, avatarTaskDTO{
			PlayerID:  task.PlayerID,
			AvatarURL: task.AvatarURL,
			Status:    task.Status,
			Message:   task.Message,
		})
	}
	return avatarResultDTO{
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Tasks:        tasks,
	}
}
