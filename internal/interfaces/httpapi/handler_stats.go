package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"sunday-league/internal/domain/stats"
	"sunday-league/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	key := stats.SortKeyPoints
	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		parsed, ok := stats.ParseSortKey(raw)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: unknown sort key %q", usecase.ErrInvalidInput, raw))
			return
		}
		key = parsed
	}
	descending := !strings.EqualFold(r.URL.Query().Get("order"), "asc")

	standings, err := h.statsService.Leaderboard(ctx, key, descending)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, row := range standings {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := r.PathValue("playerID")
	agg, err := h.statsService.PlayerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(playerID, agg))
}

func (h *Handler) GetPlayerRecentForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRecentForm")
	defer span.End()

	playerID := r.PathValue("playerID")
	outcomes, err := h.statsService.RecentOutcomes(ctx, playerID, recentFormLimit)
	if err != nil {
		h.logger.WarnContext(ctx, "recent form failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		items = append(items, string(outcome))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"playerId": playerID,
		"outcomes": items,
	})
}

const recentFormLimit = 10

type recordMatchRequest struct {
	TeamA     []string  `json:"teamA" validate:"required,min=1,dive,required"`
	TeamB     []string  `json:"teamB" validate:"required,min=1,dive,required"`
	GoalsA    int       `json:"goalsA" validate:"min=0"`
	GoalsB    int       `json:"goalsB" validate:"min=0"`
	MVPPlayer string    `json:"mvpPlayer"`
	PlayedAt  time.Time `json:"playedAt"`
}

func (h *Handler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatch")
	defer span.End()

	var req recordMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.statsService.RecordMatch(ctx, usecase.RecordMatchInput{
		TeamA:     req.TeamA,
		TeamB:     req.TeamB,
		GoalsA:    req.GoalsA,
		GoalsB:    req.GoalsB,
		MVPPlayer: req.MVPPlayer,
		PlayedAt:  req.PlayedAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(record))
}
