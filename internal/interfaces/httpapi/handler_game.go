package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"sunday-league/internal/domain/game"
	"sunday-league/internal/usecase"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.gameService.ListGames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, item := range games {
		items = append(items, gameToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type scheduleGameRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	PitchSize   string    `json:"pitchSize" validate:"omitempty,oneof=small big"`
	Location    string    `json:"location" validate:"max=200"`
}

func (h *Handler) ScheduleGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleGame")
	defer span.End()

	var req scheduleGameRequest
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

	scheduled, err := h.gameService.Schedule(ctx, usecase.ScheduleGameInput{
		ScheduledAt: req.ScheduledAt,
		PitchSize:   game.PitchSize(req.PitchSize),
		Location:    req.Location,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(scheduled))
}

type signUpRequest struct {
	ParticipantID string `json:"participantId" validate:"required"`
}

func (h *Handler) SignUpForGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignUpForGame")
	defer span.End()

	gameID := r.PathValue("gameID")

	var req signUpRequest
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

	signup, err := h.gameService.SignUp(ctx, gameID, req.ParticipantID)
	if err != nil {
		h.logger.WarnContext(ctx, "sign up failed", "game_id", gameID, "participant_id", req.ParticipantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, signupToDTO(signup))
}

func (h *Handler) GetSignupSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSignupSheet")
	defer span.End()

	gameID := r.PathValue("gameID")
	rows, err := h.gameService.SignupSheet(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "signup sheet failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]signupSheetRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, signupSheetRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CancelSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelSignup")
	defer span.End()

	gameID := r.PathValue("gameID")
	participantID := r.PathValue("participantID")
	if err := h.gameService.CancelSignup(ctx, gameID, participantID); err != nil {
		h.logger.WarnContext(ctx, "cancel signup failed", "game_id", gameID, "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *Handler) MarkLastMinuteDropout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkLastMinuteDropout")
	defer span.End()

	gameID := r.PathValue("gameID")
	participantID := r.PathValue("participantID")
	if err := h.gameService.MarkLastMinuteDropout(ctx, gameID, participantID); err != nil {
		h.logger.WarnContext(ctx, "mark dropout failed", "game_id", gameID, "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "dropout_recorded"})
}
