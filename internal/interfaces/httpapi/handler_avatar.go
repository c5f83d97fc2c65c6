package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"sunday-league/internal/usecase"
)

type generateAvatarsRequest struct {
	PlayerIDs []string `json:"playerIds" validate:"omitempty,dive,required"`
}

func (h *Handler) GenerateAvatars(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateAvatars")
	defer span.End()

	var req generateAvatarsRequest
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

	result, err := h.avatarService.GenerateForPlayers(ctx, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "generate avatars failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, avatarResultToDTO(result))
}
