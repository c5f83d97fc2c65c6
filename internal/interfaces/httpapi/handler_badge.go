package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayerBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerBadges")
	defer span.End()

	playerID := r.PathValue("playerID")
	badges, err := h.badgeService.PlayerBadges(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player badges failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]badgeDTO, 0, len(badges))
	for _, item := range badges {
		items = append(items, badgeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
