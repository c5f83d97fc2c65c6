package httpapi

import (
	"net/http"
)

func (h *Handler) GetDebtReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDebtReport")
	defer span.End()

	report, err := h.debtService.DebtReport(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "debt report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]participantDebtDTO, 0, len(report))
	for _, row := range report {
		items = append(items, participantDebtDTO{
			ParticipantID: row.ParticipantID,
			Amount:        row.Amount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetParticipantDebt(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetParticipantDebt")
	defer span.End()

	participantID := r.PathValue("participantID")
	amount, err := h.debtService.DebtFor(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "participant debt failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, participantDebtDTO{
		ParticipantID: participantID,
		Amount:        amount,
	})
}
