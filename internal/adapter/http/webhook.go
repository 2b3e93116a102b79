package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

type paymentWebhookRequest struct {
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
}

// handlePaymentWebhook receives payment gateway callbacks. Only the
// "approved" status carries meaning; every other status is acknowledged
// with 200 so the gateway stops redelivering.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req paymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign_id")
		return
	}
	if req.Status != "approved" {
		writeJSON(w, http.StatusOK, dataResponse{Success: true})
		return
	}
	if err := h.webhooks.HandlePaymentApproved(r.Context(), campaignID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true})
}
