package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *Handler) handlePendingInstallProofs(w http.ResponseWriter, r *http.Request) {
	proofs, err := h.admin.ListPendingInstallProofs(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: proofs})
}

type reviewRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes,omitempty"`
}

func (h *Handler) handleReviewInstallProof(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid proof id")
		return
	}
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	proof, err := h.admin.ReviewInstallProof(r.Context(), id, port.ReviewInput{Approved: req.Approved, Notes: req.Notes})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: proof})
}

func (h *Handler) handlePendingPeriodicProofs(w http.ResponseWriter, r *http.Request) {
	proofs, err := h.admin.ListPendingPeriodicProofs(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: proofs})
}

func (h *Handler) handleReviewPeriodicProof(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid proof id")
		return
	}
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	proof, err := h.admin.ReviewPeriodicProof(r.Context(), id, port.ReviewInput{Approved: req.Approved, Notes: req.Notes})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: proof})
}

type resolveFraudRequest struct {
	Action string `json:"action"` // dismiss | penalize
	Notes  string `json:"notes,omitempty"`
}

func (h *Handler) handleResolveFraudAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid alert id")
		return
	}
	var req resolveFraudRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	alert, err := h.admin.ResolveFraudAlert(r.Context(), id, domain.FraudResolution(req.Action), req.Notes)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: alert})
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.admin.ApproveCampaign(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true})
}

func (h *Handler) handleRejectCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.admin.RejectCampaign(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true})
}

func (h *Handler) handleConfirmRemoval(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}
	if err := h.admin.ConfirmRemoval(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true})
}
