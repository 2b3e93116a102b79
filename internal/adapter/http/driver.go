package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *Handler) handleEligibleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.assignments.EligibleCampaigns(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: campaigns})
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	assignment, err := h.assignments.Apply(r.Context(), userIDFrom(r.Context()), campaignID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: assignment})
}

func (h *Handler) handleCurrentAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.assignments.Current(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: assignment})
}

type scheduleInstallRequest struct {
	InstallerID string `json:"installer_id"`
	ScheduledAt string `json:"scheduled_at"` // ISO-8601
}

func (h *Handler) handleScheduleInstall(w http.ResponseWriter, r *http.Request) {
	var req scheduleInstallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	installerID, err := uuid.Parse(req.InstallerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid installer id")
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scheduled_at")
		return
	}
	assignment, err := h.assignments.ScheduleInstall(r.Context(), userIDFrom(r.Context()), port.ScheduleInstallInput{
		InstallerID: installerID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: assignment})
}

type confirmInstallationRequest struct {
	PhotoBeforeURL string `json:"photo_before_url"`
	PhotoAfterURL  string `json:"photo_after_url"`
}

func (h *Handler) handleConfirmInstallation(w http.ResponseWriter, r *http.Request) {
	var req confirmInstallationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	assignment, err := h.assignments.ConfirmInstallation(r.Context(), userIDFrom(r.Context()), port.ConfirmInstallationInput{
		PhotoBeforeURL: req.PhotoBeforeURL,
		PhotoAfterURL:  req.PhotoAfterURL,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: assignment})
}

type submitProofRequest struct {
	ProofType string `json:"proof_type"` // random | final
	PhotoURL  string `json:"photo_url"`
}

func (h *Handler) handleSubmitProof(w http.ResponseWriter, r *http.Request) {
	var req submitProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	proof, err := h.assignments.SubmitPeriodicProof(r.Context(), userIDFrom(r.Context()), port.SubmitProofInput{
		Type:     domain.PeriodicProofType(req.ProofType),
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: proof})
}

func (h *Handler) handleRequestRemoval(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.assignments.RequestRemoval(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: assignment})
}
