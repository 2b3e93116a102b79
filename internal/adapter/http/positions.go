package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"drivead/internal/core/port"
)

// positionPayload is one GPS ping as submitted by the device.
type positionPayload struct {
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Timestamp string   `json:"timestamp"` // ISO-8601
	Speed     *float64 `json:"speed,omitempty"`
}

type positionsBatchRequest struct {
	Positions []positionPayload `json:"positions"`
}

type positionsBatchResponse struct {
	Success  bool   `json:"success"`
	Accepted int64  `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// handlePositionsBatch ingests an ordered batch of pings for the driver's
// current assignment. A fraud detection is a business outcome, reported
// with success=false on HTTP 200, not an HTTP error.
func (h *Handler) handlePositionsBatch(w http.ResponseWriter, r *http.Request) {
	var req positionsBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	pings := make([]port.BatchPing, 0, len(req.Positions))
	for i, p := range req.Positions {
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("position %d: invalid timestamp", i))
			return
		}
		pings = append(pings, port.BatchPing{Lat: p.Lat, Lon: p.Lon, Timestamp: ts, Speed: p.Speed})
	}

	result, err := h.telemetry.IngestBatch(r.Context(), userIDFrom(r.Context()), pings)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if result.Fraud {
		writeJSON(w, http.StatusOK, positionsBatchResponse{
			Success:  false,
			Accepted: result.Accepted,
			Message:  result.Message,
		})
		return
	}
	writeJSON(w, http.StatusOK, positionsBatchResponse{
		Success:  true,
		Accepted: result.Accepted,
		Message:  fmt.Sprintf("%d positions accepted", result.Accepted),
	})
}
