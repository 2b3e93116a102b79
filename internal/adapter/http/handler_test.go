package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"drivead/internal/core/domain"
	"drivead/internal/core/port"
)

// stubTelemetry returns a canned ingestion result.
type stubTelemetry struct {
	result port.IngestResult
	err    error
	gotLen int
}

func (s *stubTelemetry) IngestBatch(ctx context.Context, userID uuid.UUID, pings []port.BatchPing) (port.IngestResult, error) {
	s.gotLen = len(pings)
	return s.result, s.err
}

func newTestHandler(telemetry port.TelemetryUseCase) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(telemetry, nil, nil, nil, NewAuthMiddleware(testSecret), logger)
}

func driverToken(t *testing.T) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    RoleDriver,
	})
}

func TestPositionsBatchAccepted(t *testing.T) {
	stub := &stubTelemetry{result: port.IngestResult{Accepted: 2}}
	h := newTestHandler(stub)

	body := `{"positions":[
		{"lat":-23.55,"lon":-46.63,"timestamp":"2025-06-01T10:00:00Z"},
		{"lat":-23.54,"lon":-46.63,"timestamp":"2025-06-01T10:01:00Z"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/batch", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+driverToken(t))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var resp positionsBatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Accepted != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if stub.gotLen != 2 {
		t.Fatalf("usecase received %d pings, want 2", stub.gotLen)
	}
}

func TestPositionsBatchFraudIsBusinessOutcome(t *testing.T) {
	stub := &stubTelemetry{result: port.IngestResult{
		Accepted: 1,
		Fraud:    true,
		Message:  "suspicious activity detected, batch rejected",
	}}
	h := newTestHandler(stub)

	body := `{"positions":[{"lat":0,"lon":0,"timestamp":"2025-06-01T10:00:00Z"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/batch", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+driverToken(t))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	// fraud must not surface as an HTTP error
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp positionsBatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("fraud batch must report success=false")
	}
	if resp.Accepted != 1 {
		t.Fatalf("accepted = %d, want 1", resp.Accepted)
	}
}

func TestPositionsBatchInvalidTimestamp(t *testing.T) {
	h := newTestHandler(&stubTelemetry{})

	body := `{"positions":[{"lat":0,"lon":0,"timestamp":"yesterday"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/batch", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+driverToken(t))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPositionsBatchRequiresDriverToken(t *testing.T) {
	h := newTestHandler(&stubTelemetry{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/batch", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrDriverBusy, http.StatusConflict},
		{domain.NewTransitionError(domain.AssignmentActive, domain.AssignmentScheduled), http.StatusConflict},
		{domain.ErrPermission, http.StatusForbidden},
		{domain.ErrValidation, http.StatusBadRequest},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, c := range cases {
		stub := &stubTelemetry{err: c.err}
		h := newTestHandler(stub)

		body := `{"positions":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/positions/batch", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+driverToken(t))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)

		if rec.Code != c.want {
			t.Errorf("%v: status = %d, want %d", c.err, rec.Code, c.want)
		}
	}
}
