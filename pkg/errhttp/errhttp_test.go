package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accountdomain "github.com/ghuser/shipstream/services/account/domain"
	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrShipmentNotFound", shipmentdomain.ErrShipmentNotFound, http.StatusNotFound},
		{"ErrTrackingNumberExists", shipmentdomain.ErrTrackingNumberExists, http.StatusConflict},
		{"ErrInvalidTransition", shipmentdomain.ErrInvalidTransition, http.StatusConflict},
		{"ErrInvalidShipment", shipmentdomain.ErrInvalidShipment, http.StatusUnprocessableEntity},
		{"ErrUserNotFound", accountdomain.ErrUserNotFound, http.StatusNotFound},
		{"ErrUsernameTaken", accountdomain.ErrUsernameTaken, http.StatusConflict},
		{"ErrInvalidCredentials", accountdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ErrInvalidUsername", accountdomain.ErrInvalidUsername, http.StatusUnprocessableEntity},
		{"wrapped ErrShipmentNotFound", fmt.Errorf("get shipment: %w", shipmentdomain.ErrShipmentNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidTransition", fmt.Errorf("%w: DELIVERED to CREATED", shipmentdomain.ErrInvalidTransition), http.StatusConflict},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	wrapped := fmt.Errorf("update shipment: %w", errors.New("pq: connection refused"))

	t.Run("production replaces 500 bodies with a generic message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, wrapped)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response body is not valid JSON: %v", err)
		}
		if body["error"] != http.StatusText(http.StatusInternalServerError) {
			t.Fatalf("expected generic message, got %q", body["error"])
		}
		if strings.Contains(w.Body.String(), "connection refused") {
			t.Fatal("internal error detail leaked to client")
		}
	})

	t.Run("production passes domain sentinel messages through", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, shipmentdomain.ErrShipmentNotFound)

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response body is not valid JSON: %v", err)
		}
		if body["error"] != shipmentdomain.ErrShipmentNotFound.Error() {
			t.Fatalf("expected sentinel message, got %q", body["error"])
		}
	})

	t.Run("development exposes the full error chain", func(t *testing.T) {
		Init(false)
		defer Init(true)

		w := httptest.NewRecorder()
		WriteError(w, wrapped)

		if !strings.Contains(w.Body.String(), "connection refused") {
			t.Fatal("expected full error detail in development")
		}
	})
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, shipmentdomain.ErrShipmentNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}
