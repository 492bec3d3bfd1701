// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shipstream/pkg/httpx"
	accountdomain "github.com/ghuser/shipstream/services/account/domain"
	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
)

// production controls whether 5xx bodies hide internal error chains.
// Hidden by default; cmd/api lowers it outside production via Init.
var production = true

// Init sets whether 5xx responses expose full error details. Call once at
// startup with the resolved environment.
func Init(isProduction bool) {
	production = isProduction
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; in
// production those bodies carry a generic message instead of err.Error().
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, shipmentdomain.ErrShipmentNotFound),
		errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, shipmentdomain.ErrTrackingNumberExists),
		errors.Is(err, shipmentdomain.ErrInvalidTransition),
		errors.Is(err, accountdomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, shipmentdomain.ErrInvalidShipment),
		errors.Is(err, accountdomain.ErrInvalidUsername):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
