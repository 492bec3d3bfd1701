package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
)

// GetShipmentHandler handles GET /shipments/{id} requests.
type GetShipmentHandler struct {
	svc *appsvcs.Services
}

// NewGetShipmentHandler returns a GetShipmentHandler backed by the given services.
func NewGetShipmentHandler(svc *appsvcs.Services) *GetShipmentHandler {
	return &GetShipmentHandler{svc: svc}
}

// Execute returns one shipment.
//
//	@Summary		Get shipment
//	@Description	Returns a single shipment owned by the caller
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path		string	true	"Shipment ID"
//	@Success		200	{object}	ShipmentResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shipments/{id} [get]
func (h *GetShipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid shipment id"})
		return
	}

	shipment, err := h.svc.Shipment.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toShipmentResponse(shipment))
}
