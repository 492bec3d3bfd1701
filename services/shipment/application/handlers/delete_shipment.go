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

// DeleteShipmentHandler handles DELETE /shipments/{id} requests.
type DeleteShipmentHandler struct {
	svc *appsvcs.Services
}

// NewDeleteShipmentHandler returns a DeleteShipmentHandler backed by the given services.
func NewDeleteShipmentHandler(svc *appsvcs.Services) *DeleteShipmentHandler {
	return &DeleteShipmentHandler{svc: svc}
}

// Execute deletes a shipment.
//
//	@Summary		Delete shipment
//	@Description	Removes a shipment owned by the caller
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Shipment ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shipments/{id} [delete]
func (h *DeleteShipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Shipment.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
