package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	pkgvalidator "github.com/ghuser/shipstream/pkg/validator"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
)

// UpdateShipmentRequest is the request body for PUT /shipments/{id}.
// All fields are optional; omitted fields keep their current value.
// A status change must follow the shipment lifecycle graph.
type UpdateShipmentRequest struct {
	TrackingNumber   *string `json:"tracking_number" validate:"omitempty,max=64"`
	Description      *string `json:"description" validate:"omitempty,max=1000"`
	SenderName       *string `json:"sender_name" validate:"omitempty,max=255"`
	SenderAddress    *string `json:"sender_address" validate:"omitempty,max=500"`
	RecipientName    *string `json:"recipient_name" validate:"omitempty,max=255"`
	RecipientAddress *string `json:"recipient_address" validate:"omitempty,max=500"`
	Carrier          *string `json:"carrier" validate:"omitempty,max=255"`
	Origin           *string `json:"origin" validate:"omitempty,max=255"`
	Destination      *string `json:"destination" validate:"omitempty,max=255"`

	Status         *string `json:"status" validate:"omitempty,oneof=CREATED PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED RETURNED" example:"PICKED_UP"`
	ShippingMethod *string `json:"shipping_method" validate:"omitempty,oneof=standard express overnight same-day"`
	Priority       *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`

	IsPriority        *bool `json:"is_priority"`
	IsInsured         *bool `json:"is_insured"`
	RequiresSignature *bool `json:"requires_signature"`
	IsFragile         *bool `json:"is_fragile"`

	WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	LengthCm      *float64 `json:"length_cm" validate:"omitempty,gt=0"`
	WidthCm       *float64 `json:"width_cm" validate:"omitempty,gt=0"`
	HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	DistanceKm    *float64 `json:"distance_km" validate:"omitempty,gt=0"`
	DeclaredValue *float64 `json:"declared_value" validate:"omitempty,gte=0"`

	ShippingCostOverride *float64 `json:"shipping_cost_override" validate:"omitempty,gte=0"`
} // @name UpdateShipmentRequest

// PutShipmentHandler handles PUT /shipments/{id} requests.
type PutShipmentHandler struct {
	svc *appsvcs.Services
}

// NewPutShipmentHandler returns a PutShipmentHandler backed by the given services.
func NewPutShipmentHandler(svc *appsvcs.Services) *PutShipmentHandler {
	return &PutShipmentHandler{svc: svc}
}

// Execute applies a partial update and re-derives pricing.
//
//	@Summary		Update shipment
//	@Description	Partial update; derived fields are recomputed, status changes follow the lifecycle graph
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Shipment ID"
//	@Param			request	body		UpdateShipmentRequest	true	"Fields to change"
//	@Success		200		{object}	ShipmentResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shipments/{id} [put]
func (h *PutShipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateShipmentRequest](w, r)
	if !ok {
		return
	}

	shipment, err := h.svc.Shipment.Update(r.Context(), userID, id, appsvcs.ShipmentPatch{
		TrackingNumber:       req.TrackingNumber,
		Description:          req.Description,
		SenderName:           req.SenderName,
		SenderAddress:        req.SenderAddress,
		RecipientName:        req.RecipientName,
		RecipientAddress:     req.RecipientAddress,
		Carrier:              req.Carrier,
		Origin:               req.Origin,
		Destination:          req.Destination,
		Status:               req.Status,
		ShippingMethod:       req.ShippingMethod,
		Priority:             req.Priority,
		IsPriority:           req.IsPriority,
		IsInsured:            req.IsInsured,
		RequiresSignature:    req.RequiresSignature,
		IsFragile:            req.IsFragile,
		WeightKg:             req.WeightKg,
		LengthCm:             req.LengthCm,
		WidthCm:              req.WidthCm,
		HeightCm:             req.HeightCm,
		DistanceKm:           req.DistanceKm,
		DeclaredValue:        req.DeclaredValue,
		ShippingCostOverride: req.ShippingCostOverride,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toShipmentResponse(shipment))
}
