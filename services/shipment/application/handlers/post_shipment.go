package handlers

import (
	"net/http"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	pkgvalidator "github.com/ghuser/shipstream/pkg/validator"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
)

// CreateShipmentRequest is the request body for POST /shipments.
// Derived fields (costs, delivery estimate, chargeable weight) are computed
// server-side and rejected if supplied.
type CreateShipmentRequest struct {
	TrackingNumber   string `json:"tracking_number" validate:"required,max=64" example:"TRK-2024-0001"`
	Description      string `json:"description" validate:"max=1000"`
	SenderName       string `json:"sender_name" validate:"required,max=255"`
	SenderAddress    string `json:"sender_address" validate:"required,max=500"`
	RecipientName    string `json:"recipient_name" validate:"required,max=255"`
	RecipientAddress string `json:"recipient_address" validate:"required,max=500"`
	Carrier          string `json:"carrier" validate:"required,max=255"`
	Origin           string `json:"origin" validate:"required,max=255"`
	Destination      string `json:"destination" validate:"required,max=255"`

	ShippingMethod string `json:"shipping_method" validate:"required,oneof=standard express overnight same-day" example:"express"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high urgent" example:"high"`

	IsPriority        bool `json:"is_priority"`
	IsInsured         bool `json:"is_insured"`
	RequiresSignature bool `json:"requires_signature"`
	IsFragile         bool `json:"is_fragile"`

	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0" example:"4.5"`
	LengthCm      float64 `json:"length_cm" validate:"required,gt=0" example:"30"`
	WidthCm       float64 `json:"width_cm" validate:"required,gt=0" example:"20"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0" example:"10"`
	DistanceKm    float64 `json:"distance_km" validate:"required,gt=0" example:"615"`
	DeclaredValue float64 `json:"declared_value" validate:"gte=0" example:"250"`

	ShippingCostOverride float64 `json:"shipping_cost_override" validate:"gte=0"`
} // @name CreateShipmentRequest

// PostShipmentHandler handles POST /shipments requests.
type PostShipmentHandler struct {
	svc *appsvcs.Services
}

// NewPostShipmentHandler returns a PostShipmentHandler backed by the given services.
func NewPostShipmentHandler(svc *appsvcs.Services) *PostShipmentHandler {
	return &PostShipmentHandler{svc: svc}
}

// Execute creates a new shipment.
//
//	@Summary		Create shipment
//	@Description	Creates a shipment; costs and delivery estimate are derived server-side
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateShipmentRequest	true	"Shipment creation request"
//	@Success		201		{object}	ShipmentResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shipments [post]
func (h *PostShipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateShipmentRequest](w, r)
	if !ok {
		return
	}

	shipment, err := h.svc.Shipment.Create(r.Context(), userID, appsvcs.ShipmentInput{
		TrackingNumber:       req.TrackingNumber,
		Description:          req.Description,
		SenderName:           req.SenderName,
		SenderAddress:        req.SenderAddress,
		RecipientName:        req.RecipientName,
		RecipientAddress:     req.RecipientAddress,
		Carrier:              req.Carrier,
		Origin:               req.Origin,
		Destination:          req.Destination,
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

	httpx.JSON(w, http.StatusCreated, toShipmentResponse(shipment))
}
