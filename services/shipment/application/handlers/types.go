package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// ShipmentResponse is the full public representation of a shipment,
// including the derived pricing and delivery-estimate block.
type ShipmentResponse struct {
	ID             uuid.UUID `json:"id"              example:"123e4567-e89b-12d3-a456-426614174000"`
	TrackingNumber string    `json:"tracking_number" example:"TRK-2024-0001"`

	Description      string `json:"description,omitempty"`
	SenderName       string `json:"sender_name"`
	SenderAddress    string `json:"sender_address"`
	RecipientName    string `json:"recipient_name"`
	RecipientAddress string `json:"recipient_address"`
	Carrier          string `json:"carrier"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`

	Status         string `json:"status"          example:"IN_TRANSIT"`
	ShippingMethod string `json:"shipping_method" example:"express"`
	Priority       string `json:"priority"        example:"high"`

	IsPriority        bool `json:"is_priority"`
	IsInsured         bool `json:"is_insured"`
	RequiresSignature bool `json:"requires_signature"`
	IsFragile         bool `json:"is_fragile"`

	WeightKg      float64 `json:"weight_kg"`
	LengthCm      float64 `json:"length_cm"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	DistanceKm    float64 `json:"distance_km"`
	DeclaredValue float64 `json:"declared_value"`

	ShippingCostOverride float64 `json:"shipping_cost_override,omitempty"`

	CreatedAt             time.Time  `json:"created_at"`
	EstimatedDeliveryDate time.Time  `json:"estimated_delivery_date"`
	ShippedAt             *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt           *time.Time `json:"delivered_at,omitempty"`

	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
	ShippingCost          float64 `json:"shipping_cost"`
	InsuranceCost         float64 `json:"insurance_cost"`
	TotalCost             float64 `json:"total_cost"`
	VolumetricWeightKg    float64 `json:"volumetric_weight_kg"`
	ChargeableWeightKg    float64 `json:"chargeable_weight_kg"`
} // @name ShipmentResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"shipment not found"`
} // @name ErrorResponse

func toShipmentResponse(s *models.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                    s.ID,
		TrackingNumber:        s.TrackingNumber.String(),
		Description:           s.Description,
		SenderName:            s.SenderName,
		SenderAddress:         s.SenderAddress,
		RecipientName:         s.RecipientName,
		RecipientAddress:      s.RecipientAddress,
		Carrier:               s.Carrier,
		Origin:                s.Origin,
		Destination:           s.Destination,
		Status:                s.Status.String(),
		ShippingMethod:        s.ShippingMethod.String(),
		Priority:              s.Priority.String(),
		IsPriority:            s.IsPriority,
		IsInsured:             s.IsInsured,
		RequiresSignature:     s.RequiresSignature,
		IsFragile:             s.IsFragile,
		WeightKg:              s.WeightKg,
		LengthCm:              s.LengthCm,
		WidthCm:               s.WidthCm,
		HeightCm:              s.HeightCm,
		DistanceKm:            s.DistanceKm,
		DeclaredValue:         s.DeclaredValue,
		ShippingCostOverride:  s.ShippingCostOverride,
		CreatedAt:             s.CreatedAt,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ShippedAt:             s.ShippedAt,
		DeliveredAt:           s.DeliveredAt,
		EstimatedDeliveryDays: s.EstimatedDeliveryDays,
		ShippingCost:          s.ShippingCost,
		InsuranceCost:         s.InsuranceCost,
		TotalCost:             s.TotalCost,
		VolumetricWeightKg:    s.VolumetricWeightKg,
		ChargeableWeightKg:    s.ChargeableWeightKg,
	}
}
