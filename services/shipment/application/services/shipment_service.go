package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/pkg/ai"
	pkgcache "github.com/ghuser/shipstream/pkg/cache"
	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
	"github.com/ghuser/shipstream/services/shipment/domain/pricing"
	"github.com/ghuser/shipstream/services/shipment/domain/query"
	"github.com/ghuser/shipstream/services/shipment/domain/repositories"
	domainsvcs "github.com/ghuser/shipstream/services/shipment/domain/services"
)

// ShipmentInput carries the raw (non-derived) fields for creating a shipment.
// The pricing engine derives the computed fields; callers never supply them.
type ShipmentInput struct {
	TrackingNumber   string
	Description      string
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Carrier          string
	Origin           string
	Destination      string

	ShippingMethod string
	Priority       string

	IsPriority        bool
	IsInsured         bool
	RequiresSignature bool
	IsFragile         bool

	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	DistanceKm    float64
	DeclaredValue float64

	ShippingCostOverride float64
}

// ShipmentPatch is a partial update. Nil fields keep their current value.
// A Status change must follow the shipment status graph.
type ShipmentPatch struct {
	TrackingNumber   *string
	Description      *string
	SenderName       *string
	SenderAddress    *string
	RecipientName    *string
	RecipientAddress *string
	Carrier          *string
	Origin           *string
	Destination      *string

	Status         *string
	ShippingMethod *string
	Priority       *string

	IsPriority        *bool
	IsInsured         *bool
	RequiresSignature *bool
	IsFragile         *bool

	WeightKg      *float64
	LengthCm      *float64
	WidthCm       *float64
	HeightCm      *float64
	DistanceKm    *float64
	DeclaredValue *float64

	ShippingCostOverride *float64
}

// ShipmentService orchestrates the shipment lifecycle: creation with derived
// pricing, status-graph enforcement, querying, and AI summaries.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ShipmentService struct {
	repo  repositories.ShipmentRepository
	cache *pkgcache.ShipmentCache
	ai    ai.Client
}

// NewShipmentService returns a ShipmentService wired with the given
// repository, cache, and AI client. cache and aiClient may be nil.
func NewShipmentService(repo repositories.ShipmentRepository, shipmentCache *pkgcache.ShipmentCache, aiClient ai.Client) *ShipmentService {
	return &ShipmentService{repo: repo, cache: shipmentCache, ai: aiClient}
}

// Create validates and persists a new shipment with all derived fields
// computed. The repository publishes ShipmentCreatedEvent.
func (s *ShipmentService) Create(ctx context.Context, userID uuid.UUID, in ShipmentInput) (*models.Shipment, error) {
	tn, err := models.NewTrackingNumber(in.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}
	method, err := models.ParseShippingMethod(in.ShippingMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}
	priority := models.PriorityMedium
	if in.Priority != "" {
		if priority, err = models.ParsePriority(in.Priority); err != nil {
			return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
		}
	}

	shipment := models.NewShipment(userID, tn)
	shipment.Description = in.Description
	shipment.SenderName = in.SenderName
	shipment.SenderAddress = in.SenderAddress
	shipment.RecipientName = in.RecipientName
	shipment.RecipientAddress = in.RecipientAddress
	shipment.Carrier = in.Carrier
	shipment.Origin = in.Origin
	shipment.Destination = in.Destination
	shipment.ShippingMethod = method
	shipment.Priority = priority
	shipment.IsPriority = in.IsPriority
	shipment.IsInsured = in.IsInsured
	shipment.RequiresSignature = in.RequiresSignature
	shipment.IsFragile = in.IsFragile
	shipment.WeightKg = in.WeightKg
	shipment.LengthCm = in.LengthCm
	shipment.WidthCm = in.WidthCm
	shipment.HeightCm = in.HeightCm
	shipment.DistanceKm = in.DistanceKm
	shipment.DeclaredValue = in.DeclaredValue
	shipment.ShippingCostOverride = in.ShippingCostOverride

	pricing.Recalculate(shipment, shipment.CreatedAt)

	if err := domainsvcs.ValidateShipment(shipment); err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}

	if err := s.repo.Save(ctx, shipment); err != nil {
		return nil, fmt.Errorf("save shipment: %w", err)
	}
	return shipment, nil
}

// GetByID retrieves a shipment using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ShipmentService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Shipment, error) {
	if s.cache != nil {
		// Cache errors are treated as misses; Postgres is authoritative.
		if cached, err := s.cache.Get(ctx, userID, id); err == nil {
			return cached, nil
		}
	}

	shipment, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), shipment)
		}()
	}
	return shipment, nil
}

// List runs the structured query over the caller's shipments: search,
// filters, sort, and pagination, with the total counted before pagination.
func (s *ShipmentService) List(ctx context.Context, userID uuid.UUID, p query.Params) (query.Result, error) {
	shipments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return query.Result{}, fmt.Errorf("list shipments: %w", err)
	}
	res, err := query.Apply(shipments, p)
	if err != nil {
		return query.Result{}, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}
	return res, nil
}

// Update applies a partial update, re-derives pricing and delivery estimates,
// and persists the result. A status change is validated against the status
// graph and stamps the transition timestamps; the repository publishes
// ShipmentStatusChangedEvent when the status moved.
func (s *ShipmentService) Update(ctx context.Context, userID, id uuid.UUID, patch ShipmentPatch) (*models.Shipment, error) {
	shipment, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	prev := shipment.Status

	if err := applyPatch(shipment, patch); err != nil {
		return nil, err
	}

	pricing.Recalculate(shipment, shipment.CreatedAt)

	if err := domainsvcs.ValidateShipment(shipment); err != nil {
		return nil, fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
	}

	if err := s.repo.Update(ctx, shipment, prev); err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), shipment)
		}()
	}
	return shipment, nil
}

// Delete removes a shipment and evicts it from the cache.
func (s *ShipmentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), userID, id)
	}
	return nil
}

// Stats aggregates the caller's full collection: totals by status, priority
// and insured counts, and the summed declared value.
func (s *ShipmentService) Stats(ctx context.Context, userID uuid.UUID) (query.Stats, error) {
	shipments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return query.Stats{}, fmt.Errorf("load shipments: %w", err)
	}
	return query.Aggregate(shipments), nil
}

// Summarize produces a natural-language summary of one shipment.
func (s *ShipmentService) Summarize(ctx context.Context, userID, id uuid.UUID) (string, error) {
	shipment, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	summary, err := s.ai.SummarizeShipment(ctx, shipment)
	if err != nil {
		return "", fmt.Errorf("summarize shipment: %w", err)
	}
	return summary, nil
}

func applyPatch(shipment *models.Shipment, patch ShipmentPatch) error {
	if patch.Status != nil {
		next, err := models.ParseStatus(*patch.Status)
		if err != nil {
			return fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
		}
		if next != shipment.Status {
			if !shipment.Status.CanTransition(next) {
				return fmt.Errorf("%w: cannot move from %s to %s",
					shipmentdomain.ErrInvalidTransition, shipment.Status, next)
			}
			shipment.ApplyStatus(next, time.Now().UTC())
		}
	}

	if patch.TrackingNumber != nil {
		tn, err := models.NewTrackingNumber(*patch.TrackingNumber)
		if err != nil {
			return fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
		}
		shipment.TrackingNumber = tn
	}
	if patch.ShippingMethod != nil {
		method, err := models.ParseShippingMethod(*patch.ShippingMethod)
		if err != nil {
			return fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
		}
		shipment.ShippingMethod = method
	}
	if patch.Priority != nil {
		priority, err := models.ParsePriority(*patch.Priority)
		if err != nil {
			return fmt.Errorf("%w: %w", shipmentdomain.ErrInvalidShipment, err)
		}
		shipment.Priority = priority
	}

	if patch.Description != nil {
		shipment.Description = *patch.Description
	}
	if patch.SenderName != nil {
		shipment.SenderName = *patch.SenderName
	}
	if patch.SenderAddress != nil {
		shipment.SenderAddress = *patch.SenderAddress
	}
	if patch.RecipientName != nil {
		shipment.RecipientName = *patch.RecipientName
	}
	if patch.RecipientAddress != nil {
		shipment.RecipientAddress = *patch.RecipientAddress
	}
	if patch.Carrier != nil {
		shipment.Carrier = *patch.Carrier
	}
	if patch.Origin != nil {
		shipment.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		shipment.Destination = *patch.Destination
	}
	if patch.IsPriority != nil {
		shipment.IsPriority = *patch.IsPriority
	}
	if patch.IsInsured != nil {
		shipment.IsInsured = *patch.IsInsured
	}
	if patch.RequiresSignature != nil {
		shipment.RequiresSignature = *patch.RequiresSignature
	}
	if patch.IsFragile != nil {
		shipment.IsFragile = *patch.IsFragile
	}
	if patch.WeightKg != nil {
		shipment.WeightKg = *patch.WeightKg
	}
	if patch.LengthCm != nil {
		shipment.LengthCm = *patch.LengthCm
	}
	if patch.WidthCm != nil {
		shipment.WidthCm = *patch.WidthCm
	}
	if patch.HeightCm != nil {
		shipment.HeightCm = *patch.HeightCm
	}
	if patch.DistanceKm != nil {
		shipment.DistanceKm = *patch.DistanceKm
	}
	if patch.DeclaredValue != nil {
		shipment.DeclaredValue = *patch.DeclaredValue
	}
	if patch.ShippingCostOverride != nil {
		shipment.ShippingCostOverride = *patch.ShippingCostOverride
	}
	return nil
}
