package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/pkg/ai"
	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
	"github.com/ghuser/shipstream/services/shipment/domain/query"
	"github.com/ghuser/shipstream/services/shipment/infrastructure/persistence/memory"
)

func newTestService() *ShipmentService {
	return NewShipmentService(memory.NewShipmentRepository(), nil, ai.NewFallback())
}

func validInput(trackingNumber string) ShipmentInput {
	return ShipmentInput{
		TrackingNumber:   trackingNumber,
		Description:      "Ceramic vase",
		SenderName:       "Acme Warehouse",
		SenderAddress:    "1 Industrial Way, Hamburg",
		RecipientName:    "Jo Doe",
		RecipientAddress: "22 Main St, Lyon",
		Carrier:          "FastShip",
		Origin:           "Hamburg",
		Destination:      "Lyon",
		ShippingMethod:   "express",
		Priority:         "high",
		IsInsured:        true,
		IsFragile:        true,
		WeightKg:         4,
		LengthCm:         30,
		WidthCm:          20,
		HeightCm:         10,
		DistanceKm:       615,
		DeclaredValue:    250,
	}
}

func TestCreate_DerivesPricing(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	s, err := svc.Create(context.Background(), userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if s.UserID != userID {
		t.Fatalf("expected owner %v, got %v", userID, s.UserID)
	}
	if s.Status != models.StatusCreated {
		t.Fatalf("expected CREATED, got %s", s.Status)
	}
	// 30*20*10/5000 = 1.2 volumetric; actual 4kg wins.
	if s.VolumetricWeightKg != 1.2 {
		t.Fatalf("expected volumetric 1.2, got %v", s.VolumetricWeightKg)
	}
	if s.ChargeableWeightKg != 4 {
		t.Fatalf("expected chargeable 4, got %v", s.ChargeableWeightKg)
	}
	// express over 615km: ceil(2 * 2.0) = 4 days
	if s.EstimatedDeliveryDays != 4 {
		t.Fatalf("expected 4 delivery days, got %d", s.EstimatedDeliveryDays)
	}
	if s.EstimatedDeliveryDate != s.CreatedAt.AddDate(0, 0, 4) {
		t.Fatalf("expected delivery date 4 days after creation")
	}
	// insurance: max(250*0.02, 5) = 5
	if s.InsuranceCost != 5 {
		t.Fatalf("expected insurance 5, got %v", s.InsuranceCost)
	}
	if s.TotalCost != s.ShippingCost+s.InsuranceCost {
		t.Fatalf("total %v != shipping %v + insurance %v", s.TotalCost, s.ShippingCost, s.InsuranceCost)
	}
}

func TestCreate_CostOverride(t *testing.T) {
	svc := newTestService()
	in := validInput("TRK-1")
	in.ShippingCostOverride = 42.42

	s, err := svc.Create(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ShippingCost != 42.42 {
		t.Fatalf("expected override 42.42, got %v", s.ShippingCost)
	}
	if s.TotalCost != 47.42 {
		t.Fatalf("expected total 47.42, got %v", s.TotalCost)
	}
}

func TestCreate_DuplicateTrackingNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, uuid.New(), validInput("TRK-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Create(ctx, uuid.New(), validInput("TRK-1"))
	if !errors.Is(err, shipmentdomain.ErrTrackingNumberExists) {
		t.Fatalf("expected ErrTrackingNumberExists, got %v", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*ShipmentInput)
	}{
		{"empty tracking number", func(in *ShipmentInput) { in.TrackingNumber = "" }},
		{"unknown method", func(in *ShipmentInput) { in.ShippingMethod = "teleport" }},
		{"unknown priority", func(in *ShipmentInput) { in.Priority = "asap" }},
		{"zero weight", func(in *ShipmentInput) { in.WeightKg = 0 }},
		{"negative distance", func(in *ShipmentInput) { in.DistanceKm = -5 }},
		{"missing carrier", func(in *ShipmentInput) { in.Carrier = "" }},
		{"negative declared value", func(in *ShipmentInput) { in.DeclaredValue = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput("TRK-" + tt.name)
			tt.mutate(&in)
			_, err := svc.Create(ctx, userID, in)
			if !errors.Is(err, shipmentdomain.ErrInvalidShipment) {
				t.Fatalf("expected ErrInvalidShipment, got %v", err)
			}
		})
	}
}

func TestCreate_DefaultPriority(t *testing.T) {
	svc := newTestService()
	in := validInput("TRK-1")
	in.Priority = ""

	s, err := svc.Create(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Priority != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", s.Priority)
	}
}

func TestGetByID_ScopedToOwner(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %v, got %v", created.ID, got.ID)
	}

	_, err = svc.GetByID(ctx, uuid.New(), created.ID)
	if !errors.Is(err, shipmentdomain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound for other user, got %v", err)
	}
}

func TestUpdate_StatusTransition(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next := "PICKED_UP"
	updated, err := svc.Update(ctx, userID, created.ID, ShipmentPatch{Status: &next})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusPickedUp {
		t.Fatalf("expected PICKED_UP, got %s", updated.Status)
	}
	if updated.ShippedAt == nil {
		t.Fatal("expected ShippedAt stamped on pickup")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("update must not move CreatedAt")
	}
}

func TestUpdate_InvalidTransition(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next := "DELIVERED" // CREATED cannot jump to DELIVERED
	_, err = svc.Update(ctx, userID, created.ID, ShipmentPatch{Status: &next})
	if !errors.Is(err, shipmentdomain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if !strings.Contains(err.Error(), "CREATED") || !strings.Contains(err.Error(), "DELIVERED") {
		t.Fatalf("expected both states in error, got %q", err)
	}

	// The failed transition must not have been persisted.
	got, err := svc.GetByID(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusCreated {
		t.Fatalf("expected status unchanged, got %s", got.Status)
	}
}

func TestUpdate_SameStatusIsNoTransition(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := "CREATED"
	if _, err := svc.Update(ctx, userID, created.ID, ShipmentPatch{Status: &same}); err != nil {
		t.Fatalf("unexpected error for unchanged status: %v", err)
	}
}

func TestUpdate_RederivesPricing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weight := 40.0
	updated, err := svc.Update(ctx, userID, created.ID, ShipmentPatch{WeightKg: &weight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ChargeableWeightKg != 40 {
		t.Fatalf("expected chargeable weight recomputed to 40, got %v", updated.ChargeableWeightKg)
	}
	if updated.ShippingCost <= created.ShippingCost {
		t.Fatalf("expected shipping cost to rise with weight: %v -> %v", created.ShippingCost, updated.ShippingCost)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), ShipmentPatch{})
	if !errors.Is(err, shipmentdomain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, userID, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetByID(ctx, userID, created.ID); !errors.Is(err, shipmentdomain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, userID, created.ID); !errors.Is(err, shipmentdomain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound on second delete, got %v", err)
	}
}

func TestList_FilterAndPaginate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	methods := []string{"standard", "express", "overnight", "same-day"}
	for i := 0; i < 8; i++ {
		in := validInput("TRK-" + string(rune('A'+i)))
		in.ShippingMethod = methods[i%len(methods)]
		if _, err := svc.Create(ctx, userID, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Another user's shipment must never leak into the list.
	if _, err := svc.Create(ctx, uuid.New(), validInput("TRK-OTHER")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := svc.List(ctx, userID, query.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 8 {
		t.Fatalf("expected 8 shipments, got %d", res.Total)
	}

	res, err = svc.List(ctx, userID, query.Params{
		Methods: []models.ShippingMethod{models.MethodExpress},
		Limit:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 express shipments, got %d", res.Total)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected page of 1, got %d", len(res.Items))
	}
	if res.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.TotalPages)
	}
}

func TestList_UnknownSortField(t *testing.T) {
	svc := newTestService()
	_, err := svc.List(context.Background(), uuid.New(), query.Params{SortBy: "no_such_field"})
	if err == nil {
		t.Fatal("expected error for unknown sort field")
	}
}

func TestStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	var wantValue float64
	for i := 0; i < 4; i++ {
		in := validInput("TRK-" + string(rune('A'+i)))
		in.IsPriority = i%2 == 0
		created, err := svc.Create(ctx, userID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantValue += created.TotalCost
	}

	stats, err := svc.Stats(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("expected total 4, got %d", stats.Total)
	}
	if stats.ByStatus[models.StatusCreated] != 4 {
		t.Fatalf("expected 4 CREATED, got %d", stats.ByStatus[models.StatusCreated])
	}
	if stats.PriorityCount != 2 {
		t.Fatalf("expected 2 priority, got %d", stats.PriorityCount)
	}
	if stats.InsuredCount != 4 {
		t.Fatalf("expected 4 insured, got %d", stats.InsuredCount)
	}
	if stats.TotalValue != wantValue {
		t.Fatalf("expected total value %v, got %v", wantValue, stats.TotalValue)
	}
}

func TestSummarize(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, validInput("TRK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.Summarize(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(summary, "TRK-1") {
		t.Fatalf("expected tracking number in summary:\n%s", summary)
	}

	_, err = svc.Summarize(ctx, uuid.New(), created.ID)
	if !errors.Is(err, shipmentdomain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}
