package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shipstream/pkg/database"
	"github.com/ghuser/shipstream/pkg/events"
	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
	domainevents "github.com/ghuser/shipstream/services/shipment/domain/events"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// shipmentColumns is the column list shared by every SELECT; keep in sync
// with scanShipment.
const shipmentColumns = `
	id, user_id, tracking_number, description,
	sender_name, sender_address, recipient_name, recipient_address,
	carrier, origin, destination,
	status, shipping_method, priority,
	is_priority, is_insured, requires_signature, is_fragile,
	weight_kg, length_cm, width_cm, height_cm, distance_km, declared_value,
	shipping_cost_override,
	created_at, estimated_delivery_date, shipped_at, delivered_at,
	estimated_delivery_days, shipping_cost, insurance_cost, total_cost,
	volumetric_weight_kg, chargeable_weight_kg`

// ShipmentRepository implements repositories.ShipmentRepository against PostgreSQL.
type ShipmentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewShipmentRepository returns a ShipmentRepository backed by the given
// connection pool and event bus. The bus is used to publish shipment lifecycle
// events in the same transaction as the write (outbox pattern).
func NewShipmentRepository(database *database.Database, bus *events.EventBus) *ShipmentRepository {
	return &ShipmentRepository{db: database, bus: bus}
}

// Save persists a new Shipment and publishes a ShipmentCreatedEvent within the
// same transaction. Returns ErrTrackingNumberExists on unique constraint violations.
func (r *ShipmentRepository) Save(ctx context.Context, s *models.Shipment) error {
	const query = `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32, $33, $34, $35)`

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			s.ID, s.UserID, s.TrackingNumber.String(), s.Description,
			s.SenderName, s.SenderAddress, s.RecipientName, s.RecipientAddress,
			s.Carrier, s.Origin, s.Destination,
			s.Status.String(), s.ShippingMethod.String(), s.Priority.String(),
			s.IsPriority, s.IsInsured, s.RequiresSignature, s.IsFragile,
			s.WeightKg, s.LengthCm, s.WidthCm, s.HeightCm, s.DistanceKm, s.DeclaredValue,
			s.ShippingCostOverride,
			s.CreatedAt, s.EstimatedDeliveryDate, s.ShippedAt, s.DeliveredAt,
			s.EstimatedDeliveryDays, s.ShippingCost, s.InsuranceCost, s.TotalCost,
			s.VolumetricWeightKg, s.ChargeableWeightKg,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return shipmentdomain.ErrTrackingNumberExists
			}
			return fmt.Errorf("insert shipment: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, s); err != nil {
				return fmt.Errorf("publish shipment created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a shipment by ID scoped to the owning user.
// Returns ErrShipmentNotFound if absent or owned by someone else.
func (r *ShipmentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1 AND user_id = $2`

	s, err := scanShipment(r.db.DB().QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shipmentdomain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("query shipment: %w", err)
	}
	return s, nil
}

// FindByUserID retrieves all shipments owned by the given user, newest first.
func (r *ShipmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.DB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close()

	var out []*models.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shipments: %w", err)
	}
	return out, nil
}

// Update persists changes to an existing shipment and, when prev differs from
// the current status, publishes a ShipmentStatusChangedEvent in the same
// transaction. Returns ErrShipmentNotFound when no row matched.
func (r *ShipmentRepository) Update(ctx context.Context, s *models.Shipment, prev models.Status) error {
	const query = `
		UPDATE shipments SET
			tracking_number = $3, description = $4,
			sender_name = $5, sender_address = $6,
			recipient_name = $7, recipient_address = $8,
			carrier = $9, origin = $10, destination = $11,
			status = $12, shipping_method = $13, priority = $14,
			is_priority = $15, is_insured = $16, requires_signature = $17, is_fragile = $18,
			weight_kg = $19, length_cm = $20, width_cm = $21, height_cm = $22,
			distance_km = $23, declared_value = $24,
			shipping_cost_override = $25,
			estimated_delivery_date = $26, shipped_at = $27, delivered_at = $28,
			estimated_delivery_days = $29, shipping_cost = $30, insurance_cost = $31,
			total_cost = $32, volumetric_weight_kg = $33, chargeable_weight_kg = $34
		WHERE id = $1 AND user_id = $2`

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			s.ID, s.UserID,
			s.TrackingNumber.String(), s.Description,
			s.SenderName, s.SenderAddress,
			s.RecipientName, s.RecipientAddress,
			s.Carrier, s.Origin, s.Destination,
			s.Status.String(), s.ShippingMethod.String(), s.Priority.String(),
			s.IsPriority, s.IsInsured, s.RequiresSignature, s.IsFragile,
			s.WeightKg, s.LengthCm, s.WidthCm, s.HeightCm,
			s.DistanceKm, s.DeclaredValue,
			s.ShippingCostOverride,
			s.EstimatedDeliveryDate, s.ShippedAt, s.DeliveredAt,
			s.EstimatedDeliveryDays, s.ShippingCost, s.InsuranceCost,
			s.TotalCost, s.VolumetricWeightKg, s.ChargeableWeightKg,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return shipmentdomain.ErrTrackingNumberExists
			}
			return fmt.Errorf("update shipment: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return shipmentdomain.ErrShipmentNotFound
		}

		if r.bus != nil && prev != s.Status {
			if err := r.publishStatusChanged(tx, s, prev); err != nil {
				return fmt.Errorf("publish status changed: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a shipment by ID scoped to the owning user.
// Returns ErrShipmentNotFound when nothing was deleted.
func (r *ShipmentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM shipments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return shipmentdomain.ErrShipmentNotFound
	}
	return nil
}

func (r *ShipmentRepository) publishCreated(tx *sql.Tx, s *models.Shipment) error {
	event := domainevents.ShipmentCreatedEvent{
		EventID:        uuid.New(),
		Version:        1,
		ShipmentID:     s.ID,
		UserID:         s.UserID,
		TrackingNumber: s.TrackingNumber.String(),
		Status:         s.Status,
		OccurredAt:     s.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicShipmentCreated, event.EventID, event)
}

func (r *ShipmentRepository) publishStatusChanged(tx *sql.Tx, s *models.Shipment, prev models.Status) error {
	event := domainevents.ShipmentStatusChangedEvent{
		EventID:        uuid.New(),
		Version:        1,
		ShipmentID:     s.ID,
		UserID:         s.UserID,
		TrackingNumber: s.TrackingNumber.String(),
		From:           prev,
		To:             s.Status,
		OccurredAt:     time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicShipmentStatusChanged, event.EventID, event)
}

func (r *ShipmentRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (*models.Shipment, error) {
	var s models.Shipment
	var trackingNumber, status, method, priority string

	err := row.Scan(
		&s.ID, &s.UserID, &trackingNumber, &s.Description,
		&s.SenderName, &s.SenderAddress, &s.RecipientName, &s.RecipientAddress,
		&s.Carrier, &s.Origin, &s.Destination,
		&status, &method, &priority,
		&s.IsPriority, &s.IsInsured, &s.RequiresSignature, &s.IsFragile,
		&s.WeightKg, &s.LengthCm, &s.WidthCm, &s.HeightCm, &s.DistanceKm, &s.DeclaredValue,
		&s.ShippingCostOverride,
		&s.CreatedAt, &s.EstimatedDeliveryDate, &s.ShippedAt, &s.DeliveredAt,
		&s.EstimatedDeliveryDays, &s.ShippingCost, &s.InsuranceCost, &s.TotalCost,
		&s.VolumetricWeightKg, &s.ChargeableWeightKg,
	)
	if err != nil {
		return nil, err
	}

	s.TrackingNumber = models.TrackingNumber(trackingNumber)
	s.Status = models.Status(status)
	s.ShippingMethod = models.ShippingMethod(method)
	s.Priority = models.Priority(priority)
	return &s, nil
}
