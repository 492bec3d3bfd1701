package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

const (
	// ShipmentCacheTTL is the time-to-live for cached shipments.
	ShipmentCacheTTL = 24 * time.Hour

	shipmentCacheKeyPrefix = "shipment"
)

// ShipmentCache provides read/write operations for shipment cache entries.
// Entries are JSON-encoded full aggregates; the shipment model is wide enough
// that a field-per-hash-entry layout buys nothing.
// Keys are scoped by userID to prevent cross-tenant data leakage.
// Key format: "shipment:{userID}:{shipmentID}"
type ShipmentCache struct {
	client *RedisClient
}

// NewShipmentCache creates a new ShipmentCache backed by the given RedisClient.
func NewShipmentCache(r *RedisClient) *ShipmentCache {
	return &ShipmentCache{client: r}
}

// Get retrieves a cached shipment by user + shipment ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ShipmentCache) Get(ctx context.Context, userID, shipmentID uuid.UUID) (*models.Shipment, error) {
	data, err := c.client.Client().Get(ctx, c.key(userID, shipmentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var s models.Shipment
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &s, nil
}

// Set writes a cached shipment with a 24-hour TTL.
func (c *ShipmentCache) Set(ctx context.Context, s *models.Shipment) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	key := c.key(s.UserID, s.ID)
	if err := c.client.Client().Set(ctx, key, data, ShipmentCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached shipment.
func (c *ShipmentCache) Delete(ctx context.Context, userID, shipmentID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, shipmentID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "shipment:{userID}:{shipmentID}"
func (c *ShipmentCache) key(userID, shipmentID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", shipmentCacheKeyPrefix, userID, shipmentID)
}
