// Package ai generates natural-language shipment summaries via an
// OpenAI-compatible chat completions endpoint, with a deterministic
// offline fallback when no API key is configured.
package ai

import (
	"context"

	"github.com/ghuser/shipstream/pkg/config"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// Client produces a human-readable summary of a shipment.
type Client interface {
	SummarizeShipment(ctx context.Context, s *models.Shipment) (string, error)
}

// New returns an OpenAI-backed client when an API key is configured,
// otherwise the offline fallback client.
func New(cfg *config.Config) Client {
	if cfg.AIAPIKey == "" {
		return NewFallback()
	}
	return NewOpenAI(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)
}
