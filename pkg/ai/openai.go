package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

const systemPrompt = "You are a logistics assistant. Write a concise, factual " +
	"summary of the shipment in 2-4 sentences. Mention the route, current " +
	"status, delivery estimate, and total cost. Do not invent details."

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewOpenAI returns a Client that calls an OpenAI-compatible
// /v1/chat/completions endpoint.
func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) SummarizeShipment(ctx context.Context, s *models.Shipment) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": renderShipmentPrompt(s)},
		},
		"temperature": 0.2,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat completions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions returned status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completions returned no choices")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completions returned empty content")
	}
	return content, nil
}

// renderShipmentPrompt flattens the shipment into a compact key/value block.
// Only fields useful for a summary are included.
func renderShipmentPrompt(s *models.Shipment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tracking_number: %s\n", s.TrackingNumber)
	fmt.Fprintf(&b, "status: %s\n", s.Status)
	fmt.Fprintf(&b, "carrier: %s\n", s.Carrier)
	fmt.Fprintf(&b, "route: %s -> %s\n", s.Origin, s.Destination)
	fmt.Fprintf(&b, "shipping_method: %s\n", s.ShippingMethod)
	fmt.Fprintf(&b, "priority: %s\n", s.Priority)
	fmt.Fprintf(&b, "sender: %s\n", s.SenderName)
	fmt.Fprintf(&b, "recipient: %s\n", s.RecipientName)
	fmt.Fprintf(&b, "weight_kg: %.2f (chargeable %.2f)\n", s.WeightKg, s.ChargeableWeightKg)
	fmt.Fprintf(&b, "distance_km: %.0f\n", s.DistanceKm)
	fmt.Fprintf(&b, "insured: %t, fragile: %t, signature_required: %t\n", s.IsInsured, s.IsFragile, s.RequiresSignature)
	fmt.Fprintf(&b, "total_cost: %.2f (shipping %.2f, insurance %.2f)\n", s.TotalCost, s.ShippingCost, s.InsuranceCost)
	fmt.Fprintf(&b, "estimated_delivery: %s (%d days)\n", s.EstimatedDeliveryDate.Format("2006-01-02"), s.EstimatedDeliveryDays)
	if s.ShippedAt != nil {
		fmt.Fprintf(&b, "shipped_at: %s\n", s.ShippedAt.Format("2006-01-02"))
	}
	if s.DeliveredAt != nil {
		fmt.Fprintf(&b, "delivered_at: %s\n", s.DeliveredAt.Format("2006-01-02"))
	}
	return b.String()
}
