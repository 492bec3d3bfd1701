package handlers

import (
	"net/http"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
)

// StatsResponse aggregates the caller's full shipment collection.
type StatsResponse struct {
	Total         int            `json:"total"          example:"42"`
	ByStatus      map[string]int `json:"by_status"`
	PriorityCount int            `json:"priority_count" example:"7"`
	InsuredCount  int            `json:"insured_count"  example:"12"`
	TotalValue    float64        `json:"total_value"    example:"3150.75"`
} // @name StatsResponse

// GetStatsHandler handles GET /shipments/stats requests.
type GetStatsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatsHandler returns a GetStatsHandler backed by the given services.
func NewGetStatsHandler(svc *appsvcs.Services) *GetStatsHandler {
	return &GetStatsHandler{svc: svc}
}

// Execute returns collection-level aggregates.
//
//	@Summary		Shipment stats
//	@Description	Totals by status plus priority, insured, and value aggregates
//	@Tags			shipments
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/shipments/stats [get]
func (h *GetStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	stats, err := h.svc.Shipment.Stats(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[status.String()] = n
	}
	httpx.JSON(w, http.StatusOK, StatsResponse{
		Total:         stats.Total,
		ByStatus:      byStatus,
		PriorityCount: stats.PriorityCount,
		InsuredCount:  stats.InsuredCount,
		TotalValue:    stats.TotalValue,
	})
}
