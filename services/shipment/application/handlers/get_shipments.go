package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
	"github.com/ghuser/shipstream/services/shipment/domain/query"
)

// ListShipmentsResponse is one page of shipments plus paging aggregates.
// Total counts the collection after search and filters, before pagination.
type ListShipmentsResponse struct {
	Items      []ShipmentResponse `json:"items"`
	Total      int                `json:"total"       example:"42"`
	Page       int                `json:"page"        example:"1"`
	TotalPages int                `json:"total_pages" example:"5"`
} // @name ListShipmentsResponse

// GetShipmentsHandler handles GET /shipments requests.
type GetShipmentsHandler struct {
	svc *appsvcs.Services
}

// NewGetShipmentsHandler returns a GetShipmentsHandler backed by the given services.
func NewGetShipmentsHandler(svc *appsvcs.Services) *GetShipmentsHandler {
	return &GetShipmentsHandler{svc: svc}
}

// Execute lists the caller's shipments with search, filters, sort, and pagination.
//
//	@Summary		List shipments
//	@Description	Paginated, filterable, searchable, sortable shipment listing
//	@Tags			shipments
//	@Produce		json
//	@Param			search			query		string	false	"Substring match over tracking number, parties, route, and description"
//	@Param			status			query		string	false	"Comma-separated status filter (e.g. CREATED,IN_TRANSIT)"
//	@Param			method			query		string	false	"Comma-separated shipping method filter"
//	@Param			priority		query		string	false	"Comma-separated priority filter"
//	@Param			is_priority		query		bool	false	"Filter by priority flag"
//	@Param			is_insured		query		bool	false	"Filter by insured flag"
//	@Param			created_from	query		string	false	"Inclusive lower bound on creation time (RFC 3339)"
//	@Param			created_to		query		string	false	"Inclusive upper bound on creation time (RFC 3339)"
//	@Param			sort			query		string	false	"Sort field (default created_at)"
//	@Param			order			query		string	false	"Sort order: asc or desc"
//	@Param			page			query		int		false	"Page number (default 1)"
//	@Param			limit			query		int		false	"Page size (default 10, max 100)"
//	@Success		200				{object}	ListShipmentsResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/shipments [get]
func (h *GetShipmentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	params, err := parseQueryParams(r)
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.svc.Shipment.List(r.Context(), userID, params)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ShipmentResponse, len(res.Items))
	for i, s := range res.Items {
		items[i] = toShipmentResponse(s)
	}
	httpx.JSON(w, http.StatusOK, ListShipmentsResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		TotalPages: res.TotalPages,
	})
}

// parseQueryParams maps URL query values onto the query engine's Params.
// Set filters accept comma-separated values; invalid members are rejected
// rather than silently dropped.
func parseQueryParams(r *http.Request) (query.Params, error) {
	q := r.URL.Query()
	p := query.Params{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
	}

	for _, raw := range splitSet(q.Get("status")) {
		st, err := models.ParseStatus(raw)
		if err != nil {
			return query.Params{}, fmt.Errorf("status filter: %w", err)
		}
		p.Statuses = append(p.Statuses, st)
	}
	for _, raw := range splitSet(q.Get("method")) {
		m, err := models.ParseShippingMethod(raw)
		if err != nil {
			return query.Params{}, fmt.Errorf("method filter: %w", err)
		}
		p.Methods = append(p.Methods, m)
	}
	for _, raw := range splitSet(q.Get("priority")) {
		pr, err := models.ParsePriority(raw)
		if err != nil {
			return query.Params{}, fmt.Errorf("priority filter: %w", err)
		}
		p.Priorities = append(p.Priorities, pr)
	}

	var err error
	if p.IsPriority, err = parseBoolParam(q.Get("is_priority"), "is_priority"); err != nil {
		return query.Params{}, err
	}
	if p.IsInsured, err = parseBoolParam(q.Get("is_insured"), "is_insured"); err != nil {
		return query.Params{}, err
	}
	if p.CreatedFrom, err = parseTimeParam(q.Get("created_from"), "created_from"); err != nil {
		return query.Params{}, err
	}
	if p.CreatedTo, err = parseTimeParam(q.Get("created_to"), "created_to"); err != nil {
		return query.Params{}, err
	}
	if p.Page, err = parseIntParam(q.Get("page"), "page"); err != nil {
		return query.Params{}, err
	}
	if p.Limit, err = parseIntParam(q.Get("limit"), "limit"); err != nil {
		return query.Params{}, err
	}
	return p, nil
}

func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBoolParam(s, name string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean, got %q", name, s)
	}
	return &v, nil
}

func parseTimeParam(s, name string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC 3339, got %q", name, s)
	}
	return &t, nil
}

func parseIntParam(s, name string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return v, nil
}
