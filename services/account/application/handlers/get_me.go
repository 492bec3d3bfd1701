package handlers

import (
	"net/http"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	appsvcs "github.com/ghuser/shipstream/services/account/application/services"
)

// GetMeHandler handles GET /auth/me requests.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute returns the currently authenticated user.
//
//	@Summary		Current user
//	@Description	Returns the account of the authenticated session
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.svc.Account.GetByID(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UserResponse{
		ID:        user.ID,
		Username:  user.Username.String(),
		CreatedAt: user.CreatedAt,
	})
}
