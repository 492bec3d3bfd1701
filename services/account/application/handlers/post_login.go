package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	"github.com/ghuser/shipstream/pkg/logger"
	pkgvalidator "github.com/ghuser/shipstream/pkg/validator"
	appsvcs "github.com/ghuser/shipstream/services/account/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"hunter22"`
} // @name LoginRequest

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services and session store.
func NewPostLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and starts an authenticated session.
//
//	@Summary		Login
//	@Description	Verifies credentials and sets an encrypted session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	session, err := h.store.Get(r, auth.SessionName)
	if err != nil {
		// Tampered or stale cookie; Get still returns a usable fresh session.
		h.log.WarnContext(r.Context(), "resetting invalid session", "error", err)
	}
	session.Values[auth.SessionUserIDKey] = user.ID.String()
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to save session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	httpx.JSON(w, http.StatusOK, UserResponse{
		ID:        user.ID,
		Username:  user.Username.String(),
		CreatedAt: user.CreatedAt,
	})
}
