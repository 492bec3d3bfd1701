package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/pkg/errhttp"
	"github.com/ghuser/shipstream/pkg/httpx"
	pkgvalidator "github.com/ghuser/shipstream/pkg/validator"
	appsvcs "github.com/ghuser/shipstream/services/account/application/services"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64" example:"alice"`
	Password string `json:"password" validate:"required,min=4,max=128" example:"hunter22"`
} // @name RegisterRequest

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Username  string    `json:"username"   example:"alice"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"username already taken"`
} // @name ErrorResponse

// PostRegisterHandler handles POST /auth/register requests.
type PostRegisterHandler struct {
	svc *appsvcs.Services
}

// NewPostRegisterHandler returns a PostRegisterHandler backed by the given services.
func NewPostRegisterHandler(svc *appsvcs.Services) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc}
}

// Execute registers a new user account.
//
//	@Summary		Register user
//	@Description	Creates a new user account with a bcrypt-hashed password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, UserResponse{
		ID:        user.ID,
		Username:  user.Username.String(),
		CreatedAt: user.CreatedAt,
	})
}
