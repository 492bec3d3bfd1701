package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/pkg/httpx"
	"github.com/ghuser/shipstream/pkg/logger"
)

// PostLogoutHandler handles POST /auth/logout requests.
type PostLogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewPostLogoutHandler returns a PostLogoutHandler backed by the given session store.
func NewPostLogoutHandler(store sessions.Store, log logger.Logger) *PostLogoutHandler {
	return &PostLogoutHandler{store: store, log: log}
}

// Execute terminates the current session. Idempotent: logging out without a
// session still returns 200.
//
//	@Summary		Logout
//	@Description	Deletes the server-side session and expires the cookie
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, auth.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to delete session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to end session")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
