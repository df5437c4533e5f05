package http

import (
	"net/http"

	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/utils"
)

// getCurrentUser reports the authenticated account as JSON. The route is
// wrapped with [Handler.RequireUser], so by the time this handler runs the
// request context always carries a resolved identity.
//
// The User json tags keep the id and the password hash out of the payload.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		// unreachable behind the guard, kept for direct calls
		http.Redirect(w, r, LoginPath, http.StatusFound)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing current user")
	}
}
