package http

import (
	"context"
	"net/http"

	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/utils"
	"github.com/mkazakov/go-blog/models"
)

// withCurrentUser is the identity-preload middleware. It runs once per
// request, before any handler logic, and resolves the session-carried user
// id to a *models.User stored in the request context under
// [utils.CurrentUserCtxKey].
//
// The request stays anonymous (no context value) when:
//   - the session cookie is absent or fails signature verification;
//   - the user id no longer resolves to an account (deleted user). This
//     case is silent: the stale cookie simply stops granting an identity.
//
// Storage failures other than a missing account are logged and also leave
// the request anonymous rather than failing it; the guarded handler then
// redirects to login, which is the safer degradation.
func (h *Handler) withCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.session.UserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		foundUser, err := h.services.AuthService.UserByID(ctx, userID)
		if err != nil {
			log.Debug().Err(err).Int64("user_id", userID).Msg("session user id did not resolve")
			next.ServeHTTP(w, r)
			return
		}

		user := foundUser
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, &user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser is the access guard for handlers that need an authenticated
// user. If the request context carries no resolved identity the guard
// short-circuits with a redirect to the login page and the wrapped handler
// is never invoked; otherwise the request passes through untouched.
//
// It composes with any http.Handler and is exported for feature modules
// outside this package (e.g. post editing).
//
// RequireUser must run after the identity preload; Init wires both in the
// right order for routes registered here.
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetCurrentUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// currentUser is a convenience accessor for handlers in this package.
func currentUser(r *http.Request) (*models.User, bool) {
	return utils.GetCurrentUserFromContext(r.Context())
}
