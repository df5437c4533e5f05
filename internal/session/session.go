// Package session implements the signed cookie session used to carry the
// authenticated user's identity between requests.
//
// The cookie stores at most a single user id. It is signed with a
// process-wide secret, so a tampered or foreign cookie decodes as anonymous
// rather than as an error.
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/mkazakov/go-blog/internal/config"
	"github.com/mkazakov/go-blog/internal/logger"
)

const (
	// DefaultCookieName is used when no cookie name is configured.
	DefaultCookieName = "blog_session"

	// userIDKey is the only key ever written into the session values.
	userIDKey = "user_id"
)

// Manager reads and writes the session cookie. It is safe for concurrent
// use; all state is read-only after construction.
type Manager struct {
	store  *sessions.CookieStore
	name   string
	logger *logger.Logger
}

// NewManager constructs a Manager signing cookies with cfg.SessionSecret.
//
// The cookie is scoped to the whole site and marked HttpOnly so that it is
// not reachable from scripts.
func NewManager(cfg config.App, log *logger.Logger) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // session cookie, dropped when the browser closes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	name := cfg.SessionCookieName
	if name == "" {
		name = DefaultCookieName
	}

	log.Debug().Str("cookie", name).Msg("session manager created")

	return &Manager{
		store:  store,
		name:   name,
		logger: log,
	}
}

// UserID returns the user id carried by the request's session cookie.
//
// The second return value is false when the cookie is absent, carries no
// user id, or fails signature verification. Verification failures are
// treated as an anonymous request, not an error.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		// Tampered or stale cookie. Log and treat as anonymous.
		m.logger.Debug().Err(err).Msg("session cookie failed to decode")
		return 0, false
	}

	userID, ok := s.Values[userIDKey].(int64)
	if !ok || userID == 0 {
		return 0, false
	}

	return userID, true
}

// SaveUserID replaces the session contents with the given user id and
// writes the signed cookie to the response. Any values a prior session may
// have carried are discarded first.
func (m *Manager) SaveUserID(w http.ResponseWriter, r *http.Request, userID int64) error {
	s, _ := m.store.Get(r, m.name)

	for key := range s.Values {
		delete(s.Values, key)
	}
	s.Values[userIDKey] = userID

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error saving session cookie: %w", err)
	}

	return nil
}

// Clear removes the session cookie. Clearing an absent session is a no-op
// and never fails for that reason.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)

	for key := range s.Values {
		delete(s.Values, key)
	}
	s.Options.MaxAge = -1 // instruct the browser to drop the cookie

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error clearing session cookie: %w", err)
	}

	return nil
}
