package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazakov/go-blog/models"
)

// TestGetCurrentUser_ReturnsJSON verifies the guarded route over a real
// session cookie: the payload carries the username but neither the id nor
// the password hash.
func TestGetCurrentUser_ReturnsJSON(t *testing.T) {
	user := models.User{UserID: 1, Username: "test", PasswordHash: "hash"}
	h := newHandlerWithAuth(t, serviceBackedAuth(user))
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loggedInRequest(t, h, "/api/user", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"username":"test"`)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "user_id")
}

// TestGetCurrentUser_RedirectsAnonymous verifies the RequireUser wrapper on
// the route: without a session the handler never runs.
func TestGetCurrentUser_RedirectsAnonymous(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}
