package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(verifier TokenVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()

	handlers := append([]gin.HandlerFunc{AuthMiddleware(verifier)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}

		fromCtx, _ := ClaimsFromContext(c.Request.Context())
		userID, _ := GetUserID(c)

		c.JSON(http.StatusOK, gin.H{
			"id":        userID,
			"role":      claims.Role,
			"ctx_email": fromCtx.Email,
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func doRequest(router http.Handler, header string) (*httptest.ResponseRecorder, map[string]string) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := map[string]string{}
	_ = json.Unmarshal(w.Body.Bytes(), &body) //nolint:errcheck // asserted via fields

	return w, body
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newProtectedRouter(newTestTokenService(t))

	w, body := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header missing.", body["error"])
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := newProtectedRouter(newTestTokenService(t))

	for _, header := range []string{"Bearer", "Bearer ", "Bearer    "} {
		w, body := doRequest(router, header)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, MsgTokenMissing, body["error"], "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newProtectedRouter(newTestTokenService(t))

	w, body := doRequest(router, "Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, MsgTokenInvalid, body["error"])
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	svc := newTestTokenService(t)
	router := newProtectedRouter(svc)

	token, err := svc.Issue("user-1", "a@example.com", RoleUser)
	require.NoError(t, err)

	w, body := doRequest(router, "Basic "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, MsgTokenInvalid, body["error"])
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := newTestTokenService(t)
	router := newProtectedRouter(svc)

	token, err := svc.Issue("user-1", "a@example.com", RoleUser)
	require.NoError(t, err)

	w, body := doRequest(router, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", body["id"])
	assert.Equal(t, RoleUser, body["role"])
	assert.Equal(t, "a@example.com", body["ctx_email"])
}

func TestAuthMiddleware_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Now()
	now := issuedAt

	svc := newTestTokenService(t, WithClock(func() time.Time { return now }))
	router := newProtectedRouter(svc)

	token, err := svc.Issue("user-1", "a@example.com", RoleUser)
	require.NoError(t, err)

	now = issuedAt.Add(59 * time.Minute)
	w, _ := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	now = issuedAt.Add(61 * time.Minute)
	w, body := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, MsgTokenInvalid, body["error"])
}

func TestRequireRole(t *testing.T) {
	svc := newTestTokenService(t)
	router := newProtectedRouter(svc, RequireRole(RoleAdmin))

	userToken, err := svc.Issue("user-1", "a@example.com", RoleUser)
	require.NoError(t, err)

	w, body := doRequest(router, "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, MsgForbiddenRole, body["error"])

	adminToken, err := svc.Issue("admin-1", "root@example.com", RoleAdmin)
	require.NoError(t, err)

	w, _ = doRequest(router, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
