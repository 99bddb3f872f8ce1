package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter(t *testing.T, roles ...models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userId": CurrentUserID(ctx),
			"role":   CurrentRole(ctx),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := newProtectedRouter(t)

	require.Equal(t, http.StatusUnauthorized, doGet(router, "").Code)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "Basic abc").Code)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	// Supplied-but-bad credentials are a 403, not a 401.
	router := newProtectedRouter(t)

	require.Equal(t, http.StatusForbidden, doGet(router, "Bearer garbage").Code)

	expired, err := auth.IssueToken(testSecret, 1, models.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, doGet(router, "Bearer "+expired).Code)

	otherKey, err := auth.IssueToken("otro-secreto", 1, models.RoleAdmin, time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, doGet(router, "Bearer "+otherKey).Code)
}

func TestAuthMiddleware_AttachesClaims(t *testing.T) {
	router := newProtectedRouter(t)

	token, err := auth.IssueToken(testSecret, 42, models.RoleEmpleado, time.Minute)
	require.NoError(t, err)

	rec := doGet(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"userId":42,"role":"empleado"}`, rec.Body.String())
}

func TestRequireRoles(t *testing.T) {
	router := newProtectedRouter(t, models.RoleAdmin)

	empleado, err := auth.IssueToken(testSecret, 1, models.RoleEmpleado, time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, doGet(router, "Bearer "+empleado).Code)

	admin, err := auth.IssueToken(testSecret, 1, models.RoleAdmin, time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, doGet(router, "Bearer "+admin).Code)
}
