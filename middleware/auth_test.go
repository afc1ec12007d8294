package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/foodshare-app/foodshare_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", JWTAuth())
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.MustGet("userID").(uint),
			"role":   c.MustGet("userRole").(models.Role),
		})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	router := protectedRouter("")

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer not-a-token").Code)

	token, err := utils.GenerateToken(42, models.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(router, "Bearer "+token).Code)
}

func TestRequireRole(t *testing.T) {
	router := protectedRouter(models.RoleProvider)

	providerToken, err := utils.GenerateToken(1, models.RoleProvider)
	require.NoError(t, err)
	receiverToken, err := utils.GenerateToken(2, models.RoleReceiver)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(router, "Bearer "+providerToken).Code)
	assert.Equal(t, http.StatusForbidden, get(router, "Bearer "+receiverToken).Code)
}
