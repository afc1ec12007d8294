package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/foodshare-app/foodshare_backend/database"
	"github.com/foodshare-app/foodshare_backend/middleware"
	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/foodshare-app/foodshare_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires the package-level database handle to a fresh in-memory
// sqlite database and returns a router with the production route table.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.FoodListing{}, &models.DonationRequest{}))

	database.DB = db

	router := gin.New()

	auth := router.Group("/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}

	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/food/available", GetAvailableListings)
		api.GET("/user/profile-stats", GetProfileStats)

		provider := api.Group("/")
		provider.Use(middleware.RequireRole(models.RoleProvider))
		{
			provider.POST("/food/create", CreateListing)
			provider.GET("/food/my-listings", GetMyListings)
			provider.PUT("/food/update/:id", UpdateListing)
			provider.DELETE("/food/delete/:id", DeleteListing)
			provider.GET("/provider/:id/requests", GetProviderRequests)
			provider.POST("/donation/request/update", ResolveRequest)
		}

		receiver := api.Group("/")
		receiver.Use(middleware.RequireRole(models.RoleReceiver))
		{
			receiver.POST("/donation/request", CreateRequest)
			receiver.GET("/receiver/my-requests", GetReceiverRequests)
		}
	}

	return router
}

// createUser inserts a user directly and mints a token for it.
func createUser(t *testing.T, name string, role models.Role) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret123",
		Role:     role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)

	return user, token
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
