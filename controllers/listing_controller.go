package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foodshare-app/foodshare_backend/database"
	"github.com/foodshare-app/foodshare_backend/mailer"
	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateListingInput struct {
	FoodItemName       string `json:"food_item_name" binding:"required" example:"Vegetable curry"`
	Quantity           int    `json:"quantity" binding:"required,gt=0" example:"10"`
	ExpiryDatetime     string `json:"expiry_datetime" binding:"required" example:"2026-01-02T15:04"`
	PickupAddress      string `json:"pickup_address" binding:"required" example:"12 Main St"`
	PickupInstructions string `json:"pickup_instructions" example:"Ring the back bell"`
	ContactPersonName  string `json:"contact_person_name" binding:"required" example:"Jane Doe"`
	ContactPersonPhone string `json:"contact_person_phone" binding:"required" example:"+1-555-0100"`
}

type UpdateListingInput struct {
	FoodItemName       *string `json:"food_item_name"`
	Quantity           *int    `json:"quantity"`
	ExpiryDatetime     *string `json:"expiry_datetime"`
	PickupAddress      *string `json:"pickup_address"`
	PickupInstructions *string `json:"pickup_instructions"`
	ContactPersonName  *string `json:"contact_person_name"`
	ContactPersonPhone *string `json:"contact_person_phone"`
}

// Accepted expiry layouts, with and without seconds. All instants are UTC.
const (
	expiryLayoutSeconds = "2006-01-02T15:04:05"
	expiryLayoutMinutes = "2006-01-02T15:04"
)

func parseExpiry(value string) (time.Time, error) {
	t, err := time.ParseInLocation(expiryLayoutSeconds, value, time.UTC)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(expiryLayoutMinutes, value, time.UTC)
}

// sweepExpiredListings transitions every Available listing whose expiry has
// passed to Expired, as one batched update. Donated listings are never
// touched, so a completed donation cannot be expired retroactively.
func sweepExpiredListings(db *gorm.DB, now time.Time) error {
	return db.Model(&models.FoodListing{}).
		Where("status = ? AND expiry_datetime < ?", models.ListingAvailable, now).
		Update("status", models.ListingExpired).Error
}

// CreateListing godoc
// @Summary Create a food listing
// @Description Creates a listing for surplus food and notifies receivers by email
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body CreateListingInput true "Listing Creation"
// @Success 201 {object} map[string]interface{} "Listing created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/food/create [post]
func CreateListing(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, err := parseExpiry(input.ExpiryDatetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid datetime format. Use YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS"})
		return
	}

	// Status is server-computed: a listing born past its expiry is Expired.
	status := models.ListingAvailable
	if !expiry.After(time.Now().UTC()) {
		status = models.ListingExpired
	}

	listing := models.FoodListing{
		FoodItemName:       input.FoodItemName,
		Quantity:           input.Quantity,
		ExpiryDatetime:     expiry,
		PickupAddress:      input.PickupAddress,
		PickupInstructions: input.PickupInstructions,
		ContactPersonName:  input.ContactPersonName,
		ContactPersonPhone: input.ContactPersonPhone,
		Status:             status,
		ProviderID:         userID,
	}

	if err := database.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	// Best-effort side channel: the create transaction never waits on it.
	go mailer.NotifyNewListing(database.DB, listing)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food listing created successfully",
		"listing": listing,
	})
}

// GetAvailableListings godoc
// @Summary List available food listings
// @Description Returns available listings, filtered, sorted and paginated
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on food item name"
// @Param sort query string false "Sort order: latest, oldest or expiry"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} map[string]interface{} "Paginated listings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/food/available [get]
func GetAvailableListings(c *gin.Context) {
	if err := sweepExpiredListings(database.DB, time.Now().UTC()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh listing state"})
		return
	}

	query := database.DB.Model(&models.FoodListing{}).Where("status = ?", models.ListingAvailable)
	listListings(c, query)
}

// GetMyListings godoc
// @Summary List the provider's own listings
// @Description Returns the authenticated provider's listings in any status
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on food item name"
// @Param status query string false "Filter by listing status"
// @Param sort query string false "Sort order: latest, oldest or expiry"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} map[string]interface{} "Paginated listings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/food/my-listings [get]
func GetMyListings(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	if err := sweepExpiredListings(database.DB, time.Now().UTC()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh listing state"})
		return
	}

	query := database.DB.Model(&models.FoodListing{}).Where("provider_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	listListings(c, query)
}

// listListings applies the shared search/sort/pagination surface and writes
// the paginated response.
func listListings(c *gin.Context, query *gorm.DB) {
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(food_item_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var order string
	switch c.DefaultQuery("sort", "latest") {
	case "oldest":
		order = "created_at ASC"
	case "expiry":
		order = "expiry_datetime ASC"
	default:
		order = "created_at DESC"
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count listings"})
		return
	}

	var listings []models.FoodListing
	if err := query.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         listings,
		"total":        total,
		"pages":        int(math.Ceil(float64(total) / float64(limit))),
		"current_page": page,
	})
}

// UpdateListing godoc
// @Summary Update a food listing
// @Description Updates a subset of the fields of a listing owned by the caller
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param listing body UpdateListingInput true "Listing Update"
// @Success 200 {object} map[string]interface{} "Listing updated successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/food/update/{id} [put]
func UpdateListing(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	listingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	var input UpdateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var listing models.FoodListing
	if err := database.DB.Where("id = ? AND provider_id = ?", listingID, userID).
		First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found or unauthorized"})
		return
	}

	if input.FoodItemName != nil {
		listing.FoodItemName = *input.FoodItemName
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive number"})
			return
		}
		listing.Quantity = *input.Quantity
	}
	if input.ExpiryDatetime != nil {
		expiry, err := parseExpiry(*input.ExpiryDatetime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid datetime format. Use YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS"})
			return
		}
		listing.ExpiryDatetime = expiry
	}
	if input.PickupAddress != nil {
		listing.PickupAddress = *input.PickupAddress
	}
	if input.PickupInstructions != nil {
		listing.PickupInstructions = *input.PickupInstructions
	}
	if input.ContactPersonName != nil {
		listing.ContactPersonName = *input.ContactPersonName
	}
	if input.ContactPersonPhone != nil {
		listing.ContactPersonPhone = *input.ContactPersonPhone
	}

	// The status transition is server-computed, never client-settable.
	if listing.Status == models.ListingAvailable && listing.ExpiryDatetime.Before(time.Now().UTC()) {
		listing.Status = models.ListingExpired
	}

	if err := database.DB.Save(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

// DeleteListing godoc
// @Summary Delete a food listing
// @Description Deletes a listing owned by the caller along with all its donation requests
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]string "Listing deleted successfully"
// @Failure 400 {object} map[string]string "Invalid listing ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/food/delete/{id} [delete]
func DeleteListing(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	listingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	var listing models.FoodListing
	if err := database.DB.Where("id = ? AND provider_id = ?", listingID, userID).
		First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	// Requests and listing go in one unit of work so a failure midway
	// leaves no orphaned requests.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.DonationRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food listing deleted successfully"})
}
