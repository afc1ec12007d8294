package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/foodshare-app/foodshare_backend/database"
	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateRequestInput struct {
	ListingID uint `json:"listing_id" binding:"required" example:"1"`
}

type ResolveRequestInput struct {
	RequestID uint   `json:"request_id" binding:"required" example:"1"`
	Action    string `json:"action" binding:"required,oneof=accept reject" example:"accept"`
}

var (
	errListingNotFound    = errors.New("listing not found")
	errListingUnavailable = errors.New("listing not available")
	errDuplicateRequest   = errors.New("duplicate request")
	errRequestNotFound    = errors.New("request not found")
	errAlreadyProcessed   = errors.New("request already processed")
)

// allowRerequestAfterReject reports whether a Rejected request stops
// blocking a fresh request by the same receiver for the same listing.
func allowRerequestAfterReject() bool {
	return os.Getenv("ALLOW_REREQUEST_AFTER_REJECT") == "true"
}

// CreateRequest godoc
// @Summary Request food from a listing
// @Description Creates a pending donation request for an available listing
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequestInput true "Request Creation"
// @Success 201 {object} map[string]interface{} "Request created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Listing not found"
// @Failure 409 {object} map[string]string "Listing unavailable or already requested"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/donation/request [post]
func CreateRequest(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Sweep before the availability check so a request against a
	// just-expired listing is refused, not silently accepted.
	if err := sweepExpiredListings(database.DB, time.Now().UTC()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh listing state"})
		return
	}

	var request models.DonationRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.FoodListing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&listing, input.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errListingNotFound
			}
			return err
		}

		if listing.Status != models.ListingAvailable {
			return errListingUnavailable
		}

		existing := tx.Where("listing_id = ? AND receiver_id = ?", listing.ID, userID)
		if allowRerequestAfterReject() {
			existing = existing.Where("status <> ?", models.RequestRejected)
		}
		var count int64
		if err := existing.Model(&models.DonationRequest{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicateRequest
		}

		request = models.DonationRequest{
			ListingID:  listing.ID,
			ReceiverID: userID,
			Status:     models.RequestPending,
		}
		return tx.Create(&request).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message": "Food request sent successfully",
			"request": request,
		})
	case errors.Is(err, errListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Food listing not found"})
	case errors.Is(err, errListingUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Food is not available"})
	case errors.Is(err, errDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "You already requested this food"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
	}
}

// ResolveRequest godoc
// @Summary Accept or reject a donation request
// @Description Accepting marks the listing Donated and rejects every other pending request on it in the same transaction
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resolution body ResolveRequestInput true "Request Resolution"
// @Success 200 {object} map[string]string "Request resolved successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already processed"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/donation/request/update [post]
func ResolveRequest(c *gin.Context) {
	var input ResolveRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Both rows are locked FOR UPDATE before any status read, so two
	// concurrent accepts on the same listing serialize: the loser sees a
	// request that is no longer Pending and fails with a conflict.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request models.DonationRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, input.RequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRequestNotFound
			}
			return err
		}

		if request.Status != models.RequestPending {
			return errAlreadyProcessed
		}

		var listing models.FoodListing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&listing, request.ListingID).Error; err != nil {
			return err
		}

		if input.Action == "accept" {
			if listing.Status == models.ListingDonated {
				return errAlreadyProcessed
			}

			request.Status = models.RequestAccepted
			if err := tx.Save(&request).Error; err != nil {
				return err
			}

			// First accepted request wins: every competing pending
			// request loses in the same unit of work.
			if err := tx.Model(&models.DonationRequest{}).
				Where("listing_id = ? AND id <> ? AND status = ?",
					listing.ID, request.ID, models.RequestPending).
				Update("status", models.RequestRejected).Error; err != nil {
				return err
			}

			return tx.Model(&listing).Update("status", models.ListingDonated).Error
		}

		request.Status = models.RequestRejected
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		var pending int64
		if err := tx.Model(&models.DonationRequest{}).
			Where("listing_id = ? AND status = ?", listing.ID, models.RequestPending).
			Count(&pending).Error; err != nil {
			return err
		}

		// With no pending claimants left the listing is requestable again,
		// unless it has already been donated or has expired.
		if pending == 0 && listing.Status != models.ListingDonated && listing.Status != models.ListingExpired {
			return tx.Model(&listing).Update("status", models.ListingAvailable).Error
		}
		return nil
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Request " + input.Action + "ed successfully"})
	case errors.Is(err, errRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
	case errors.Is(err, errAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": "Request already processed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve request"})
	}
}

// GetProviderRequests godoc
// @Summary List pending requests on the provider's listings
// @Description Returns pending donation requests for listings owned by the given provider, newest first
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Success 200 {array} map[string]interface{} "Pending requests"
// @Failure 400 {object} map[string]string "Invalid provider ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/provider/{id}/requests [get]
func GetProviderRequests(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider ID"})
		return
	}

	if uint(providerID) != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view requests for your own listings"})
		return
	}

	var requests []models.DonationRequest
	if err := database.DB.
		Joins("JOIN food_listings ON food_listings.id = donation_requests.listing_id").
		Where("food_listings.provider_id = ? AND donation_requests.status = ?",
			providerID, models.RequestPending).
		Order("donation_requests.created_at DESC").
		Preload("Listing").Preload("Receiver").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	result := make([]gin.H, 0, len(requests))
	for _, req := range requests {
		result = append(result, gin.H{
			"request_id": req.ID,
			"status":     req.Status,
			"created_at": req.CreatedAt,
			"listing": gin.H{
				"id":             req.Listing.ID,
				"food_item_name": req.Listing.FoodItemName,
				"quantity":       req.Listing.Quantity,
				"pickup_address": req.Listing.PickupAddress,
				"status":         req.Listing.Status,
			},
			"receiver": gin.H{
				"id":    req.Receiver.ID,
				"name":  req.Receiver.Name,
				"email": req.Receiver.Email,
			},
		})
	}

	c.JSON(http.StatusOK, result)
}

// GetReceiverRequests godoc
// @Summary List the receiver's own requests
// @Description Returns all of the authenticated receiver's requests in any status, newest first
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{} "Receiver's requests"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/receiver/my-requests [get]
func GetReceiverRequests(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var requests []models.DonationRequest
	if err := database.DB.Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Preload("Listing").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	result := make([]gin.H, 0, len(requests))
	for _, req := range requests {
		result = append(result, gin.H{
			"request_id": req.ID,
			"status":     req.Status,
			"created_at": req.CreatedAt,
			"listing": gin.H{
				"id":             req.Listing.ID,
				"food_item_name": req.Listing.FoodItemName,
				"quantity":       req.Listing.Quantity,
				"pickup_address": req.Listing.PickupAddress,
				"status":         req.Listing.Status,
			},
		})
	}

	c.JSON(http.StatusOK, result)
}
