package controllers

import (
	"net/http"

	"github.com/foodshare-app/foodshare_backend/database"
	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/gin-gonic/gin"
)

// GetProfileStats godoc
// @Summary Get profile details and activity counters
// @Description Returns the caller's profile with listing counters for providers and request counters for receivers
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile stats"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/user/profile-stats [get]
func GetProfileStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	role := c.MustGet("userRole").(models.Role)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if role == models.RoleProvider {
		var total, donated, expired int64
		database.DB.Model(&models.FoodListing{}).Where("provider_id = ?", userID).Count(&total)
		database.DB.Model(&models.FoodListing{}).
			Where("provider_id = ? AND status = ?", userID, models.ListingDonated).Count(&donated)
		database.DB.Model(&models.FoodListing{}).
			Where("provider_id = ? AND status = ?", userID, models.ListingExpired).Count(&expired)

		c.JSON(http.StatusOK, gin.H{
			"role":              user.Role,
			"name":              user.Name,
			"email":             user.Email,
			"contact_number":    user.ContactNumber,
			"address":           user.Address,
			"organization_name": user.OrganizationName,
			"stats": gin.H{
				"total":   total,
				"donated": donated,
				"expired": expired,
			},
		})
		return
	}

	var total, accepted, rejected, pending int64
	database.DB.Model(&models.DonationRequest{}).Where("receiver_id = ?", userID).Count(&total)
	database.DB.Model(&models.DonationRequest{}).
		Where("receiver_id = ? AND status = ?", userID, models.RequestAccepted).Count(&accepted)
	database.DB.Model(&models.DonationRequest{}).
		Where("receiver_id = ? AND status = ?", userID, models.RequestRejected).Count(&rejected)
	database.DB.Model(&models.DonationRequest{}).
		Where("receiver_id = ? AND status = ?", userID, models.RequestPending).Count(&pending)

	c.JSON(http.StatusOK, gin.H{
		"role":  user.Role,
		"name":  user.Name,
		"email": user.Email,
		"stats": gin.H{
			"total_requests": total,
			"accepted":       accepted,
			"rejected":       rejected,
			"pending":        pending,
		},
	})
}
