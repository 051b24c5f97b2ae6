package handlers

import (
	"net/http"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/services"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/notifications/send
func SendNotifications(c *gin.Context) {
	var req models.SendNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.Type == models.NotifyCustom && req.Message == "" {
		utils.BadRequest(c, "Custom notifications require a message")
		return
	}

	query := database.DB.Where("is_deleted = ?", false)
	if len(req.FamilyIDs) > 0 {
		familyIDs := make([]uuid.UUID, 0, len(req.FamilyIDs))
		for _, raw := range req.FamilyIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				utils.BadRequest(c, "Invalid family ID: "+raw)
				return
			}
			familyIDs = append(familyIDs, id)
		}
		query = query.Where("id IN ?", familyIDs)
	}

	var families []models.Family
	query.Find(&families)
	if len(families) == 0 {
		utils.NotFound(c, "No families to notify")
		return
	}

	cfg := getOrCreateEventConfig()
	results := services.GetNotifier().SendToFamilies(c.Request.Context(), families, req.Type, req.Message, cfg)

	utils.SuccessResponse(c, http.StatusOK, "Notifications dispatched", results)
}

// GET /api/notifications
func GetNotifications(c *gin.Context) {
	query := database.DB.Order("created_at DESC")

	if familyParam := c.Query("family_id"); familyParam != "" {
		familyID, err := uuid.Parse(familyParam)
		if err != nil {
			utils.BadRequest(c, "Invalid family ID")
			return
		}
		query = query.Where("family_id = ?", familyID)
	}

	var notifications []models.Notification
	query.Find(&notifications)

	utils.SuccessResponse(c, http.StatusOK, "", notifications)
}
