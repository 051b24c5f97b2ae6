package handlers

import (
	"net/http"
	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
)

// getOrCreateEventConfig returns the singleton config row, creating it with
// defaults on first read.
func getOrCreateEventConfig() *models.EventConfig {
	var cfg models.EventConfig
	if err := database.DB.First(&cfg).Error; err == nil {
		if cfg.PublicURL == "" {
			cfg.PublicURL = config.AppConfig.PublicURL
		}
		return &cfg
	}

	cfg = models.EventConfig{
		EventName:                 config.AppConfig.AppName,
		EnableDietaryRestrictions: true,
		EnableSpecialNeeds:        true,
		PublicURL:                 config.AppConfig.PublicURL,
	}
	database.DB.Create(&cfg)
	return &cfg
}

// GET /api/settings
func GetSettings(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", getOrCreateEventConfig())
}

// PUT /api/settings
func UpdateSettings(c *gin.Context) {
	var req models.UpdateEventConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	cfg := getOrCreateEventConfig()

	updates := map[string]interface{}{}
	if req.EventName != "" {
		updates["event_name"] = req.EventName
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.WeddingDate != "" {
		updates["wedding_date"] = req.WeddingDate
	}
	if req.CeremonyTime != "" {
		updates["ceremony_time"] = req.CeremonyTime
	}
	if req.ReceptionTime != "" {
		updates["reception_time"] = req.ReceptionTime
	}
	if req.RSVPDeadline != "" {
		updates["rsvp_deadline"] = req.RSVPDeadline
	}
	if req.EnableDietaryRestrictions != nil {
		updates["enable_dietary_restrictions"] = *req.EnableDietaryRestrictions
	}
	if req.EnableSpecialNeeds != nil {
		updates["enable_special_needs"] = *req.EnableSpecialNeeds
	}
	if req.PublicURL != "" {
		updates["public_url"] = req.PublicURL
	}
	if req.EmbedEnabled != nil {
		updates["embed_enabled"] = *req.EmbedEnabled
	}

	if len(updates) > 0 {
		database.DB.Model(cfg).Updates(updates)
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated", cfg)
}
