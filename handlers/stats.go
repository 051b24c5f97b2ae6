package handlers

import (
	"encoding/json"
	"net/http"
	"time"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 30 * time.Second
)

// GET /api/stats
func GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if database.Redis != nil {
		if cached, err := database.Redis.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats models.StatsResponse
			if json.Unmarshal([]byte(cached), &stats) == nil {
				utils.SuccessResponse(c, http.StatusOK, "", stats)
				return
			}
		}
	}

	stats := models.StatsResponse{
		FamiliesByStatus: map[string]int64{},
	}

	database.DB.Model(&models.Family{}).Where("is_deleted = ?", false).Count(&stats.TotalFamilies)

	rows, err := database.DB.Model(&models.Family{}).
		Select("confirmation_status, COUNT(*) as count").
		Where("is_deleted = ?", false).
		Group("confirmation_status").
		Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var status string
			var count int64
			if err := rows.Scan(&status, &count); err == nil {
				stats.FamiliesByStatus[status] = count
			}
		}
	}

	database.DB.Model(&models.Guest{}).Where("is_deleted = ?", false).Count(&stats.TotalGuests)
	database.DB.Model(&models.Guest{}).Where("is_deleted = ? AND confirmed = ?", false, true).Count(&stats.ConfirmedGuests)
	database.DB.Model(&models.Guest{}).Where("is_deleted = ? AND guest_type = ?", false, models.GuestAdult).Count(&stats.Adults)
	database.DB.Model(&models.Guest{}).Where("is_deleted = ? AND guest_type = ?", false, models.GuestChild).Count(&stats.Children)

	database.DB.Model(&models.Table{}).Where("is_deleted = ?", false).Count(&stats.TotalTables)
	database.DB.Model(&models.Seat{}).Where("is_deleted = ?", false).Count(&stats.TotalSeats)
	database.DB.Model(&models.Seat{}).Where("is_deleted = ? AND is_occupied = ?", false, true).Count(&stats.OccupiedSeats)

	if database.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			database.Redis.Set(ctx, statsCacheKey, payload, statsCacheTTL)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
