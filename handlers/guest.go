package handlers

import (
	"errors"
	"net/http"
	"time"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/services"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/guests
func CreateGuest(c *gin.Context) {
	var req models.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	familyID, err := uuid.Parse(req.FamilyID)
	if err != nil {
		utils.BadRequest(c, "Invalid family ID")
		return
	}

	guestType := req.GuestType
	if guestType == "" {
		guestType = models.GuestAdult
	}

	guest := models.Guest{
		FamilyID:            familyID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		GuestType:           guestType,
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialNeeds:        req.SpecialNeeds,
	}

	if err := services.CreateGuest(&guest); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Family not found")
		case errors.Is(err, services.ErrCapacityExceeded):
			utils.BadRequest(c, "Family guest allowance exceeded")
		default:
			utils.InternalError(c, "Failed to create guest")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Guest created", guest)
}

// GET /api/guests
func GetGuests(c *gin.Context) {
	query := database.DB.Where("is_deleted = ?", false).Order("created_at DESC")

	if familyParam := c.Query("family_id"); familyParam != "" {
		familyID, err := uuid.Parse(familyParam)
		if err != nil {
			utils.BadRequest(c, "Invalid family ID")
			return
		}
		query = query.Where("family_id = ?", familyID)
	}

	var guests []models.Guest
	query.Find(&guests)

	utils.SuccessResponse(c, http.StatusOK, "", guests)
}

// GET /api/guests/:id
func GetGuest(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid guest ID")
		return
	}

	var guest models.Guest
	if err := database.DB.Where("id = ? AND is_deleted = ?", guestID, false).First(&guest).Error; err != nil {
		utils.NotFound(c, "Guest not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", guest)
}

// PATCH /api/guests/:id
func UpdateGuest(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid guest ID")
		return
	}

	var guest models.Guest
	if err := database.DB.Where("id = ? AND is_deleted = ?", guestID, false).First(&guest).Error; err != nil {
		utils.NotFound(c, "Guest not found")
		return
	}

	var req models.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.GuestType != "" {
		updates["guest_type"] = req.GuestType
	}
	if req.Confirmed != nil {
		updates["confirmed"] = *req.Confirmed
	}
	if req.DietaryRestrictions != "" {
		updates["dietary_restrictions"] = req.DietaryRestrictions
	}
	if req.SpecialNeeds != "" {
		updates["special_needs"] = req.SpecialNeeds
	}

	database.DB.Model(&guest).Updates(updates)

	utils.SuccessResponse(c, http.StatusOK, "Guest updated", guest)
}

// DELETE /api/guests/:id
func DeleteGuest(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid guest ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.Where("id = ? AND is_deleted = ?", guestID, false).First(&guest).Error; err != nil {
			return err
		}

		if guest.SeatID != nil {
			if err := tx.Model(&models.Seat{}).Where("id = ?", *guest.SeatID).Update("is_occupied", false).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		return tx.Model(&guest).Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
			"seat_id":    nil,
		}).Error
	})
	if err != nil {
		utils.NotFound(c, "Guest not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guest deleted", nil)
}
