package handlers

import (
	"net/http"
	"time"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// POST /api/families
func CreateFamily(c *gin.Context) {
	var req models.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	family := models.Family{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Email:              req.Email,
		AllowedGuests:      req.AllowedGuests,
		ConfirmationStatus: models.StatusPending,
		InviteCode:         utils.GenerateInviteCode(),
		Notes:              req.Notes,
	}

	// The family head is created as the first guest, counted inside the cap.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&family).Error; err != nil {
			return err
		}
		head := models.Guest{
			FamilyID:  family.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			GuestType: models.GuestAdult,
		}
		return tx.Create(&head).Error
	})
	if err != nil {
		utils.InternalError(c, "Failed to create family")
		return
	}

	database.DB.Preload("Guests", "is_deleted = ?", false).First(&family, family.ID)
	utils.SuccessResponse(c, http.StatusCreated, "Family created", family)
}

// GET /api/families
func GetFamilies(c *gin.Context) {
	var families []models.Family
	database.DB.
		Where("is_deleted = ?", false).
		Preload("Guests", "is_deleted = ?", false).
		Order("created_at DESC").
		Find(&families)

	utils.SuccessResponse(c, http.StatusOK, "", families)
}

// GET /api/families/:id
func GetFamily(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid family ID")
		return
	}

	var family models.Family
	if err := database.DB.
		Where("id = ? AND is_deleted = ?", familyID, false).
		Preload("Guests", "is_deleted = ?", false).
		First(&family).Error; err != nil {
		utils.NotFound(c, "Family not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", family)
}

// PATCH /api/families/:id
func UpdateFamily(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid family ID")
		return
	}

	var family models.Family
	if err := database.DB.Where("id = ? AND is_deleted = ?", familyID, false).First(&family).Error; err != nil {
		utils.NotFound(c, "Family not found")
		return
	}

	var req models.UpdateFamilyRequest
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
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.AllowedGuests > 0 {
		// Lowering the allowance never evicts existing guests.
		updates["allowed_guests"] = req.AllowedGuests
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}

	database.DB.Model(&family).Updates(updates)

	database.DB.Preload("Guests", "is_deleted = ?", false).First(&family, family.ID)
	utils.SuccessResponse(c, http.StatusOK, "Family updated", family)
}

// DELETE /api/families/:id
func DeleteFamily(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid family ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var family models.Family
		if err := tx.Where("id = ? AND is_deleted = ?", familyID, false).First(&family).Error; err != nil {
			return err
		}

		// Free any seats held by this family's guests before tombstoning them.
		var seatIDs []uuid.UUID
		tx.Model(&models.Guest{}).
			Where("family_id = ? AND is_deleted = ? AND seat_id IS NOT NULL", familyID, false).
			Pluck("seat_id", &seatIDs)
		if len(seatIDs) > 0 {
			if err := tx.Model(&models.Seat{}).Where("id IN ?", seatIDs).Update("is_occupied", false).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		if err := tx.Model(&models.Guest{}).
			Where("family_id = ? AND is_deleted = ?", familyID, false).
			Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now, "seat_id": nil}).Error; err != nil {
			return err
		}

		return tx.Model(&family).Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error
	})
	if err != nil {
		utils.NotFound(c, "Family not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Family deleted", nil)
}

// GET /api/families/:id/qr
func FamilyQR(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid family ID")
		return
	}

	var family models.Family
	if err := database.DB.Where("id = ? AND is_deleted = ?", familyID, false).First(&family).Error; err != nil {
		utils.NotFound(c, "Family not found")
		return
	}

	cfg := getOrCreateEventConfig()
	url := utils.RSVPLink(cfg.PublicURL, family.InviteCode)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
