package services

import (
	"errors"
	"wedding-backend/database"
	"wedding-backend/models"

	"gorm.io/gorm"
)

// CreateGuest inserts a guest under its family, enforcing the family's guest
// allowance. The count and the insert share a transaction so concurrent
// creations can't both slip under the cap.
func CreateGuest(guest *models.Guest) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var family models.Family
		if err := tx.Where("id = ? AND is_deleted = ?", guest.FamilyID, false).First(&family).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Guest{}).
			Where("family_id = ? AND is_deleted = ?", family.ID, false).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(family.AllowedGuests) {
			return ErrCapacityExceeded
		}

		return tx.Create(guest).Error
	})
}
