package services

import (
	"errors"
	"wedding-backend/database"
	"wedding-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignSeat assigns a guest to a seat, or releases the seat when guestID is
// nil. A guest may hold at most one seat; assigning to an occupied seat
// evicts the previous occupant. The whole swap runs in one transaction so a
// failure can't leave the seat and guest rows disagreeing.
func AssignSeat(seatID uuid.UUID, guestID *uuid.UUID) (*models.Seat, error) {
	var seat models.Seat

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", seatID, false).First(&seat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if guestID == nil {
			// Release: clearing an already-empty seat is a no-op success.
			if err := tx.Model(&models.Guest{}).
				Where("seat_id = ? AND is_deleted = ?", seatID, false).
				Update("seat_id", nil).Error; err != nil {
				return err
			}
			seat.IsOccupied = false
			return tx.Model(&seat).Update("is_occupied", false).Error
		}

		var guest models.Guest
		if err := tx.Where("id = ? AND is_deleted = ?", *guestID, false).First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if guest.SeatID != nil && *guest.SeatID != seatID {
			return ErrConflict
		}

		// Evict whoever currently holds the target seat.
		if err := tx.Model(&models.Guest{}).
			Where("seat_id = ? AND id <> ? AND is_deleted = ?", seatID, guest.ID, false).
			Update("seat_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Model(&guest).Update("seat_id", seatID).Error; err != nil {
			return err
		}

		seat.IsOccupied = true
		return tx.Model(&seat).Update("is_occupied", true).Error
	})
	if err != nil {
		return nil, err
	}

	return &seat, nil
}
