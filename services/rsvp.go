package services

import (
	"errors"
	"strings"
	"wedding-backend/database"
	"wedding-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxNameMatches = 5

// GuestConfirmation is one entry of a family's RSVP submission.
type GuestConfirmation struct {
	GuestID             uuid.UUID `json:"guest_id"`
	Confirmed           bool      `json:"confirmed"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SpecialNeeds        string    `json:"special_needs"`
}

// LookupFamilyByCode finds one family by its invite code, guests included.
func LookupFamilyByCode(code string) (*models.Family, error) {
	var family models.Family
	err := database.DB.
		Where("invite_code = ? AND is_deleted = ?", code, false).
		Preload("Guests", "is_deleted = ?", false).
		First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &family, nil
}

// SearchFamiliesByName does a case-insensitive substring match against first
// and last names. Results are capped; the caller re-queries by invite code
// once the visitor picks their family.
func SearchFamiliesByName(name string) ([]models.Family, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(name)) + "%"

	var families []models.Family
	err := database.DB.
		Where("is_deleted = ?", false).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern).
		Limit(maxNameMatches).
		Preload("Guests", "is_deleted = ?", false).
		Find(&families).Error
	if err != nil {
		return nil, err
	}
	if len(families) == 0 {
		return nil, ErrNotFound
	}
	return families, nil
}

// ConfirmAttendance applies a family's RSVP submission. The confirmed count
// is validated against the family allowance before any guest row is touched;
// an over-allowance submission mutates nothing. Afterwards the family's
// aggregate status and confirmed count are recomputed.
func ConfirmAttendance(inviteCode string, entries []GuestConfirmation) (*models.Family, error) {
	var family models.Family

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invite_code = ? AND is_deleted = ?", inviteCode, false).First(&family).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		confirmedCount := 0
		for _, e := range entries {
			if e.Confirmed {
				confirmedCount++
			}
		}

		if confirmedCount > family.AllowedGuests {
			return ErrCapacityExceeded
		}

		for _, e := range entries {
			updates := map[string]interface{}{
				"confirmed":            e.Confirmed,
				"dietary_restrictions": e.DietaryRestrictions,
				"special_needs":        e.SpecialNeeds,
			}
			if err := tx.Model(&models.Guest{}).
				Where("id = ? AND family_id = ? AND is_deleted = ?", e.GuestID, family.ID, false).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		status := models.StatusDeclined
		if confirmedCount > 0 {
			status = models.StatusConfirmed
		}

		family.ConfirmationStatus = status
		family.ConfirmedGuests = confirmedCount
		return tx.Model(&family).Updates(map[string]interface{}{
			"confirmation_status": status,
			"confirmed_guests":    confirmedCount,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	database.DB.Preload("Guests", "is_deleted = ?", false).First(&family, family.ID)
	return &family, nil
}
