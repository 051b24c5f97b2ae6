package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfirmationStatus string

const (
	StatusPending    ConfirmationStatus = "pending"
	StatusConfirmed  ConfirmationStatus = "confirmed"
	StatusDeclined   ConfirmationStatus = "declined"
	StatusNoResponse ConfirmationStatus = "no_response"
)

type Family struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName          string             `gorm:"not null;size:100" json:"first_name"`
	LastName           string             `gorm:"not null;size:100" json:"last_name"`
	Phone              string             `gorm:"not null;size:20" json:"phone"`
	Email              string             `gorm:"size:255" json:"email,omitempty"`
	AllowedGuests      int                `gorm:"not null" json:"allowed_guests"`
	ConfirmedGuests    int                `gorm:"default:0" json:"confirmed_guests"`
	ConfirmationStatus ConfirmationStatus `gorm:"default:pending;size:20" json:"confirmation_status"`
	InviteCode         string             `gorm:"uniqueIndex;not null;size:64" json:"invite_code"`
	Notes              string             `json:"notes,omitempty"`
	Guests             []Guest            `gorm:"foreignKey:FamilyID" json:"guests,omitempty"`
	IsDeleted          bool               `gorm:"default:false;index" json:"-"`
	DeletedAt          *time.Time         `json:"-"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateFamilyRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	AllowedGuests int    `json:"allowed_guests" binding:"required,gt=0"`
	Notes         string `json:"notes"`
}

type UpdateFamilyRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	AllowedGuests int    `json:"allowed_guests" binding:"omitempty,gt=0"`
	Notes         string `json:"notes"`
}

// FamilySummary is returned by the public name search when more than one
// family matches and the caller has to disambiguate.
type FamilySummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	InviteCode string    `json:"invite_code"`
}

func (f *Family) ToSummary() FamilySummary {
	return FamilySummary{
		ID:         f.ID,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		InviteCode: f.InviteCode,
	}
}
