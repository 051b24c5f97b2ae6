package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestType string

const (
	GuestAdult GuestType = "adult"
	GuestChild GuestType = "child"
)

type Guest struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID            uuid.UUID  `gorm:"type:uuid;index;not null" json:"family_id"`
	FirstName           string     `gorm:"not null;size:100" json:"first_name"`
	LastName            string     `gorm:"not null;size:100" json:"last_name"`
	GuestType           GuestType  `gorm:"default:adult;size:10" json:"guest_type"`
	Confirmed           bool       `gorm:"default:false" json:"confirmed"`
	DietaryRestrictions string     `json:"dietary_restrictions,omitempty"`
	SpecialNeeds        string     `json:"special_needs,omitempty"`
	SeatID              *uuid.UUID `gorm:"type:uuid;index" json:"seat_id,omitempty"`
	IsDeleted           bool       `gorm:"default:false;index" json:"-"`
	DeletedAt           *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateGuestRequest struct {
	FamilyID            string    `json:"family_id" binding:"required"`
	FirstName           string    `json:"first_name" binding:"required"`
	LastName            string    `json:"last_name" binding:"required"`
	GuestType           GuestType `json:"guest_type" binding:"omitempty,oneof=adult child"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SpecialNeeds        string    `json:"special_needs"`
}

type UpdateGuestRequest struct {
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	GuestType           GuestType `json:"guest_type" binding:"omitempty,oneof=adult child"`
	Confirmed           *bool     `json:"confirmed"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SpecialNeeds        string    `json:"special_needs"`
}
