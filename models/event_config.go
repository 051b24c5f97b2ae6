package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventConfig is a singleton row created lazily on first read.
type EventConfig struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventName                 string    `gorm:"size:255" json:"event_name"`
	Location                  string    `gorm:"size:255" json:"location"`
	WeddingDate               string    `gorm:"size:100" json:"wedding_date"`
	CeremonyTime              string    `gorm:"size:50" json:"ceremony_time"`
	ReceptionTime             string    `gorm:"size:50" json:"reception_time"`
	RSVPDeadline              string    `gorm:"size:100" json:"rsvp_deadline"`
	EnableDietaryRestrictions bool      `gorm:"default:true" json:"enable_dietary_restrictions"`
	EnableSpecialNeeds        bool      `gorm:"default:true" json:"enable_special_needs"`
	PublicURL                 string    `gorm:"size:255" json:"public_url"`
	EmbedEnabled              bool      `gorm:"default:false" json:"embed_enabled"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func (e *EventConfig) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type UpdateEventConfigRequest struct {
	EventName                 string `json:"event_name"`
	Location                  string `json:"location"`
	WeddingDate               string `json:"wedding_date"`
	CeremonyTime              string `json:"ceremony_time"`
	ReceptionTime             string `json:"reception_time"`
	RSVPDeadline              string `json:"rsvp_deadline"`
	EnableDietaryRestrictions *bool  `json:"enable_dietary_restrictions"`
	EnableSpecialNeeds        *bool  `json:"enable_special_needs"`
	PublicURL                 string `json:"public_url"`
	EmbedEnabled              *bool  `json:"embed_enabled"`
}
