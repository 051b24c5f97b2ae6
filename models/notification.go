package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifySaveTheDate   NotificationType = "save_the_date"
	NotifyRSVPRequest   NotificationType = "rsvp_request"
	NotifyRSVPReminder  NotificationType = "rsvp_reminder"
	NotifyTableAssigned NotificationType = "table_assigned"
	NotifyThankYou      NotificationType = "thank_you"
	NotifyCustom        NotificationType = "custom"
)

type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationPending NotificationStatus = "pending"
)

// Notification is an append-only log of outbound message attempts. Rows are
// never updated after creation.
type Notification struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID   uuid.UUID          `gorm:"type:uuid;index" json:"family_id"`
	Type       NotificationType   `gorm:"not null;size:30" json:"type"`
	Message    string             `gorm:"not null" json:"message"`
	Status     NotificationStatus `gorm:"not null;size:10" json:"status"`
	ProviderID string             `json:"provider_id,omitempty"`
	Error      string             `json:"error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type SendNotificationsRequest struct {
	Type      NotificationType `json:"type" binding:"required,oneof=save_the_date rsvp_request rsvp_reminder table_assigned thank_you custom"`
	Message   string           `json:"message"`
	FamilyIDs []string         `json:"family_ids"` // all families when empty
}
