package services

import (
	"context"
	"fmt"
	"os"
	"time"
	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notifier dispatches WhatsApp messages to families sequentially with a fixed
// delay between sends. There is no queue and no retry: a failed send is
// recorded and the loop moves on.
type Notifier struct {
	messenger Messenger
	delay     time.Duration
	log       zerolog.Logger
}

var notifier *Notifier

func GetNotifier() *Notifier {
	if notifier == nil {
		notifier = &Notifier{
			delay: config.AppConfig.NotificationDelay,
			log:   zerolog.New(os.Stdout).With().Timestamp().Str("component", "notifier").Logger(),
		}
	}
	return notifier
}

// SetMessenger wires the outbound channel. A nil messenger means every send
// is recorded as failed, which keeps the endpoint usable without a linked
// WhatsApp session.
func (n *Notifier) SetMessenger(m Messenger) {
	n.messenger = m
}

// SendResult is the per-family outcome of a bulk send.
type SendResult struct {
	FamilyID uuid.UUID                 `json:"family_id"`
	Name     string                    `json:"name"`
	Phone    string                    `json:"phone"`
	Status   models.NotificationStatus `json:"status"`
	Error    string                    `json:"error,omitempty"`
}

// SendToFamilies sends one message per family and logs every attempt as a
// Notification row. The caller gets the full result list only after the
// whole batch completes.
func (n *Notifier) SendToFamilies(ctx context.Context, families []models.Family, ntype models.NotificationType, custom string, cfg *models.EventConfig) []SendResult {
	results := make([]SendResult, 0, len(families))

	for i, family := range families {
		if i > 0 {
			time.Sleep(n.delay)
		}

		body := n.buildMessage(ntype, &family, cfg, custom)
		result := SendResult{
			FamilyID: family.ID,
			Name:     family.FirstName + " " + family.LastName,
			Phone:    family.Phone,
			Status:   models.NotificationSent,
		}

		record := models.Notification{
			FamilyID: family.ID,
			Type:     ntype,
			Message:  body,
			Status:   models.NotificationSent,
		}

		providerID, err := n.send(ctx, family.Phone, body)
		if err != nil {
			n.log.Error().Err(err).Str("family", result.Name).Msg("Failed to send notification")
			result.Status = models.NotificationFailed
			result.Error = err.Error()
			record.Status = models.NotificationFailed
			record.Error = err.Error()
		} else {
			n.log.Info().Str("family", result.Name).Str("provider_id", providerID).Msg("Notification sent")
			record.ProviderID = providerID
		}

		if err := database.DB.Create(&record).Error; err != nil {
			n.log.Error().Err(err).Msg("Failed to record notification")
		}

		results = append(results, result)
	}

	return results
}

func (n *Notifier) send(ctx context.Context, phone, body string) (string, error) {
	if n.messenger == nil {
		return "", fmt.Errorf("whatsapp messenger not configured")
	}
	return n.messenger.SendText(ctx, phone, body)
}

func (n *Notifier) buildMessage(ntype models.NotificationType, family *models.Family, cfg *models.EventConfig, custom string) string {
	name := family.FirstName
	publicURL := config.AppConfig.PublicURL
	if cfg != nil && cfg.PublicURL != "" {
		publicURL = cfg.PublicURL
	}
	rsvpLink := utils.RSVPLink(publicURL, family.InviteCode)

	eventName := "our wedding"
	location := ""
	date := ""
	deadline := ""
	if cfg != nil {
		if cfg.EventName != "" {
			eventName = cfg.EventName
		}
		location = cfg.Location
		date = cfg.WeddingDate
		deadline = cfg.RSVPDeadline
	}

	switch ntype {
	case models.NotifySaveTheDate:
		return fmt.Sprintf("💌 Hi %s! Save the date: %s on %s. A formal invitation will follow soon.", name, eventName, date)
	case models.NotifyRSVPRequest:
		return fmt.Sprintf("🎉 Hi %s! You are invited to %s.\n📅 %s\n📍 %s\n\nPlease confirm your attendance here: %s", name, eventName, date, location, rsvpLink)
	case models.NotifyRSVPReminder:
		return fmt.Sprintf("⏰ Hi %s, a gentle reminder to confirm your attendance for %s before %s: %s", name, eventName, deadline, rsvpLink)
	case models.NotifyTableAssigned:
		return fmt.Sprintf("🪑 Hi %s! Your table for %s has been assigned. Check the details here: %s", name, eventName, rsvpLink)
	case models.NotifyThankYou:
		return fmt.Sprintf("💕 Hi %s, thank you for being part of %s. It meant the world to us!", name, eventName)
	default:
		return custom
	}
}
