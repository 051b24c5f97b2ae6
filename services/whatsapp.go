package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
)

// Messenger sends a text message to a phone number and returns the provider
// message id. The notifier depends on this interface so tests don't need a
// live WhatsApp session.
type Messenger interface {
	SendText(ctx context.Context, phone, body string) (string, error)
}

// WhatsAppService is a Messenger backed by a linked WhatsApp device.
type WhatsAppService struct {
	client *whatsmeow.Client
	log    zerolog.Logger
}

// NewWhatsAppService opens the device store under dataDir and prepares a
// client. Connect must be called before sending.
func NewWhatsAppService(dataDir string) (*WhatsAppService, error) {
	ctx := context.Background()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "whatsapp").Logger()

	container, err := sqlstore.New(ctx, "sqlite3", fmt.Sprintf("file:%s/whatsmeow.db?_foreign_keys=on", dataDir), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create device store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return &WhatsAppService{
		client: whatsmeow.NewClient(deviceStore, nil),
		log:    logger,
	}, nil
}

// Connect links or reconnects the WhatsApp session. On first run a QR code is
// printed to the terminal for pairing.
func (s *WhatsAppService) Connect() error {
	if s.client.Store.ID == nil {
		qrChan, _ := s.client.GetQRChannel(context.Background())
		if err := s.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		for evt := range qrChan {
			if evt.Event == "code" {
				q, err := qrcode.New(evt.Code, qrcode.Medium)
				if err != nil {
					fmt.Printf("QR Code: %s\n", evt.Code)
				} else {
					fmt.Println("\n" + q.ToSmallString(false))
				}
				fmt.Println("📱 Scan the QR code with WhatsApp (Settings > Linked Devices)")
			} else {
				s.log.Info().Str("event", evt.Event).Msg("Login event")
			}
		}
		return nil
	}

	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	return nil
}

func (s *WhatsAppService) Disconnect() {
	s.client.Disconnect()
}

// SendText delivers a plain text message. The number is verified against
// WhatsApp before sending; unregistered numbers are an error.
func (s *WhatsAppService) SendText(ctx context.Context, phone, body string) (string, error) {
	phone = NormalizePhoneNumber(phone)

	resp, err := s.client.IsOnWhatsApp(ctx, []string{phone})
	if err != nil {
		return "", fmt.Errorf("failed to verify number on WhatsApp: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return "", fmt.Errorf("number %s is not registered on WhatsApp", phone)
	}

	jid := resp[0].JID
	s.log.Debug().Str("jid", jid.String()).Str("phone", phone).Msg("Sending message")

	sent, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: &body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	return string(sent.ID), nil
}

// NormalizePhoneNumber strips formatting characters and converts local
// numbers starting with 0 to international format.
func NormalizePhoneNumber(phone string) string {
	replacer := strings.NewReplacer("+", "", " ", "", "-", "", "(", "", ")", "")
	phone = replacer.Replace(phone)

	// Local format 0XXXXXXXXX -> country code without the leading zero
	if strings.HasPrefix(phone, "0") && len(phone) == 10 {
		phone = defaultCountryCode + phone[1:]
	}
	if strings.HasPrefix(phone, defaultCountryCode+"0") {
		phone = defaultCountryCode + phone[len(defaultCountryCode)+1:]
	}

	return phone
}

const defaultCountryCode = "34"
