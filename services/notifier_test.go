package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/models"

	"github.com/rs/zerolog"
)

type fakeMessenger struct {
	failFor map[string]bool
	sent    []string
}

func (f *fakeMessenger) SendText(ctx context.Context, phone, body string) (string, error) {
	if f.failFor[phone] {
		return "", fmt.Errorf("provider rejected %s", phone)
	}
	f.sent = append(f.sent, phone)
	return "msg-" + phone, nil
}

func newTestNotifier(m Messenger) *Notifier {
	return &Notifier{messenger: m, delay: 0, log: zerolog.Nop()}
}

func TestNotifierRecordsSentAndFailed(t *testing.T) {
	config.Load()
	setupTestDB(t)

	ok := createTestFamily(t, "Ana", "García", 2)
	bad := createTestFamily(t, "Luis", "López", 2)
	bad.Phone = "600999999"
	database.DB.Model(bad).Update("phone", bad.Phone)

	messenger := &fakeMessenger{failFor: map[string]bool{bad.Phone: true}}
	n := newTestNotifier(messenger)

	results := n.SendToFamilies(context.Background(), []models.Family{*ok, *bad}, models.NotifyRSVPRequest, "", nil)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Status != models.NotificationSent {
		t.Errorf("first result status = %s, want sent", results[0].Status)
	}
	if results[1].Status != models.NotificationFailed || results[1].Error == "" {
		t.Errorf("second result = %+v, want failed with error", results[1])
	}

	// A failure must not abort the batch; every attempt is logged.
	var rows []models.Notification
	database.DB.Order("created_at ASC").Find(&rows)
	if len(rows) != 2 {
		t.Fatalf("notification rows = %d, want 2", len(rows))
	}
	if rows[0].Status != models.NotificationSent || rows[0].ProviderID == "" {
		t.Errorf("sent row = %+v, want provider id recorded", rows[0])
	}
	if rows[1].Status != models.NotificationFailed || rows[1].Error == "" {
		t.Errorf("failed row = %+v, want error recorded", rows[1])
	}
}

func TestNotifierWithoutMessengerRecordsFailures(t *testing.T) {
	config.Load()
	setupTestDB(t)
	family := createTestFamily(t, "Ana", "García", 2)

	n := newTestNotifier(nil)
	results := n.SendToFamilies(context.Background(), []models.Family{*family}, models.NotifyCustom, "hola", nil)

	if len(results) != 1 || results[0].Status != models.NotificationFailed {
		t.Errorf("results = %+v, want one failed entry", results)
	}
}

func TestBuildMessageTemplates(t *testing.T) {
	config.Load()
	setupTestDB(t)
	family := createTestFamily(t, "Ana", "García", 2)

	n := newTestNotifier(nil)
	cfg := &models.EventConfig{EventName: "Boda de Ana y Luis", WeddingDate: "2026-09-12", PublicURL: "https://example.com"}

	msg := n.buildMessage(models.NotifyRSVPRequest, family, cfg, "")
	if !strings.Contains(msg, family.InviteCode) {
		t.Error("RSVP request should include the invite link")
	}
	if !strings.Contains(msg, "Boda de Ana y Luis") {
		t.Error("RSVP request should name the event")
	}

	custom := n.buildMessage(models.NotifyCustom, family, cfg, "texto libre")
	if custom != "texto libre" {
		t.Errorf("custom message = %q, want the raw text", custom)
	}
}
