package handlers

import (
	"context"
	"net/http"
	"testing"
	"wedding-backend/models"
	"wedding-backend/services"
)

type stubMessenger struct {
	sent []string
}

func (s *stubMessenger) SendText(ctx context.Context, phone, body string) (string, error) {
	s.sent = append(s.sent, phone)
	return "stub-id", nil
}

func TestSendNotificationsRecordsAttempts(t *testing.T) {
	r := setupTest(t)
	family := seedFamily(t, "Ana", "García", 2)

	stub := &stubMessenger{}
	services.GetNotifier().SetMessenger(stub)
	defer services.GetNotifier().SetMessenger(nil)

	rec := performRequest(r, http.MethodPost, "/api/notifications/send", models.SendNotificationsRequest{
		Type:      models.NotifyRSVPRequest,
		FamilyIDs: []string{family.ID.String()},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var results []services.SendResult
	decodeData(t, rec, &results)
	if len(results) != 1 || results[0].Status != models.NotificationSent {
		t.Fatalf("results = %+v, want one sent entry", results)
	}
	if len(stub.sent) != 1 {
		t.Errorf("messenger calls = %d, want 1", len(stub.sent))
	}

	// The attempt lands in the append-only log.
	rec = performRequest(r, http.MethodGet, "/api/notifications?family_id="+family.ID.String(), nil)
	var notifications []models.Notification
	decodeData(t, rec, &notifications)
	if len(notifications) != 1 || notifications[0].Status != models.NotificationSent {
		t.Errorf("notifications = %+v, want one sent row", notifications)
	}
}

func TestSendNotificationsCustomRequiresMessage(t *testing.T) {
	r := setupTest(t)
	seedFamily(t, "Ana", "García", 2)

	rec := performRequest(r, http.MethodPost, "/api/notifications/send", models.SendNotificationsRequest{
		Type: models.NotifyCustom,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSendNotificationsNoFamilies(t *testing.T) {
	r := setupTest(t)

	rec := performRequest(r, http.MethodPost, "/api/notifications/send", models.SendNotificationsRequest{
		Type: models.NotifyRSVPRequest,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
