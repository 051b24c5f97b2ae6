package handlers

import (
	"net/http"
	"testing"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/services"
)

func TestGetStats(t *testing.T) {
	r := setupTest(t)

	garcia := seedFamily(t, "Ana", "García", 3)
	seedGuest(t, garcia, "Ana")
	child := seedGuest(t, garcia, "Leo")
	database.DB.Model(child).Update("guest_type", models.GuestChild)

	lopez := seedFamily(t, "Luis", "López", 2)
	database.DB.Model(lopez).Update("confirmation_status", models.StatusConfirmed)
	confirmed := seedGuest(t, lopez, "Luis")
	database.DB.Model(confirmed).Update("confirmed", true)

	table := createTableViaAPI(t, r, "Mesa 1", 4)
	if _, err := services.AssignSeat(table.Seats[0].ID, &confirmed.ID); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	rec := performRequest(r, http.MethodGet, "/api/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats models.StatsResponse
	decodeData(t, rec, &stats)

	if stats.TotalFamilies != 2 {
		t.Errorf("total_families = %d, want 2", stats.TotalFamilies)
	}
	if stats.FamiliesByStatus["pending"] != 1 || stats.FamiliesByStatus["confirmed"] != 1 {
		t.Errorf("families_by_status = %v, want 1 pending / 1 confirmed", stats.FamiliesByStatus)
	}
	if stats.TotalGuests != 3 {
		t.Errorf("total_guests = %d, want 3", stats.TotalGuests)
	}
	if stats.ConfirmedGuests != 1 {
		t.Errorf("confirmed_guests = %d, want 1", stats.ConfirmedGuests)
	}
	if stats.Adults != 2 || stats.Children != 1 {
		t.Errorf("adults/children = %d/%d, want 2/1", stats.Adults, stats.Children)
	}
	if stats.TotalSeats != 4 || stats.OccupiedSeats != 1 {
		t.Errorf("seats = %d occupied %d, want 4/1", stats.TotalSeats, stats.OccupiedSeats)
	}
}

func TestStatsExcludeSoftDeleted(t *testing.T) {
	r := setupTest(t)

	family := seedFamily(t, "Ana", "García", 2)
	seedGuest(t, family, "Ana")
	performRequest(r, http.MethodDelete, "/api/families/"+family.ID.String(), nil)

	rec := performRequest(r, http.MethodGet, "/api/stats", nil)
	var stats models.StatsResponse
	decodeData(t, rec, &stats)

	if stats.TotalFamilies != 0 || stats.TotalGuests != 0 {
		t.Errorf("stats should exclude soft-deleted rows: %+v", stats)
	}
}
