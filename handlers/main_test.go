package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"wedding-backend/config"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest boots an in-memory database and a router with all routes
// registered. The auth middleware is left off so handlers are exercised
// directly.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	r.GET("/rsvp/search", SearchFamily)
	r.POST("/rsvp/confirm", ConfirmRSVP)
	r.POST("/api/families", CreateFamily)
	r.GET("/api/families", GetFamilies)
	r.GET("/api/families/:id", GetFamily)
	r.PATCH("/api/families/:id", UpdateFamily)
	r.DELETE("/api/families/:id", DeleteFamily)
	r.GET("/api/families/:id/qr", FamilyQR)
	r.POST("/api/guests", CreateGuest)
	r.GET("/api/guests", GetGuests)
	r.GET("/api/guests/:id", GetGuest)
	r.PATCH("/api/guests/:id", UpdateGuest)
	r.DELETE("/api/guests/:id", DeleteGuest)
	r.POST("/api/tables", CreateTable)
	r.GET("/api/tables", GetTables)
	r.GET("/api/tables/:id", GetTable)
	r.PATCH("/api/tables/:id", UpdateTable)
	r.DELETE("/api/tables/:id", DeleteTable)
	r.PUT("/api/seats/:id/assign", AssignSeat)
	r.GET("/api/stats", GetStats)
	r.GET("/api/settings", GetSettings)
	r.PUT("/api/settings", UpdateSettings)
	r.POST("/api/notifications/send", SendNotifications)
	r.GET("/api/notifications", GetNotifications)
	return r
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeData unwraps the APIResponse envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope utils.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("failed to re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func seedFamily(t *testing.T, firstName, lastName string, allowedGuests int) *models.Family {
	t.Helper()

	family := models.Family{
		FirstName:          firstName,
		LastName:           lastName,
		Phone:              "600123456",
		AllowedGuests:      allowedGuests,
		ConfirmationStatus: models.StatusPending,
		InviteCode:         utils.GenerateInviteCode(),
	}
	if err := database.DB.Create(&family).Error; err != nil {
		t.Fatalf("failed to seed family: %v", err)
	}
	return &family
}

func seedGuest(t *testing.T, family *models.Family, firstName string) *models.Guest {
	t.Helper()

	guest := models.Guest{
		FamilyID:  family.ID,
		FirstName: firstName,
		LastName:  family.LastName,
		GuestType: models.GuestAdult,
	}
	if err := database.DB.Create(&guest).Error; err != nil {
		t.Fatalf("failed to seed guest: %v", err)
	}
	return &guest
}
