package services

import (
	"testing"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

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
	// :memory: gives every connection its own database
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
}

func createTestFamily(t *testing.T, firstName, lastName string, allowedGuests int) *models.Family {
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
		t.Fatalf("failed to create family: %v", err)
	}
	return &family
}

func createTestGuest(t *testing.T, family *models.Family, firstName string) *models.Guest {
	t.Helper()

	guest := models.Guest{
		FamilyID:  family.ID,
		FirstName: firstName,
		LastName:  family.LastName,
		GuestType: models.GuestAdult,
	}
	if err := database.DB.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest: %v", err)
	}
	return &guest
}

func createTestTable(t *testing.T, name string, capacity int) (*models.Table, []models.Seat) {
	t.Helper()

	table := models.Table{Name: name, TableType: models.TableRound, Capacity: capacity}
	if err := database.DB.Create(&table).Error; err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	seats := make([]models.Seat, 0, capacity)
	for i := 1; i <= capacity; i++ {
		seat := models.Seat{TableID: table.ID, SeatNumber: i}
		if err := database.DB.Create(&seat).Error; err != nil {
			t.Fatalf("failed to create seat: %v", err)
		}
		seats = append(seats, seat)
	}
	return &table, seats
}
