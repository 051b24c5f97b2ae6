package handlers

import (
	"errors"
	"net/http"
	"time"
	"wedding-backend/database"
	"wedding-backend/models"
	"wedding-backend/services"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func preloadSeats(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false).Order("seat_number ASC")
}

// POST /api/tables
func CreateTable(c *gin.Context) {
	var req models.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	tableType := req.TableType
	if tableType == "" {
		tableType = models.TableRound
	}

	table := models.Table{
		Name:      req.Name,
		TableType: tableType,
		Capacity:  req.Capacity,
		Location:  req.Location,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
	}

	// Seat rows are generated 1:1 with capacity.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&table).Error; err != nil {
			return err
		}
		for i := 1; i <= req.Capacity; i++ {
			seat := models.Seat{TableID: table.ID, SeatNumber: i}
			if err := tx.Create(&seat).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.InternalError(c, "Failed to create table")
		return
	}

	database.DB.Preload("Seats", preloadSeats).First(&table, table.ID)
	utils.SuccessResponse(c, http.StatusCreated, "Table created", table)
}

// GET /api/tables
func GetTables(c *gin.Context) {
	var tables []models.Table
	database.DB.
		Where("is_deleted = ?", false).
		Preload("Seats", preloadSeats).
		Order("created_at ASC").
		Find(&tables)

	utils.SuccessResponse(c, http.StatusOK, "", tables)
}

// GET /api/tables/:id
func GetTable(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid table ID")
		return
	}

	var table models.Table
	if err := database.DB.
		Where("id = ? AND is_deleted = ?", tableID, false).
		Preload("Seats", preloadSeats).
		First(&table).Error; err != nil {
		utils.NotFound(c, "Table not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", table)
}

// PATCH /api/tables/:id
func UpdateTable(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid table ID")
		return
	}

	var table models.Table
	if err := database.DB.Where("id = ? AND is_deleted = ?", tableID, false).First(&table).Error; err != nil {
		utils.NotFound(c, "Table not found")
		return
	}

	var req models.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Name != "" {
			updates["name"] = req.Name
		}
		if req.TableType != "" {
			updates["table_type"] = req.TableType
		}
		if req.Location != "" {
			updates["location"] = req.Location
		}
		if req.PositionX != nil {
			updates["position_x"] = *req.PositionX
		}
		if req.PositionY != nil {
			updates["position_y"] = *req.PositionY
		}

		if req.Capacity > 0 && req.Capacity != table.Capacity {
			if req.Capacity > table.Capacity {
				for i := table.Capacity + 1; i <= req.Capacity; i++ {
					seat := models.Seat{TableID: table.ID, SeatNumber: i}
					if err := tx.Create(&seat).Error; err != nil {
						return err
					}
				}
			} else {
				// Shrinking is rejected while any seat past the new capacity
				// is occupied; otherwise the extra seats are tombstoned.
				var occupied int64
				if err := tx.Model(&models.Seat{}).
					Where("table_id = ? AND seat_number > ? AND is_occupied = ? AND is_deleted = ?", table.ID, req.Capacity, true, false).
					Count(&occupied).Error; err != nil {
					return err
				}
				if occupied > 0 {
					return services.ErrConflict
				}
				if err := tx.Model(&models.Seat{}).
					Where("table_id = ? AND seat_number > ? AND is_deleted = ?", table.ID, req.Capacity, false).
					Update("is_deleted", true).Error; err != nil {
					return err
				}
			}
			updates["capacity"] = req.Capacity
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&table).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.Conflict(c, "Cannot reduce capacity below occupied seats")
			return
		}
		utils.InternalError(c, "Failed to update table")
		return
	}

	database.DB.Preload("Seats", preloadSeats).First(&table, table.ID)
	utils.SuccessResponse(c, http.StatusOK, "Table updated", table)
}

// DELETE /api/tables/:id
func DeleteTable(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid table ID")
		return
	}

	// Deleting a table cascades: its seats are tombstoned and any guests
	// sitting at them are unseated.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("id = ? AND is_deleted = ?", tableID, false).First(&table).Error; err != nil {
			return err
		}

		var seatIDs []uuid.UUID
		tx.Model(&models.Seat{}).Where("table_id = ? AND is_deleted = ?", tableID, false).Pluck("id", &seatIDs)

		if len(seatIDs) > 0 {
			if err := tx.Model(&models.Guest{}).
				Where("seat_id IN ? AND is_deleted = ?", seatIDs, false).
				Update("seat_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Seat{}).
				Where("id IN ?", seatIDs).
				Updates(map[string]interface{}{"is_deleted": true, "is_occupied": false}).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		return tx.Model(&table).Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error
	})
	if err != nil {
		utils.NotFound(c, "Table not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Table deleted", nil)
}
