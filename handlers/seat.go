package handlers

import (
	"errors"
	"net/http"
	"wedding-backend/models"
	"wedding-backend/services"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PUT /api/seats/:id/assign
func AssignSeat(c *gin.Context) {
	seatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid seat ID")
		return
	}

	var req models.AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var guestID *uuid.UUID
	if req.GuestID != nil {
		parsed, err := uuid.Parse(*req.GuestID)
		if err != nil {
			utils.BadRequest(c, "Invalid guest ID")
			return
		}
		guestID = &parsed
	}

	seat, err := services.AssignSeat(seatID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Seat or guest not found")
		case errors.Is(err, services.ErrConflict):
			utils.Conflict(c, "Guest is already assigned to another seat")
		default:
			utils.InternalError(c, "Failed to assign seat")
		}
		return
	}

	message := "Seat assigned"
	if guestID == nil {
		message = "Seat released"
	}
	utils.SuccessResponse(c, http.StatusOK, message, seat)
}
