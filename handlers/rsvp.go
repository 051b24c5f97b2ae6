package handlers

import (
	"errors"
	"net/http"
	"wedding-backend/models"
	"wedding-backend/services"
	"wedding-backend/utils"

	"github.com/gin-gonic/gin"
)

type ConfirmRSVPRequest struct {
	InviteCode string                       `json:"invite_code" binding:"required"`
	Guests     []services.GuestConfirmation `json:"guests" binding:"required"`
}

// RSVPSearchResponse holds either the single matched family or a
// disambiguation list when a name search hits several households.
type RSVPSearchResponse struct {
	Family  *models.Family         `json:"family,omitempty"`
	Matches []models.FamilySummary `json:"matches,omitempty"`
}

// GET /rsvp/search?code= | ?name=
func SearchFamily(c *gin.Context) {
	code := c.Query("code")
	name := c.Query("name")

	if code != "" {
		family, err := services.LookupFamilyByCode(code)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				utils.NotFound(c, "Family not found")
				return
			}
			utils.InternalError(c, "Search failed")
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", RSVPSearchResponse{Family: family})
		return
	}

	if name != "" {
		families, err := services.SearchFamiliesByName(name)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				utils.NotFound(c, "No family matches that name")
				return
			}
			utils.InternalError(c, "Search failed")
			return
		}

		if len(families) == 1 {
			utils.SuccessResponse(c, http.StatusOK, "", RSVPSearchResponse{Family: &families[0]})
			return
		}

		matches := make([]models.FamilySummary, 0, len(families))
		for _, f := range families {
			matches = append(matches, f.ToSummary())
		}
		utils.SuccessResponse(c, http.StatusOK, "", RSVPSearchResponse{Matches: matches})
		return
	}

	utils.BadRequest(c, "Provide either a code or a name")
}

// POST /rsvp/confirm
func ConfirmRSVP(c *gin.Context) {
	var req ConfirmRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	family, err := services.ConfirmAttendance(req.InviteCode, req.Guests)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Family not found")
		case errors.Is(err, services.ErrCapacityExceeded):
			utils.BadRequest(c, "Confirmed guests exceed the family allowance")
		default:
			utils.InternalError(c, "Failed to confirm attendance")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attendance recorded", family)
}
