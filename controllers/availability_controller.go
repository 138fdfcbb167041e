package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

// AvailabilityController exposes the room-group browsing path: free rooms
// for a stay window, ordered so the longest-idle room comes first.
type AvailabilityController struct {
	Resolver *services.AvailabilityResolver
}

func NewAvailabilityController(resolver *services.AvailabilityResolver) *AvailabilityController {
	return &AvailabilityController{Resolver: resolver}
}

// GetAvailableRooms handles GET /api/room-groups/:id/available-rooms.
// stayStartAt/stayEndAt are YYYY-MM-DD; leaving either out disables window
// filtering entirely (status-only query per the API contract).
func (ac *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	groupID, ok := idParam(c)
	if !ok {
		return
	}

	filter := services.AvailabilityFilter{RoomGroupID: &groupID}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.ValidRoomStatus(status) {
			utils.JSONError(c, http.StatusBadRequest, "unknown room status")
			return
		}
		filter.Status = &status
	}

	start, startOK, err := dateQuery(c, "stayStartAt")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, endOK, err := dateQuery(c, "stayEndAt")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if startOK && endOK {
		if start.After(end) {
			utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidStayWindow.Error())
			return
		}
		filter.StayStartAt = &start
		filter.StayEndAt = &end
	}

	if raw := strings.TrimSpace(c.Query("excludeReservationId")); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid excludeReservationId")
			return
		}
		excludeID := uint(id64)
		filter.ExcludeReservationID = &excludeID
	}

	rooms, err := ac.Resolver.FindAvailableRoomsRanked(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func dateQuery(c *gin.Context, name string) (time.Time, bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false, &queryDateError{name: name}
	}
	return t, true, nil
}

type queryDateError struct{ name string }

func (e *queryDateError) Error() string { return e.name + " must be YYYY-MM-DD" }
