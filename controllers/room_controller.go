package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

var roomService services.RoomService

// GetRooms handles GET /api/rooms with optional roomGroupId/status filters.
func GetRooms(c *gin.Context) {
	var groupID *uint
	if raw := strings.TrimSpace(c.Query("roomGroupId")); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid roomGroupId")
			return
		}
		id := uint(id64)
		groupID = &id
	}
	var status *string
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		if !models.ValidRoomStatus(raw) {
			utils.JSONError(c, http.StatusBadRequest, "unknown room status")
			return
		}
		status = &raw
	}

	rooms, err := roomService.GetAll(groupID, status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func GetRoomByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	room, err := roomService.GetByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}
	if room.Status == "" {
		room.Status = models.RoomStatusNormal
	}
	if !models.ValidRoomStatus(room.Status) {
		utils.JSONError(c, http.StatusBadRequest, "unknown room status")
		return
	}

	created, err := roomService.Create(room)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			log.Printf("duplicate room number: %s", room.RoomNumber)
			utils.JSONError(c, http.StatusConflict, "room number already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if room.Status != "" && !models.ValidRoomStatus(room.Status) {
		utils.JSONError(c, http.StatusBadRequest, "unknown room status")
		return
	}
	room.ID = id

	if err := roomService.Update(room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	updated, err := roomService.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func DeleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := roomService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomHasAssignments) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
