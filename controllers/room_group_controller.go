package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

var roomGroupService services.RoomGroupService

func GetRoomGroups(c *gin.Context) {
	groups, err := roomGroupService.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room groups")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, groups)
}

func GetRoomGroupByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	group, err := roomGroupService.GetByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "room group not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room group")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, group)
}

func CreateRoomGroup(c *gin.Context) {
	var group models.RoomGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	created, err := roomGroupService.Create(group)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room group")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateRoomGroup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var group models.RoomGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	group.ID = id

	if err := roomGroupService.Update(group); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room group")
		return
	}
	updated, err := roomGroupService.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room group")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func DeleteRoomGroup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := roomGroupService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomGroupNotEmpty) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room group")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room group deleted"})
}
