package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

var userService services.UserService

type userRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func GetUsers(c *gin.Context) {
	users, err := userService.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func GetUserByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := userService.GetByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "user not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user := models.User{
		FullName: req.FullName,
		Username: req.Username,
		Role:     req.Role,
	}
	created, err := userService.Create(user, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.JSONError(c, http.StatusConflict, "username already exists")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user := models.User{
		ID:       id,
		FullName: req.FullName,
		Username: req.Username,
		Role:     req.Role,
	}
	if err := userService.Update(user, req.Password); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user")
		return
	}
	updated, err := userService.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := userService.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
