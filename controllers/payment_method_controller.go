package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"
)

var paymentMethodService services.PaymentMethodService

func GetPaymentMethods(c *gin.Context) {
	methods, err := paymentMethodService.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load payment methods")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, methods)
}

func CreatePaymentMethod(c *gin.Context) {
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	method.Name = strings.TrimSpace(method.Name)
	if method.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	created, err := paymentMethodService.Create(method)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment method")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdatePaymentMethod(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	method.ID = id

	if err := paymentMethodService.Update(method); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update payment method")
		return
	}
	updated, err := paymentMethodService.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load payment method")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func DeletePaymentMethod(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := paymentMethodService.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete payment method")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "payment method deleted"})
}
