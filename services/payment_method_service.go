package services

import (
	"resort-backend/config"
	"resort-backend/models"
)

type PaymentMethodService struct{}

func (s PaymentMethodService) Create(method models.PaymentMethod) (models.PaymentMethod, error) {
	err := config.DB.Create(&method).Error
	return method, err
}

func (s PaymentMethodService) GetAll() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := config.DB.Order("name").Find(&methods).Error
	return methods, err
}

func (s PaymentMethodService) GetByID(id uint) (models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := config.DB.First(&method, id).Error
	return method, err
}

func (s PaymentMethodService) Update(method models.PaymentMethod) error {
	return config.DB.Model(&models.PaymentMethod{}).Where("id = ?", method.ID).Updates(map[string]interface{}{
		"name":   method.Name,
		"code":   method.Code,
		"active": method.Active,
		"config": method.Config,
	}).Error
}

func (s PaymentMethodService) Delete(id uint) error {
	return config.DB.Delete(&models.PaymentMethod{}, id).Error
}
