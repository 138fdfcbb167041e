package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"resort-backend/config"
	"resort-backend/models"
)

type UserService struct{}

func (s UserService) Create(user models.User, plainPassword string) (models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return models.User{}, errors.New("username is required")
	}
	if plainPassword == "" {
		return models.User{}, errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hash)

	err = config.DB.Create(&user).Error
	return user, err
}

func (s UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := config.DB.Order("username").Find(&users).Error
	return users, err
}

func (s UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	return user, err
}

// Update changes profile fields; an empty plainPassword keeps the current one.
func (s UserService) Update(user models.User, plainPassword string) error {
	updates := map[string]interface{}{
		"full_name": user.FullName,
		"role":      user.Role,
	}
	if strings.TrimSpace(user.Username) != "" {
		updates["username"] = strings.TrimSpace(user.Username)
	}
	if plainPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hash)
	}
	return config.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error
}

func (s UserService) Delete(id uint) error {
	return config.DB.Delete(&models.User{}, id).Error
}
