package services

import (
	"errors"

	"resort-backend/config"
	"resort-backend/models"
)

// ErrRoomGroupNotEmpty rejects deleting a group that still owns rooms.
var ErrRoomGroupNotEmpty = errors.New("room group still has rooms")

type RoomGroupService struct{}

func (s RoomGroupService) Create(group models.RoomGroup) (models.RoomGroup, error) {
	err := config.DB.Create(&group).Error
	return group, err
}

func (s RoomGroupService) GetAll() ([]models.RoomGroup, error) {
	var groups []models.RoomGroup
	err := config.DB.Order("name").Find(&groups).Error
	return groups, err
}

func (s RoomGroupService) GetByID(id uint) (models.RoomGroup, error) {
	var group models.RoomGroup
	err := config.DB.Preload("Rooms").First(&group, id).Error
	return group, err
}

func (s RoomGroupService) Update(group models.RoomGroup) error {
	return config.DB.Model(&models.RoomGroup{}).Where("id = ?", group.ID).Updates(group).Error
}

func (s RoomGroupService) Delete(id uint) error {
	var count int64
	if err := config.DB.Model(&models.Room{}).Where("room_group_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomGroupNotEmpty
	}
	return config.DB.Delete(&models.RoomGroup{}, id).Error
}
