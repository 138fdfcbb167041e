package services

import (
	"errors"

	"resort-backend/config"
	"resort-backend/models"
)

// ErrRoomHasAssignments rejects deleting a room that reservations still
// point at.
var ErrRoomHasAssignments = errors.New("room still has assignments")

type RoomService struct{}

func (s RoomService) Create(room models.Room) (models.Room, error) {
	err := config.DB.Create(&room).Error
	return room, err
}

func (s RoomService) GetAll(roomGroupID *uint, status *string) ([]models.Room, error) {
	q := config.DB.Order("room_number")
	if roomGroupID != nil {
		q = q.Where("room_group_id = ?", *roomGroupID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var rooms []models.Room
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := config.DB.Preload("RoomGroup").First(&room, id).Error
	return room, err
}

func (s RoomService) Update(room models.Room) error {
	return config.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

func (s RoomService) Delete(id uint) error {
	var count int64
	if err := config.DB.Model(&models.Assignment{}).Where("room_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomHasAssignments
	}
	return config.DB.Delete(&models.Room{}, id).Error
}
