package models

import (
	"gorm.io/gorm"
)

// Room statuses. Availability queries may filter on one of these; when no
// status filter is given, rooms of ANY status are eligible so an admin can
// knowingly assign a DAMAGED room.
const (
	RoomStatusNormal       = "NORMAL"
	RoomStatusInactive     = "INACTIVE"
	RoomStatusConstruction = "CONSTRUCTION"
	RoomStatusDamaged      = "DAMAGED"
)

// ValidRoomStatus reports whether s is one of the known room statuses.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusNormal, RoomStatusInactive, RoomStatusConstruction, RoomStatusDamaged:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	RoomGroupID uint   `json:"roomGroupId" gorm:"column:room_group_id;index"`
	RoomNumber  string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Status      string `json:"status" gorm:"size:32;default:NORMAL"`

	Floor        string  `json:"floor" gorm:"type:varchar(10)"`
	Price        float64 `json:"price"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	RoomGroup RoomGroup `gorm:"foreignKey:RoomGroupID" json:"roomGroup,omitempty"`
}
