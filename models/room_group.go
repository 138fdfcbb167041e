package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomGroup is a named pool of rooms. Availability browsing always operates
// within one group's pool.
type RoomGroup struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `json:"name" gorm:"uniqueIndex;size:150"`
	Description string `json:"description" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:RoomGroupID" json:"rooms,omitempty"`
}
