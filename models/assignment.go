package models

import (
	"gorm.io/gorm"
)

// Assignment links one reservation to one room for the reservation's stay
// window. A reservation may span several rooms; two live reservations must
// never hold overlapping assignments to the same room. The composite unique
// index is the storage-level backstop for concurrent writes slipping past
// the guard check (see services.ReservationService).
type Assignment struct {
	gorm.Model
	ReservationID uint `gorm:"index;column:reservation_id;uniqueIndex:idx_assignment_room_res" json:"reservation_id"`
	RoomID        uint `gorm:"index;column:room_id;uniqueIndex:idx_assignment_room_res" json:"room_id"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`
	Room        Room        `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
