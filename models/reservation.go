package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation lifecycle statuses.
const (
	ReservationStatusPending    = "PENDING"
	ReservationStatusConfirmed  = "CONFIRMED"
	ReservationStatusCheckedIn  = "CHECKED_IN"
	ReservationStatusCheckedOut = "CHECKED_OUT"
	ReservationStatusCancelled  = "CANCELLED"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code,omitempty"`
	Status        string `gorm:"column:status;size:64;default:PENDING" json:"status,omitempty"`

	// Stay dates are calendar dates (no time component). StayStartAt <= StayEndAt
	// is validated before anything touches availability logic.
	StayStartAt time.Time `gorm:"column:stay_start_at;type:date;index" json:"stayStartAt"`
	StayEndAt   time.Time `gorm:"column:stay_end_at;type:date;index" json:"stayEndAt"`

	GuestName      string         `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestEmail     string         `gorm:"column:guest_email;size:255" json:"guestEmail,omitempty"`
	NumberOfGuests int            `gorm:"column:number_of_guests;default:1" json:"numberOfGuests"`
	GuestList      datatypes.JSON `gorm:"column:guest_list" json:"guestList,omitempty"`

	// Pricing is recorded as entered, never computed here.
	TotalAmount     float64        `gorm:"column:total_amount" json:"totalAmount,omitempty"`
	PaymentMethodID *uint          `gorm:"column:payment_method_id;index" json:"paymentMethodId,omitempty"`
	PaymentMethod   *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"paymentMethod,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Assignments []Assignment `gorm:"foreignKey:ReservationID" json:"assignments,omitempty"`
}
