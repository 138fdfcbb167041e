package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod is pure configuration: which ways of paying the front desk
// accepts. No payment state lives here.
type PaymentMethod struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string         `json:"name" gorm:"uniqueIndex;size:150"`
	Code   string         `json:"code" gorm:"size:50"`
	Active bool           `json:"active" gorm:"default:true"`
	Config datatypes.JSON `json:"config,omitempty" gorm:"column:config"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
