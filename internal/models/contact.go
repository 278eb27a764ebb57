package models

import (
	"time"
)

type Contact struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Fullname    string    `gorm:"type:varchar(255);not null" json:"fullname"`
	PhoneNumber string    `gorm:"type:varchar(255);not null" json:"phone_number"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
