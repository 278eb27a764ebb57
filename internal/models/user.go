package models

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Fullname       string    `gorm:"type:varchar(255);not null" json:"fullname"`
	Email          string    `gorm:"type:varchar(100);not null;index" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Contacts []Contact `gorm:"foreignKey:UserID" json:"-"`
}
