package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a contact query to rows belonging to the given user.
// Every contact lookup goes through this scope so that a foreign contact
// is indistinguishable from a missing one.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
