package repository

import (
	"contacts-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ContactRepository defines the interface for contact data access.
// Every lookup is scoped to the owning user; a contact belonging to a
// different user behaves exactly like a missing row.
type ContactRepository interface {
	// Create inserts a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID, scoped to the owning user
	FindByID(id, userID uint64) (*models.Contact, error)

	// ListByUser lists all contacts owned by a user
	ListByUser(userID uint64) ([]models.Contact, error)

	// Update persists changes to a contact
	Update(contact *models.Contact) error

	// Delete removes a contact
	Delete(contact *models.Contact) error
}
