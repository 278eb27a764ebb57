package repository

import (
	"contacts-api/internal/database"
	"contacts-api/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create inserts a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID, scoped to the owning user
func (r *GormContactRepository) FindByID(id, userID uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByUser lists all contacts owned by a user
func (r *GormContactRepository) ListByUser(userID uint64) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Scopes(database.OwnedBy(userID)).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update persists changes to a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact
func (r *GormContactRepository) Delete(contact *models.Contact) error {
	return r.db.Delete(contact).Error
}
