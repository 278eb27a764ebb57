package services

import (
	"errors"
	"fmt"

	"contacts-api/internal/models"
	"contacts-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound       = errors.New("contact not found")
	ErrFailedToCreateContact = errors.New("failed to create contact")
	ErrFailedToUpdateContact = errors.New("failed to update contact")
	ErrFailedToDeleteContact = errors.New("failed to delete contact")
)

// ContactService handles contact business logic. Every operation is scoped
// to the owning user; contacts of other users are reported as not found.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// List returns all contacts owned by the user, in insertion order.
func (s *ContactService) List(userID uint64) ([]models.Contact, error) {
	contacts, err := s.contactRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// CreateInput represents the required information to create a contact.
type CreateInput struct {
	Fullname    string
	PhoneNumber string
}

// Create inserts a new contact owned by the user.
func (s *ContactService) Create(userID uint64, input CreateInput) (*models.Contact, error) {
	contact := &models.Contact{
		Fullname:    input.Fullname,
		PhoneNumber: input.PhoneNumber,
		UserID:      userID,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, ErrFailedToCreateContact
	}

	return contact, nil
}

// Get retrieves a contact owned by the user.
func (s *ContactService) Get(id, userID uint64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// UpdateInput carries the fields of a partial contact update. Nil fields
// keep their stored value.
type UpdateInput struct {
	Fullname    *string
	PhoneNumber *string
}

// Update applies a partial update to a contact owned by the user.
func (s *ContactService) Update(id, userID uint64, input UpdateInput) (*models.Contact, error) {
	contact, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if input.Fullname != nil {
		contact.Fullname = *input.Fullname
	}
	if input.PhoneNumber != nil {
		contact.PhoneNumber = *input.PhoneNumber
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, ErrFailedToUpdateContact
	}

	return contact, nil
}

// Delete removes a contact owned by the user.
func (s *ContactService) Delete(id, userID uint64) error {
	contact, err := s.Get(id, userID)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Delete(contact); err != nil {
		return ErrFailedToDeleteContact
	}

	return nil
}
