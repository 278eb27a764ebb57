package dto

import (
	"contacts-api/internal/models"
)

// ContactDTO represents a contact in API responses
type ContactDTO struct {
	ID          uint64 `json:"id"`
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phone_number"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	return ContactDTO{
		ID:          contact.ID,
		Fullname:    contact.Fullname,
		PhoneNumber: contact.PhoneNumber,
	}
}

// ToContactListDTO converts a slice of contacts, never returning nil so the
// JSON body carries an empty array instead of null.
func ToContactListDTO(contacts []models.Contact) []ContactDTO {
	items := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		items[i] = ToContactDTO(contact)
	}
	return items
}
