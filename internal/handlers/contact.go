package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contacts-api/internal/dto"
	apierrors "contacts-api/internal/errors"
	"contacts-api/internal/middleware"
	"contacts-api/internal/services"
	"contacts-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// ContactHandler coordinates contact CRUD HTTP handlers. All routes sit
// behind RequireAuth, so the acting user is always present in the context.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ListContacts returns all contacts owned by the current user.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contacts, err := h.contactService.List(userID)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToContactListDTO(contacts),
	})
}

// CreateContact creates a new contact owned by the current user.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := validation.ValidateCreateContact(payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	_, err := h.contactService.Create(userID, services.CreateInput{
		Fullname:    payload["fullname"].(string),
		PhoneNumber: payload["phone_number"].(string),
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact created successfully",
	})
}

// GetContact returns a single contact owned by the current user.
func (h *ContactHandler) GetContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(contactID, userID)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToContactDTO(*contact),
	})
}

// UpdateContact applies a partial update to a contact owned by the current
// user and returns the updated record.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := validation.ValidateUpdateContact(payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(contactID, userID, services.UpdateInput{
		Fullname:    optionalString(payload, "fullname"),
		PhoneNumber: optionalString(payload, "phone_number"),
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToContactDTO(*contact),
	})
}

// DeleteContact removes a contact owned by the current user.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	contactID, ok := parseContactID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(contactID, userID); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
	})
}

func parseContactID(c *gin.Context) (uint64, bool) {
	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact ID")
		return 0, false
	}
	return contactID, true
}

func optionalString(payload map[string]any, key string) *string {
	if v, ok := payload[key].(string); ok {
		return &v
	}
	return nil
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, "Contact not found")
	default:
		apierrors.InternalError(c, "")
	}
}
