package handlers

import (
	"errors"
	"net/http"

	"contacts-api/internal/dto"
	apierrors "contacts-api/internal/errors"
	"contacts-api/internal/services"
	"contacts-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := validation.ValidateRegister(payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Fullname: payload["fullname"].(string),
		Email:    payload["email"].(string),
		Password: payload["password"].(string),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
	})
}

// Login authenticates a user and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := validation.ValidateLogin(payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	accessToken, err := h.authService.Login(services.LoginInput{
		Email:    payload["email"].(string),
		Password: payload["password"].(string),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.TokenDTO{AccessToken: accessToken},
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		apierrors.InternalError(c, "")
	}
}
