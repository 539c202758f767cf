package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/logging"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/repository"
)

// Handler serves /signup and /login.
type Handler struct {
	service *Service
	tokens  *TokenService
	log     logging.Logger
}

func NewHandler(service *Service, tokens *TokenService, log logging.Logger) *Handler {
	return &Handler{service: service, tokens: tokens, log: log}
}

type CredentialsPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var payload CredentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	_, err := h.service.Register(c.Request.Context(), payload.Email, payload.Password)
	if errors.Is(err, repository.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}
	if err != nil {
		h.log.Error(c.Request.Context(), "signup failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signup successful!"})
}

func (h *Handler) Login(c *gin.Context) {
	var payload CredentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), payload.Email, payload.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		// Same answer whether the email is unknown or the password is wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		h.log.Error(c.Request.Context(), "login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		h.log.Error(c.Request.Context(), "token issue failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
