package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/logging"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/middleware"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/repository"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/services"
)

// DocumentHandler serves the document routes. The owning user id always
// comes from the auth middleware's context, never from the client.
type DocumentHandler struct {
	docs       repository.DocumentRepository
	summarizer services.Summarizer
	log        logging.Logger
}

func NewDocumentHandler(docs repository.DocumentRepository, summarizer services.Summarizer, log logging.Logger) *DocumentHandler {
	return &DocumentHandler{docs: docs, summarizer: summarizer, log: log}
}

// SummarizePayload is the upload body: the file as plain base64 plus its
// media type.
type SummarizePayload struct {
	Base64   string `json:"base64" binding:"required"`
	FileType string `json:"fileType" binding:"required"`
}

// Summarize sends the upload to the AI gateway and stores the document.
// Nothing is written unless the gateway returns a summary.
func (h *DocumentHandler) Summarize(c *gin.Context) {
	userID := middleware.ForContext(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payload SummarizePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File content and type are required"})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(payload.Base64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 file content"})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), raw, payload.FileType)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrGatewayTimeout) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": "Failed to summarize document"})
		return
	}

	doc := models.Document{
		ID:         primitive.NewObjectID(),
		OwnerID:    userID,
		Name:       "Medical Document",
		Type:       payload.FileType,
		FileData:   "data:" + payload.FileType + ";base64," + payload.Base64,
		Summary:    summary,
		UploadedAt: time.Now().Format("1/2/2006, 3:04:05 PM"),
	}
	if _, err := h.docs.Insert(c.Request.Context(), &doc); err != nil {
		h.log.Error(c.Request.Context(), "failed to save document", "err", err, "owner", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// List returns the caller's documents, newest first.
func (h *DocumentHandler) List(c *gin.Context) {
	userID := middleware.ForContext(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docs, err := h.docs.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to fetch documents", "err", err, "owner", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Delete removes one of the caller's documents. A document that does not
// exist and a document owned by someone else get the same 404.
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := middleware.ForContext(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	err = h.docs.DeleteOwned(c.Request.Context(), docID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to delete document", "err", err, "owner", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
