// Package server assembles the gin router from its handlers. Kept separate
// from main so tests can run the whole app over httptest.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/auth"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/handlers"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/logging"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/middleware"
)

type Deps struct {
	Auth      *auth.Handler
	Documents *handlers.DocumentHandler
	Tokens    *auth.TokenService
	Log       logging.Logger
}

// NewRouter wires the route table. Every document route sits behind the auth
// guard; nothing else resolves an identity.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))

	router.GET("/health", handlers.HealthCheck)
	router.POST("/signup", d.Auth.Signup)
	router.POST("/login", d.Auth.Login)

	protected := router.Group("/").Use(middleware.RequireAuth(d.Tokens, d.Log))
	{
		protected.POST("/summarize", d.Documents.Summarize)
		protected.GET("/documents", d.Documents.List)
		protected.DELETE("/documents/:id", d.Documents.Delete)
	}

	return router
}
