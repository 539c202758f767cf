package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/auth"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/config"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/database"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/handlers"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/logging"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/repository"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/server"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewJSONLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error(context.Background(), "mongodb disconnect failed", "err", err)
		}
	}()
	logger.Info(ctx, "connected to MongoDB")

	db := client.Database(cfg.DBName)

	users := repository.NewMongoUsers(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongodb indexes: %v", err)
	}
	docs := repository.NewMongoDocuments(db)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	credentials := auth.NewService(users, cfg.BcryptCost)
	summarizer := services.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.GatewayTimeout, logger)

	router := server.NewRouter(server.Deps{
		Auth:      auth.NewHandler(credentials, tokens, logger),
		Documents: handlers.NewDocumentHandler(docs, summarizer, logger),
		Tokens:    tokens,
		Log:       logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info(ctx, "server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(context.Background(), "shutdown failed", "err", err)
	}
}
