// Package repository holds the persistence boundary: one interface per
// collection, a MongoDB implementation for production, and an in-memory
// implementation used by tests.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
)

var (
	// ErrEmailTaken signals a signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound covers both a missing record and a record owned by someone
	// else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
)

type UserRepository interface {
	// Create stores a new user. Email uniqueness is enforced here: a second
	// user with the same email fails with ErrEmailTaken and never overwrites.
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)

	// FindByEmail does an exact, case-sensitive lookup.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type DocumentRepository interface {
	Insert(ctx context.Context, doc *models.Document) (primitive.ObjectID, error)

	// ListByOwner returns only ownerID's documents, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error)

	// DeleteOwned removes the document matching both id and owner in a single
	// lookup. No match, for either reason, is ErrNotFound.
	DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) error
}
