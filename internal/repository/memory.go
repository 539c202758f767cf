package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
)

// MemoryUsers is an in-memory UserRepository with the same invariants as the
// Mongo implementation. Used by tests.
type MemoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]models.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{byEmail: make(map[string]models.User)}
}

func (r *MemoryUsers) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return primitive.NilObjectID, ErrEmailTaken
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.byEmail[user.Email] = *user
	return user.ID, nil
}

func (r *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// MemoryDocuments is an in-memory DocumentRepository. Insertion order stands
// in for object-id order, so ListByOwner returns newest first like the Mongo
// implementation.
type MemoryDocuments struct {
	mu   sync.Mutex
	docs []models.Document
}

func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{}
}

func (r *MemoryDocuments) Insert(_ context.Context, doc *models.Document) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.docs = append(r.docs, *doc)
	return doc.ID, nil
}

func (r *MemoryDocuments) ListByOwner(_ context.Context, ownerID string) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Document, 0)
	for i := len(r.docs) - 1; i >= 0; i-- {
		if r.docs[i].OwnerID == ownerID {
			out = append(out, r.docs[i])
		}
	}
	return out, nil
}

func (r *MemoryDocuments) DeleteOwned(_ context.Context, id primitive.ObjectID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, doc := range r.docs {
		if doc.ID == id && doc.OwnerID == ownerID {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
