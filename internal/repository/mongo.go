package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
)

type MongoUsers struct {
	coll *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique index on email that backs ErrEmailTaken.
// Run once at startup.
func (r *MongoUsers) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUsers) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrEmailTaken
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type MongoDocuments struct {
	coll *mongo.Collection
}

func NewMongoDocuments(db *mongo.Database) *MongoDocuments {
	return &MongoDocuments{coll: db.Collection("documents")}
}

func (r *MongoDocuments) Insert(ctx context.Context, doc *models.Document) (primitive.ObjectID, error) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return doc.ID, nil
}

func (r *MongoDocuments) ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = make([]models.Document, 0)
	}
	return docs, nil
}

func (r *MongoDocuments) DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) error {
	// Single combined filter: matching on id alone would open a window where
	// another user's document could be deleted between check and delete.
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": ownerID}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
