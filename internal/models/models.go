package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The bcrypt hash never leaves the server;
// it is excluded from JSON along with the creation timestamp.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"-"`
}

// Document is an uploaded medical file plus its AI summary, owned by exactly
// one user. Records are immutable after creation; the only transition is
// deletion by the owner.
type Document struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID string             `bson:"userId" json:"userId"`
	Name    string             `bson:"name" json:"name"`
	Type    string             `bson:"type" json:"type"`
	// FileData holds the upload inline as a data:<type>;base64,<data> URI.
	FileData   string `bson:"fileData" json:"fileData"`
	Summary    string `bson:"summary" json:"summary"`
	UploadedAt string `bson:"uploadedAt" json:"uploadedAt"`
}
