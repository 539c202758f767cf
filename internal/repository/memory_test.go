package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
)

func TestListByOwnerIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := NewMemoryDocuments()

	// Interleaved creations by two owners.
	for i := 0; i < 6; i++ {
		owner := "alice"
		if i%2 == 1 {
			owner = "bob"
		}
		_, err := docs.Insert(ctx, &models.Document{OwnerID: owner, Name: fmt.Sprintf("doc-%d", i)})
		require.NoError(t, err)
	}

	aliceDocs, err := docs.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceDocs, 3)
	for _, d := range aliceDocs {
		assert.Equal(t, "alice", d.OwnerID)
	}
}

func TestListByOwnerNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := NewMemoryDocuments()

	for i := 0; i < 3; i++ {
		_, err := docs.Insert(ctx, &models.Document{OwnerID: "u", Name: fmt.Sprintf("doc-%d", i)})
		require.NoError(t, err)
	}

	listed, err := docs.ListByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "doc-2", listed[0].Name)
	assert.Equal(t, "doc-0", listed[2].Name)
}

func TestDeleteOwnedRequiresOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := NewMemoryDocuments()

	id, err := docs.Insert(ctx, &models.Document{OwnerID: "bob", Name: "bobs-doc"})
	require.NoError(t, err)

	// Alice cannot delete Bob's document, and cannot learn it exists.
	err = docs.DeleteOwned(ctx, id, "alice")
	require.ErrorIs(t, err, ErrNotFound)

	// Unknown id fails identically.
	err = docs.DeleteOwned(ctx, primitive.NewObjectID(), "alice")
	require.ErrorIs(t, err, ErrNotFound)

	// Bob's document is intact and Bob can delete it.
	bobDocs, err := docs.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobDocs, 1)
	require.NoError(t, docs.DeleteOwned(ctx, id, "bob"))

	bobDocs, err = docs.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobDocs)
}

func TestConcurrentInserts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := NewMemoryDocuments()

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := docs.Insert(ctx, &models.Document{
				OwnerID:  "u",
				Name:     fmt.Sprintf("doc-%d", i),
				FileData: fmt.Sprintf("payload-%d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	listed, err := docs.ListByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, listed, n)

	seen := make(map[primitive.ObjectID]bool, n)
	for _, d := range listed {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID.Hex())
		seen[d.ID] = true
		// Payloads must not interleave: each record keeps the payload its
		// name says it was written with.
		assert.Equal(t, "payload"+d.Name[len("doc"):], d.FileData)
	}
}

func TestMemoryUsersDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := NewMemoryUsers()

	_, err := users.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrEmailTaken)

	// The original record survives.
	u, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", u.PasswordHash)
}
