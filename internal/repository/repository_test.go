package repository

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/accumedlab/accumed-api/internal/models"
)

// testStore connects to the mongo instance named by MONGO_TEST_URI, skipping
// the test when none is configured.
func testStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("accumed_test")
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return NewStore(db, zerolog.Nop())
}

func TestUserLifecycle(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	user := models.User{Email: "crud@x.com", Name: "Crud User", Status: "active"}
	result, err := InsertOne(ctx, store.Users(), user)
	require.NoError(t, err)
	require.NotNil(t, result.InsertedID)

	found, err := store.UserByEmail(ctx, "crud@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Crud User", found.Name)
	assert.True(t, found.IsActive())

	_, err = UpdateByID(ctx, store.Users(), found.ID, bson.M{"$set": bson.M{"role": "admin"}})
	require.NoError(t, err)

	admin, err := store.IsAdmin(ctx, "crud@x.com")
	require.NoError(t, err)
	assert.True(t, admin)

	deleted, err := DeleteByID(ctx, store.Users(), found.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	_, err = store.UserByEmail(ctx, "crud@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsAdminMissingUser(t *testing.T) {
	store := testStore(t)

	admin, err := store.IsAdmin(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIncByIDCanGoNegative(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	test := models.Test{Name: "CBC", Slots: 1, Date: "2026-09-01"}
	result, err := InsertOne(ctx, store.Tests(), test)
	require.NoError(t, err)
	oid, ok := result.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, err := IncByID(ctx, store.Tests(), oid, "slots", -1)
		require.NoError(t, err)
	}

	stored, err := FindByID[models.Test](ctx, store.Tests(), oid)
	require.NoError(t, err)
	assert.Equal(t, -2, stored.Slots)
}

func TestAllReturnsEmptySlice(t *testing.T) {
	store := testStore(t)

	tests, err := All[models.Test](context.Background(), store.Tests(), bson.M{"name": "missing"})
	require.NoError(t, err)
	assert.NotNil(t, tests)
	assert.Empty(t, tests)
}
