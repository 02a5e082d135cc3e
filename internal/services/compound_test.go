package services

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
	"github.com/accumedlab/accumed-api/internal/repository"
)

func testStore(t *testing.T) *repository.Store {
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

	return repository.NewStore(db, zerolog.Nop())
}

func activeBanners(t *testing.T, store *repository.Store) []models.Banner {
	t.Helper()
	banners, err := repository.All[models.Banner](context.Background(), store.Banners(), bson.M{"isActive": "true"})
	require.NoError(t, err)
	return banners
}

func TestBannerActivationIsExclusive(t *testing.T) {
	store := testStore(t)
	svc := NewBannerService(store, zerolog.Nop())
	ctx := context.Background()

	ids := make([]primitive.ObjectID, 3)
	for i, active := range []string{"true", "false", "false"} {
		banner := models.Banner{ID: primitive.NewObjectID(), Name: "b", IsActive: active}
		_, err := repository.InsertOne(ctx, store.Banners(), banner)
		require.NoError(t, err)
		ids[i] = banner.ID
	}

	// Activating each banner in turn always leaves exactly one active.
	for _, id := range ids {
		require.NoError(t, svc.Activate(ctx, id))

		active := activeBanners(t, store)
		require.Len(t, active, 1)
		assert.Equal(t, id, active[0].ID)
	}
}

func TestActivateMissingBanner(t *testing.T) {
	store := testStore(t)
	svc := NewBannerService(store, zerolog.Nop())

	err := svc.Activate(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompletePayment(t *testing.T) {
	store := testStore(t)
	svc := NewPaymentService(store, "sk_test_unused", zerolog.Nop())
	ctx := context.Background()

	r1 := models.Reservation{ID: primitive.NewObjectID(), Email: "a@x.com", TestName: "CBC"}
	r2 := models.Reservation{ID: primitive.NewObjectID(), Email: "a@x.com", TestName: "X-Ray"}
	for _, r := range []models.Reservation{r1, r2} {
		_, err := repository.InsertOne(ctx, store.Reservations(), r)
		require.NoError(t, err)
	}

	created, err := svc.Complete(ctx, models.Appointment{
		Email:         "a@x.com",
		TestName:      "CBC",
		Price:         49.5,
		ReservationID: []string{r1.ID.Hex(), r2.ID.Hex()},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.TransactionID)
	assert.Equal(t, models.ReportPending, created.ReportStatus)

	// The payment record is present and both covered reservations are gone.
	stored, err := repository.FindByID[models.Appointment](ctx, store.Appointments(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TransactionID, stored.TransactionID)

	remaining, err := repository.All[models.Reservation](ctx, store.Reservations(), bson.M{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
