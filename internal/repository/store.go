package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accumedlab/accumed-api/internal/models"
)

const (
	usersCollection        = "users"
	testsCollection        = "allTest"
	reservationsCollection = "allReservation"
	bannersCollection      = "allBanner"
	appointmentsCollection = "appointmentResult"
	ratingsCollection      = "ratings"
	recommendsCollection   = "recommends"
)

// Store wires the database handle to the named collections the API serves.
// One Store is built at startup and shared by every handler.
type Store struct {
	db  *mongo.Database
	log zerolog.Logger
}

func NewStore(db *mongo.Database, logger zerolog.Logger) *Store {
	return &Store{db: db, log: logger}
}

func (s *Store) Users() *mongo.Collection        { return s.db.Collection(usersCollection) }
func (s *Store) Tests() *mongo.Collection        { return s.db.Collection(testsCollection) }
func (s *Store) Reservations() *mongo.Collection { return s.db.Collection(reservationsCollection) }
func (s *Store) Banners() *mongo.Collection      { return s.db.Collection(bannersCollection) }
func (s *Store) Appointments() *mongo.Collection { return s.db.Collection(appointmentsCollection) }
func (s *Store) Ratings() *mongo.Collection      { return s.db.Collection(ratingsCollection) }
func (s *Store) Recommends() *mongo.Collection   { return s.db.Collection(recommendsCollection) }

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return FindOneBy[models.User](ctx, s.Users(), bson.M{"email": email})
}

// IsAdmin reports whether the user with the given email has the admin role.
// A missing user record is non-admin, not an error.
func (s *Store) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.UserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
