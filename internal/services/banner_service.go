package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accumedlab/accumed-api/internal/repository"
)

// BannerService owns the exclusive-activation rule: at most one banner is
// active at any time.
type BannerService struct {
	store *repository.Store
	log   zerolog.Logger
}

func NewBannerService(store *repository.Store, logger zerolog.Logger) *BannerService {
	return &BannerService{store: store, log: logger}
}

// Activate makes the given banner the only active one. Every banner is
// deactivated first, then the target is activated; a crash between the two
// steps leaves zero active banners, never two.
func (s *BannerService) Activate(ctx context.Context, bannerID primitive.ObjectID) error {
	banners := s.store.Banners()

	if _, err := repository.UpdateMany(ctx, banners, bson.M{}, bson.M{"$set": bson.M{"isActive": "false"}}); err != nil {
		return err
	}

	result, err := repository.UpdateByID(ctx, banners, bannerID, bson.M{"$set": bson.M{"isActive": "true"}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	s.log.Info().Str("bannerId", bannerID.Hex()).Msg("banner activated")
	return nil
}
