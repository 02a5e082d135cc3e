package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accumedlab/accumed-api/internal/models"
	"github.com/accumedlab/accumed-api/internal/repository"
)

// PaymentService bridges to the payment provider and runs the
// payment-completion flow.
type PaymentService struct {
	store  *repository.Store
	stripe *client.API
	log    zerolog.Logger
}

func NewPaymentService(store *repository.Store, secretKey string, logger zerolog.Logger) *PaymentService {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &PaymentService{store: store, stripe: sc, log: logger}
}

// MinorUnits converts a price in major units to the integer minor-unit amount
// the provider expects. Fractions of a cent are truncated.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent asks the provider for a payment intent over the given price.
// Currency is fixed to USD and the method type to card; provider errors
// propagate to the caller unwrapped.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.stripe.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// Complete records a paid appointment and deletes the reservations the payment
// covered. The two steps are not transactional: a failure after the insert
// leaves the covered reservations in place, which is logged and surfaced but
// not repaired here.
func (s *PaymentService) Complete(ctx context.Context, apt models.Appointment) (*models.Appointment, error) {
	apt.ID = primitive.NewObjectID()
	if apt.TransactionID == "" {
		apt.TransactionID = uuid.NewString()
	}
	if apt.ReportStatus == "" {
		apt.ReportStatus = models.ReportPending
	}

	if _, err := repository.InsertOne(ctx, s.store.Appointments(), apt); err != nil {
		return nil, err
	}

	if _, err := repository.DeleteManyByIDs(ctx, s.store.Reservations(), apt.ReservationID); err != nil {
		s.log.Error().Err(err).
			Str("transactionId", apt.TransactionID).
			Msg("payment recorded but reservation cleanup failed")
		return nil, err
	}

	return &apt, nil
}
