package payment

import (
	"context"

	"roadbuddy/models"

	"github.com/go-redis/redis/v8"
)

// PaymentService prepares the client-side payment sheet for a ride booking.
type PaymentService interface {
	// CreatePaymentSheet resolves (or creates) the Stripe customer for the
	// user, mints a fresh ephemeral key and a card payment intent for the
	// given dollar amount, and returns the secrets the mobile client needs.
	CreatePaymentSheet(ctx context.Context, userID string, amount float64) (*models.PaymentSheet, error)
}

// DefaultPaymentService is the production implementation backed by Stripe,
// with the per-user customer ID cached in Redis.
type DefaultPaymentService struct {
	Cache *redis.Client
}
