package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"roadbuddy/apperror"
	"roadbuddy/config"
	"roadbuddy/models"
	"roadbuddy/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/ephemeralkey"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ephemeralKeyAPIVersion pins the Stripe API version the mobile SDK expects.
const ephemeralKeyAPIVersion = "2020-08-27"

const customerCacheTTL = 24 * time.Hour

// CreatePaymentSheet builds the paymentIntent/ephemeralKey/customer triple
// the mobile payment sheet needs.
func (s *DefaultPaymentService) CreatePaymentSheet(ctx context.Context, userID string, amount float64) (*models.PaymentSheet, error) {
	customerID, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	keyParams := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(ephemeralKeyAPIVersion),
	}
	key, err := ephemeralkey.New(keyParams)
	if err != nil {
		return nil, paymentError(err)
	}

	intentParams := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountToCents(amount)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Description:        stripe.String("Payment for ride request"),
	}
	intentParams.SetIdempotencyKey(uuid.NewString())
	intent, err := paymentintent.New(intentParams)
	if err != nil {
		return nil, paymentError(err)
	}

	return &models.PaymentSheet{
		PaymentIntent:  intent.ClientSecret,
		EphemeralKey:   key.Secret,
		Customer:       customerID,
		PublishableKey: config.AppConfig.StripePublishableKey,
	}, nil
}

// customerForUser returns the user's Stripe customer ID, creating the
// customer on first use. The ID is cached so repeated bookings reuse the
// same customer.
func (s *DefaultPaymentService) customerForUser(ctx context.Context, userID string) (string, error) {
	cacheKey := utils.StripeCustomerPrefix + userID

	cached, err := s.Cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		utils.GetLogger().Sugar().Warnf("Payment customer cache lookup failed for user %s: %v", userID, err)
	}

	params := &stripe.CustomerParams{}
	params.AddMetadata("user_id", userID)
	cust, err := customer.New(params)
	if err != nil {
		return "", paymentError(err)
	}

	if err := s.Cache.Set(ctx, cacheKey, cust.ID, customerCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("Failed to cache payment customer for user %s: %v", userID, err)
	}
	return cust.ID, nil
}

func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func paymentError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return apperror.Payment("Stripe payment processing failed.", stripeErr)
	}
	return apperror.Payment("Stripe payment processing failed.", err)
}
