package handlers

import (
	"net/http"
	"testing"

	"roadbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentPayload(overrides map[string]any) map[string]any {
	payload := map[string]any{
		"rideId": "ride-9",
		"amount": "25.00",
		"refund": "false",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func futureRide() *models.Ride {
	return &models.Ride{
		ID:                "ride-9",
		OwnerID:           "owner-1",
		From:              "Seattle",
		To:                "Portland",
		Date:              "2099-06-01",
		DepartureTime:     "9:00 AM",
		MaxPassengers:     3,
		CurrentPassengers: []string{},
		Status:            models.RideStatusOpen,
	}
}

func TestPaymentSheetHandlerReturnsSheet(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) { return futureRide(), nil }
	m.payments.createFn = func(userID string, amount float64) (*models.PaymentSheet, error) {
		assert.Equal(t, testUserID, userID)
		assert.InDelta(t, 25.0, amount, 0.0001)
		return &models.PaymentSheet{
			PaymentIntent: "pi_secret",
			EphemeralKey:  "ek_secret",
			Customer:      "cus_123",
		}, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet", paymentPayload(nil), true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pi_secret", body["paymentIntent"])
	assert.Equal(t, "ek_secret", body["ephemeralKey"])
	assert.Equal(t, "cus_123", body["customer"])
}

func TestPaymentSheetHandlerRejectsOwnRide(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) {
		r := futureRide()
		r.OwnerID = testUserID
		return r, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet", paymentPayload(nil), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User cannot book its own ride.", decodeBody(t, rec)["error"])
}

func TestPaymentSheetHandlerRejectsFullRide(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) {
		r := futureRide()
		r.CurrentPassengers = []string{"p1", "p2", "p3"}
		return r, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet", paymentPayload(nil), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ride is full", decodeBody(t, rec)["error"])
}

func TestPaymentSheetHandlerRejectsPastRide(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) {
		r := futureRide()
		r.Date = "2001-06-01"
		return r, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet", paymentPayload(nil), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "This ride is no longer available.", decodeBody(t, rec)["error"])
}

func TestPaymentSheetHandlerRejectsExistingPassenger(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) {
		r := futureRide()
		r.CurrentPassengers = []string{testUserID}
		return r, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet", paymentPayload(nil), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already a passenger of this ride.", decodeBody(t, rec)["error"])
}

func TestPaymentSheetHandlerRefundSkipsBookingGuards(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) {
		r := futureRide()
		r.OwnerID = testUserID
		r.CurrentPassengers = []string{testUserID, "p2", "p3"}
		return r, nil
	}

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet",
		paymentPayload(map[string]any{"refund": "true"}), true)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentSheetHandlerRejectsMalformedAmount(t *testing.T) {
	hb, m := newMockedBundle()
	m.rides.getRideFn = func(string) (*models.Ride, error) { return futureRide(), nil }

	rec := performRequest(t, hb.PaymentSheetHandler, http.MethodPost, "/api/payment-sheet", "/api/payment-sheet",
		paymentPayload(map[string]any{"amount": "twenty"}), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid amount format.", decodeBody(t, rec)["error"])
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"numeric string", "12.50", 12.50, true},
		{"string with spaces", " 8 ", 8, true},
		{"json number", float64(30), 30, true},
		{"words", "twenty", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseAmount(tc.value)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 0.0001)
			}
		})
	}
}

func TestIsRefund(t *testing.T) {
	assert.True(t, isRefund("true"))
	assert.True(t, isRefund(" True "))
	assert.True(t, isRefund(true))
	assert.False(t, isRefund("false"))
	assert.False(t, isRefund(nil))
	assert.False(t, isRefund(float64(1)))
}
