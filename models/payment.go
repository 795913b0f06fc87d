// models/payment.go
package models

// PaymentSheet holds the client-side secrets needed to confirm a card
// payment for a ride booking.
type PaymentSheet struct {
	PaymentIntent  string `json:"paymentIntent"`
	EphemeralKey   string `json:"ephemeralKey"`
	Customer       string `json:"customer"`
	PublishableKey string `json:"publishableKey,omitempty"`
}
