package car

import (
	"context"
	"errors"

	"roadbuddy/models"

	"cloud.google.com/go/firestore"
)

// ErrNoCars signals an empty registry for the owner. It is an empty-result
// signal, not a failure; handlers respond 204.
var ErrNoCars = errors.New("no cars have been added")

// CarService owns a user's vehicle records.
type CarService interface {
	AddCar(ctx context.Context, ownerID string, input CarInput) (*models.Car, error)
	GetCars(ctx context.Context, ownerID string) ([]models.CarSummary, error)
}

// CarInput is the validated payload for adding a car. IsPrimary arrives as
// either a bool or a "true"/"false" string depending on the client.
type CarInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	IsPrimary    any    `json:"isPrimary"`
}

// DefaultCarService is the production implementation.
type DefaultCarService struct {
	DB *firestore.Client
}
