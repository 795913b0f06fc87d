package car

import (
	"context"
	"strings"

	"roadbuddy/apperror"
	"roadbuddy/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *DefaultCarService) carsRef(ownerID string) *firestore.CollectionRef {
	return s.DB.Collection("users").Doc(ownerID).Collection("cars")
}

// AddCar persists a new car for the owner. A car with the same VIN is
// rejected; a new primary car demotes the existing one first (two separate
// writes, not atomic).
func (s *DefaultCarService) AddCar(ctx context.Context, ownerID string, input CarInput) (*models.Car, error) {
	isPrimary := NormalizeBoolean(input.IsPrimary)
	car := &models.Car{
		Make:         input.Make,
		Model:        input.Model,
		LicensePlate: input.LicensePlate,
		VIN:          input.VIN,
		Year:         input.Year,
		Color:        input.Color,
		IsPrimary:    isPrimary,
	}

	duplicate, err := s.hasCarWithVIN(ctx, ownerID, car.VIN)
	if err != nil {
		return nil, apperror.Store("Failed to add car. Please try again.", err)
	}
	if duplicate {
		return nil, apperror.Conflict("Duplicate car detected")
	}

	if isPrimary {
		if err := s.unsetExistingPrimary(ctx, ownerID); err != nil {
			return nil, apperror.Store("Failed to add car. Please try again.", err)
		}
	}

	ref := s.carsRef(ownerID).NewDoc()
	if _, err := ref.Set(ctx, car); err != nil {
		return nil, apperror.Store("Failed to add car. Please try again.", err)
	}
	car.ID = ref.ID
	return car, nil
}

// GetCars returns all cars for the owner projected to the fixed summary
// fields, or ErrNoCars when the registry is empty.
func (s *DefaultCarService) GetCars(ctx context.Context, ownerID string) ([]models.CarSummary, error) {
	iter := s.carsRef(ownerID).Documents(ctx)
	defer iter.Stop()

	var cars []models.CarSummary
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Store("Failed to fetch added cars. Please try again.", err)
		}

		var summary models.CarSummary
		if err := snap.DataTo(&summary); err != nil {
			return nil, apperror.Store("Failed to fetch added cars. Please try again.", err)
		}
		cars = append(cars, summary)
	}

	if len(cars) == 0 {
		return nil, ErrNoCars
	}
	return cars, nil
}

func (s *DefaultCarService) hasCarWithVIN(ctx context.Context, ownerID, vin string) (bool, error) {
	iter := s.carsRef(ownerID).Where("vin", "==", vin).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DefaultCarService) unsetExistingPrimary(ctx context.Context, ownerID string) error {
	iter := s.carsRef(ownerID).Where("isPrimary", "==", true).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := snap.Ref.Update(ctx, []firestore.Update{
			{Path: "isPrimary", Value: false},
		}); err != nil {
			return err
		}
	}
}

// NormalizeBoolean converts the mixed client representations of isPrimary
// into a bool.
func NormalizeBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
