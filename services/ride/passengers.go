package ride

import (
	"context"

	"roadbuddy/apperror"
	"roadbuddy/models"

	"cloud.google.com/go/firestore"
)

// addPassenger computes the updated passenger list and status for a booking.
// It reports alreadyPassenger when the caller is already on the ride.
func addPassenger(r *models.Ride, callerID string) (passengers []string, status string, alreadyPassenger bool, err error) {
	for _, p := range r.CurrentPassengers {
		if p == callerID {
			return r.CurrentPassengers, r.Status, true, nil
		}
	}
	if len(r.CurrentPassengers) >= r.MaxPassengers {
		return nil, "", false, apperror.Conflict("Ride is full")
	}

	passengers = append(append([]string{}, r.CurrentPassengers...), callerID)
	status = models.RideStatusOpen
	if len(passengers) == r.MaxPassengers {
		status = models.RideStatusClosed
	}
	return passengers, status, false, nil
}

// removePassenger computes the updated passenger list and status for a
// cancellation. Owners must delete the ride instead of leaving it.
func removePassenger(r *models.Ride, callerID string) (passengers []string, status string, err error) {
	if callerID == r.OwnerID {
		return nil, "", apperror.Forbidden("User cannot remove themselves from their own ride, must delete it.").
			WithStatus(400)
	}

	found := false
	passengers = make([]string, 0, len(r.CurrentPassengers))
	for _, p := range r.CurrentPassengers {
		if p == callerID {
			found = true
			continue
		}
		passengers = append(passengers, p)
	}
	if !found {
		return nil, "", apperror.Forbidden("User is not a passenger of the ride.").
			WithStatus(400)
	}

	status = r.Status
	if status == models.RideStatusClosed {
		status = models.RideStatusOpen
	}
	return passengers, status, nil
}

// AddPassenger books the caller onto the ride, closing it exactly when the
// new passenger count reaches capacity.
func (s *DefaultRideService) AddPassenger(ctx context.Context, callerID, rideID string) (bool, error) {
	r, err := s.GetRide(ctx, rideID)
	if err != nil {
		return false, err
	}

	passengers, rideStatus, already, err := addPassenger(r, callerID)
	if err != nil {
		return false, err
	}
	if already {
		return true, nil
	}

	if _, err := s.ridesRef().Doc(rideID).Update(ctx, []firestore.Update{
		{Path: "currentPassengers", Value: passengers},
		{Path: "status", Value: rideStatus},
	}); err != nil {
		return false, apperror.Store("Failed to add user to this ride, please try again.", err)
	}
	return false, nil
}

// RemovePassenger takes the caller off the ride, reopening it if it was
// closed.
func (s *DefaultRideService) RemovePassenger(ctx context.Context, callerID, rideID string) error {
	r, err := s.GetRide(ctx, rideID)
	if err != nil {
		return err
	}

	passengers, rideStatus, err := removePassenger(r, callerID)
	if err != nil {
		return err
	}

	if _, err := s.ridesRef().Doc(rideID).Update(ctx, []firestore.Update{
		{Path: "currentPassengers", Value: passengers},
		{Path: "status", Value: rideStatus},
	}); err != nil {
		return apperror.Store("Failed to remove user from this ride.", err)
	}
	return nil
}
