package ride

import (
	"context"
	"time"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *DefaultRideService) ridesRef() *firestore.CollectionRef {
	return s.DB.Collection("rides")
}

func decodeRide(snap *firestore.DocumentSnapshot) (*models.Ride, error) {
	var r models.Ride
	if err := snap.DataTo(&r); err != nil {
		return nil, err
	}
	r.ID = snap.Ref.ID
	return &r, nil
}

// PostRide stores a new ride with a store-generated ID, status open and an
// empty passenger list. A ride matching an earlier post's route and schedule
// is rejected.
func (s *DefaultRideService) PostRide(ctx context.Context, ownerID, ownerName string, postedRideIDs []string, input models.RidePost) (*models.Ride, error) {
	duplicate, err := s.isDuplicatePost(ctx, postedRideIDs, input)
	if err != nil {
		return nil, apperror.Store("Failed to post ride, please try again.", err)
	}
	if duplicate {
		return nil, apperror.Conflict("Duplicate ride post detected")
	}

	r := &models.Ride{
		OwnerID:           ownerID,
		OwnerName:         ownerName,
		From:              input.From,
		To:                input.To,
		Date:              input.Date,
		DepartureTime:     input.DepartureTime,
		MaxPassengers:     input.MaxPassengers,
		Cost:              input.Cost,
		CurrentPassengers: []string{},
		Car:               input.Car,
		LicensePlate:      input.LicensePlate,
		Status:            models.RideStatusOpen,
	}

	ref := s.ridesRef().NewDoc()
	if _, err := ref.Set(ctx, r); err != nil {
		return nil, apperror.Store("Failed to post ride, please try again.", err)
	}
	r.ID = ref.ID
	return r, nil
}

// The duplicate-post guard re-reads each previously posted ride; rides that
// no longer exist are skipped.
func (s *DefaultRideService) isDuplicatePost(ctx context.Context, postedRideIDs []string, input models.RidePost) (bool, error) {
	for _, rideID := range postedRideIDs {
		snap, err := s.ridesRef().Doc(rideID).Get(ctx)
		if status.Code(err) == codes.NotFound {
			continue
		}
		if err != nil {
			return false, err
		}
		existing, err := decodeRide(snap)
		if err != nil {
			return false, err
		}
		if matchesPost(existing, input) {
			return true, nil
		}
	}
	return false, nil
}

func matchesPost(existing *models.Ride, input models.RidePost) bool {
	return existing.From == input.From &&
		existing.To == input.To &&
		existing.Date == input.Date &&
		existing.DepartureTime == input.DepartureTime
}

// GetRide fetches a single ride.
func (s *DefaultRideService) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	snap, err := s.ridesRef().Doc(rideID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("Ride not found")
	}
	if err != nil {
		return nil, apperror.Store("Failed to fetch ride details.", err)
	}

	r, err := decodeRide(snap)
	if err != nil {
		return nil, apperror.Store("Failed to fetch ride details.", err)
	}
	return r, nil
}

// GetRidesByIDs batch-fetches rides; IDs that no longer resolve are skipped.
func (s *DefaultRideService) GetRidesByIDs(ctx context.Context, rideIDs []string) ([]models.Ride, error) {
	refs := make([]*firestore.DocumentRef, 0, len(rideIDs))
	for _, rideID := range rideIDs {
		refs = append(refs, s.ridesRef().Doc(rideID))
	}

	snaps, err := s.DB.GetAll(ctx, refs)
	if err != nil {
		return nil, apperror.Store("Failed to fetch rides.", err)
	}

	rides := make([]models.Ride, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		r, err := decodeRide(snap)
		if err != nil {
			return nil, apperror.Store("Failed to fetch rides.", err)
		}
		rides = append(rides, *r)
	}
	return rides, nil
}

// DeleteRide removes the ride and returns the prior document. Only the owner
// may delete.
func (s *DefaultRideService) DeleteRide(ctx context.Context, callerID, rideID string) (*models.Ride, error) {
	r, err := s.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != callerID {
		return nil, apperror.Forbidden("Only the owner of this ride can delete it.").
			WithStatus(400)
	}

	if _, err := s.ridesRef().Doc(rideID).Delete(ctx); err != nil {
		return nil, apperror.Store("Failed to delete ride. Please try again.", err)
	}
	return r, nil
}

// AvailableRides scans open rides, keeps only those departing in the future
// and drops any ride in the exclusion set (already joined or posted).
func (s *DefaultRideService) AvailableRides(ctx context.Context, excludedRideIDs []string) ([]models.Ride, error) {
	logger := utils.GetLogger()
	excluded := make(map[string]struct{}, len(excludedRideIDs))
	for _, id := range excludedRideIDs {
		excluded[id] = struct{}{}
	}

	iter := s.ridesRef().Where("status", "==", models.RideStatusOpen).Documents(ctx)
	defer iter.Stop()

	now := time.Now()
	var available []models.Ride
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Store("Failed to fetch all available rides.", err)
		}

		r, err := decodeRide(snap)
		if err != nil {
			return nil, apperror.Store("Failed to fetch all available rides.", err)
		}

		departure, err := utils.ParseRideDateTime(r.Date, r.DepartureTime)
		if err != nil {
			logger.Warn("Skipping ride with unparseable schedule",
				zap.String("rideID", r.ID), zap.Error(err))
			continue
		}
		if departure.Before(now) {
			continue
		}
		if _, ok := excluded[r.ID]; ok {
			continue
		}
		available = append(available, *r)
	}
	return available, nil
}
