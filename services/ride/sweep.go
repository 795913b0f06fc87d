package ride

import (
	"context"
	"time"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// SweepExpired finds every ride whose departure has passed and deletes them
// in a single batch, returning the prior documents so the caller can cascade
// cleanup of chats, messages and user lists.
//
// The scan is two-phase: a coarse query on the stored date string (<= today)
// followed by a precise date+time comparison in the ride time zone.
func (s *DefaultRideService) SweepExpired(ctx context.Context) ([]models.Ride, error) {
	logger := utils.GetLogger()
	now := time.Now()

	iter := s.ridesRef().Where("date", "<=", utils.TodayRideDate()).Documents(ctx)
	defer iter.Stop()

	batch := s.DB.Batch()
	var expired []models.Ride
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Store("Failed to delete past rides", err)
		}

		r, err := decodeRide(snap)
		if err != nil {
			return nil, apperror.Store("Failed to delete past rides", err)
		}

		departure, err := utils.ParseRideDateTime(r.Date, r.DepartureTime)
		if err != nil {
			logger.Warn("Skipping ride with unparseable schedule during sweep",
				zap.String("rideID", r.ID), zap.Error(err))
			continue
		}
		if !departure.Before(now) {
			continue
		}

		expired = append(expired, *r)
		batch.Delete(snap.Ref)
	}

	if len(expired) == 0 {
		return nil, nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return nil, apperror.Store("Failed to delete past rides", err)
	}
	return expired, nil
}
