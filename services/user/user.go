package user

import (
	"context"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *DefaultUserService) userRef(userID string) *firestore.DocumentRef {
	return s.DB.Collection("users").Doc(userID)
}

// SignUp creates the account with the identity provider and the matching
// user document with empty ride lists.
func (s *DefaultUserService) SignUp(ctx context.Context, name, email, password string) error {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)

	created, err := s.Auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return apperror.Conflict("The email entered already exists.")
		}
		return apperror.Store("Signup failed, please try again.", err)
	}

	_, err = s.userRef(created.UID).Set(ctx, map[string]any{
		"name":                    name,
		"email":                   email,
		"ridesPosted":             []string{},
		"ridesJoined":             []string{},
		"unreadNotificationCount": 0,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to create user document after signup",
			zap.String("userID", created.UID), zap.Error(err))
		return apperror.Store("Signup failed, please try again.", err)
	}
	return nil
}

func (s *DefaultUserService) getUser(ctx context.Context, userID string) (*models.User, error) {
	snap, err := s.userRef(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Store("Failed to fetch user", err)
	}

	var usr models.User
	if err := snap.DataTo(&usr); err != nil {
		return nil, apperror.Store("Failed to decode user document", err)
	}
	usr.ID = snap.Ref.ID
	return &usr, nil
}

// RidesPosted returns the ride IDs the user has posted.
func (s *DefaultUserService) RidesPosted(ctx context.Context, userID string) ([]string, error) {
	usr, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return usr.RidesPosted, nil
}

// Rides returns every ride ID the user has joined or posted.
func (s *DefaultUserService) Rides(ctx context.Context, userID string) ([]string, error) {
	usr, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append(append([]string{}, usr.RidesJoined...), usr.RidesPosted...), nil
}

// AddPostedRide records a ride in the user's posted list. Returns true if
// the ride was already present.
func (s *DefaultUserService) AddPostedRide(ctx context.Context, userID, rideID string) (bool, error) {
	return s.addToList(ctx, userID, rideID, "ridesPosted")
}

// AddJoinedRide records a ride in the user's joined list. Returns true if
// the ride was already present.
func (s *DefaultUserService) AddJoinedRide(ctx context.Context, userID, rideID string) (bool, error) {
	return s.addToList(ctx, userID, rideID, "ridesJoined")
}

// RemovePostedRide drops a ride from the user's posted list.
func (s *DefaultUserService) RemovePostedRide(ctx context.Context, userID, rideID string) error {
	return s.removeFromList(ctx, userID, rideID, "ridesPosted")
}

// RemoveJoinedRide drops a ride from the user's joined list.
func (s *DefaultUserService) RemoveJoinedRide(ctx context.Context, userID, rideID string) error {
	return s.removeFromList(ctx, userID, rideID, "ridesJoined")
}

// UnreadNotificationCount returns the user's unread counter.
func (s *DefaultUserService) UnreadNotificationCount(ctx context.Context, userID string) (int64, error) {
	usr, err := s.getUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return usr.UnreadNotificationCount, nil
}

// Ride lists are plain array fields mutated by read-modify-write; two
// concurrent writers can lose an update (last write wins on the field).
func (s *DefaultUserService) addToList(ctx context.Context, userID, rideID, field string) (bool, error) {
	usr, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}

	list := usr.RidesPosted
	if field == "ridesJoined" {
		list = usr.RidesJoined
	}
	if contains(list, rideID) {
		return true, nil
	}

	list = append(list, rideID)
	if _, err := s.userRef(userID).Update(ctx, []firestore.Update{
		{Path: field, Value: list},
	}); err != nil {
		return false, apperror.Store("Failed to add ride to user's "+field, err)
	}
	return false, nil
}

func (s *DefaultUserService) removeFromList(ctx context.Context, userID, rideID, field string) error {
	usr, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	list := usr.RidesPosted
	if field == "ridesJoined" {
		list = usr.RidesJoined
	}
	if !contains(list, rideID) {
		return nil
	}

	if _, err := s.userRef(userID).Update(ctx, []firestore.Update{
		{Path: field, Value: remove(list, rideID)},
	}); err != nil {
		return apperror.Store("Failed to remove ride from user's "+field, err)
	}
	return nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func remove(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
