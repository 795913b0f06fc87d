package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"roadbuddy/models"
	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// refundMultiplier covers the booking fee on top of the ride cost when a
// posted ride is deleted.
const refundMultiplier = 1.20

// PostRideHandler handles POST /api/post-ride: ride ledger, then the owner's
// posted list, then the ride chat. Secondary failures are logged, not rolled
// back.
func (h *HandlerBundle) PostRideHandler(c *gin.Context) {
	userID, userName, ok := callerIdentity(c)
	if !ok {
		return
	}

	_, raw, ok := bindPayload(c, []string{
		"car_select", "license_plate", "from", "to",
		"date", "departure_time", "max_passengers", "cost",
	})
	if !ok {
		return
	}

	var input models.RidePost
	if err := json.Unmarshal(raw, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON payload", "")
		return
	}

	ctx := c.Request.Context()
	postedIDs, err := h.Users.RidesPosted(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	posted, err := h.Rides.PostRide(ctx, userID, userName, postedIDs, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	logger := getLogger(c)
	if _, err := h.Users.AddPostedRide(ctx, userID, posted.ID); err != nil {
		logger.Error("Failed to record posted ride on user",
			zap.String("rideId", posted.ID), zap.Error(err))
	}
	if _, err := h.Chats.CreateChat(ctx, userID, userName, posted.ID, input); err != nil {
		logger.Error("Failed to create ride chat",
			zap.String("rideId", posted.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ride posted successfully",
		"ride":    posted,
		"rideId":  posted.ID,
	})
}

// RequestRideHandler handles POST /api/request-ride: join the ride, the
// caller's joined list, the chat, then notify the owner.
func (h *HandlerBundle) RequestRideHandler(c *gin.Context) {
	userID, userName, ok := callerIdentity(c)
	if !ok {
		return
	}

	data, _, ok := bindPayload(c, []string{"rideId"})
	if !ok {
		return
	}
	rideID := strings.TrimSpace(stringField(data, "rideId"))

	ctx := c.Request.Context()
	requested, err := h.Rides.GetRide(ctx, rideID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := h.Rides.AddPassenger(ctx, userID, rideID); err != nil {
		utils.RespondError(c, err)
		return
	}

	logger := getLogger(c)
	if _, err := h.Users.AddJoinedRide(ctx, userID, rideID); err != nil {
		logger.Error("Failed to record joined ride on user",
			zap.String("rideId", rideID), zap.Error(err))
	}
	if _, err := h.Chats.AddParticipant(ctx, userID, rideID); err != nil {
		logger.Error("Failed to add chat participant",
			zap.String("rideId", rideID), zap.Error(err))
	}

	message := fmt.Sprintf("%s has booked a ride with you\nFrom: %s\nTo: %s",
		userName, requested.From, requested.To)
	if err := h.Notifications.Notify(ctx, requested.OwnerID, rideID, message); err != nil {
		logger.Error("Failed to notify ride owner",
			zap.String("rideId", rideID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"ride": requested})
}

// AvailableRidesHandler handles GET /api/available-rides: open future rides
// excluding the caller's own.
func (h *HandlerBundle) AvailableRidesHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	excluded, err := h.Users.Rides(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	rides, err := h.Rides.AvailableRides(ctx, excluded)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rides": rides})
}

// GetRideDetailsHandler handles GET /api/rides/:rideId.
func (h *HandlerBundle) GetRideDetailsHandler(c *gin.Context) {
	if _, _, ok := callerIdentity(c); !ok {
		return
	}

	rideID := c.Param("rideId")
	details, err := h.Rides.GetRide(c.Request.Context(), rideID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ride": details})
}

// ComingUpRidesHandler handles GET /api/coming-up-rides: every ride the
// caller has joined or posted.
func (h *HandlerBundle) ComingUpRidesHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rideIDs, err := h.Users.Rides(ctx, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	rides, err := h.Rides.GetRidesByIDs(ctx, rideIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rides": rides})
}

// CancelRideHandler handles POST /api/cancel-ride: leave the ride, the
// caller's joined list, the chat, then notify the owner.
func (h *HandlerBundle) CancelRideHandler(c *gin.Context) {
	userID, userName, ok := callerIdentity(c)
	if !ok {
		return
	}

	data, _, ok := bindPayload(c, []string{"rideId"})
	if !ok {
		return
	}
	rideID := strings.TrimSpace(stringField(data, "rideId"))

	ctx := c.Request.Context()
	if err := h.Rides.RemovePassenger(ctx, userID, rideID); err != nil {
		utils.RespondError(c, err)
		return
	}

	logger := getLogger(c)
	if err := h.Users.RemoveJoinedRide(ctx, userID, rideID); err != nil {
		logger.Error("Failed to remove joined ride from user",
			zap.String("rideId", rideID), zap.Error(err))
	}
	if err := h.Chats.RemoveParticipant(ctx, userID, rideID); err != nil {
		logger.Error("Failed to remove chat participant",
			zap.String("rideId", rideID), zap.Error(err))
	}

	cancelled, err := h.Rides.GetRide(ctx, rideID)
	if err != nil {
		logger.Error("Failed to fetch ride after cancellation",
			zap.String("rideId", rideID), zap.Error(err))
	} else {
		message := fmt.Sprintf("%s has cancelled a ride with you.\nFrom: %s\nTo: %s",
			userName, cancelled.From, cancelled.To)
		if err := h.Notifications.Notify(ctx, cancelled.OwnerID, rideID, message); err != nil {
			logger.Error("Failed to notify ride owner",
				zap.String("rideId", rideID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ride successfully cancelled"})
}

// DeleteRideHandler handles POST /api/delete-ride: delete the ride
// (owner only), then cascade over the owner's posted list, every passenger's
// joined list, the chat messages and the chat, and finally notify the
// passengers of their refund.
func (h *HandlerBundle) DeleteRideHandler(c *gin.Context) {
	userID, userName, ok := callerIdentity(c)
	if !ok {
		return
	}

	data, _, ok := bindPayload(c, []string{"rideId"})
	if !ok {
		return
	}
	rideID := strings.TrimSpace(stringField(data, "rideId"))

	ctx := c.Request.Context()
	deleted, err := h.Rides.DeleteRide(ctx, userID, rideID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	logger := getLogger(c)
	if err := h.Users.RemovePostedRide(ctx, userID, rideID); err != nil {
		logger.Error("Failed to remove posted ride from owner",
			zap.String("rideId", rideID), zap.Error(err))
	}
	for _, passengerID := range deleted.CurrentPassengers {
		if err := h.Users.RemoveJoinedRide(ctx, passengerID, rideID); err != nil {
			logger.Error("Failed to remove joined ride from passenger",
				zap.String("rideId", rideID),
				zap.String("passengerId", passengerID), zap.Error(err))
		}
	}
	if err := h.Messages.DeleteAllMessages(ctx, rideID); err != nil {
		logger.Error("Failed to delete ride chat messages",
			zap.String("rideId", rideID), zap.Error(err))
	}
	if err := h.Chats.DeleteChat(ctx, rideID); err != nil {
		logger.Error("Failed to delete ride chat",
			zap.String("rideId", rideID), zap.Error(err))
	}

	if len(deleted.CurrentPassengers) > 0 {
		refund := deleted.Cost * refundMultiplier
		message := fmt.Sprintf(
			"$%.2f has been refunded to you.\n%s (ride's owner) has deleted this ride.\nFrom: %s\nTo: %s\nDate: %s",
			refund, userName, deleted.From, deleted.To, deleted.Date)
		if err := h.Notifications.NotifyAll(ctx, deleted.CurrentPassengers, rideID, message); err != nil {
			logger.Error("Failed to notify passengers of refund",
				zap.String("rideId", rideID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Ride successfully deleted",
		"deletedRide": deleted,
	})
}
