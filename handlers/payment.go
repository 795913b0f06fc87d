package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentSheetHandler handles POST /api/payment-sheet. Booking guards are
// skipped for refund payments.
func (h *HandlerBundle) PaymentSheetHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	data, _, ok := bindPayload(c, []string{"rideId", "amount", "refund"})
	if !ok {
		return
	}

	rideID := strings.TrimSpace(stringField(data, "rideId"))
	refund := isRefund(data["refund"])

	ctx := c.Request.Context()
	booked, err := h.Rides.GetRide(ctx, rideID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if booked.OwnerID == userID && !refund {
		utils.JSONError(c, http.StatusBadRequest, "User cannot book its own ride.", "")
		return
	}
	if len(booked.CurrentPassengers) >= booked.MaxPassengers && !refund {
		utils.JSONError(c, http.StatusBadRequest, "Ride is full", "")
		return
	}

	departure, err := utils.ParseRideDateTime(booked.Date, booked.DepartureTime)
	if err != nil {
		getLogger(c).Error("Malformed ride schedule",
			zap.String("rideId", rideID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "This ride is no longer available.", "")
		return
	}
	if !departure.After(time.Now().In(utils.RideZone())) {
		utils.JSONError(c, http.StatusBadRequest, "This ride is no longer available.", "")
		return
	}

	if isPassenger(booked.CurrentPassengers, userID) && !refund {
		utils.JSONError(c, http.StatusBadRequest, "User already a passenger of this ride.", "")
		return
	}

	amount, ok := parseAmount(data["amount"])
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amount format.", "")
		return
	}

	sheet, err := h.Payments.CreatePaymentSheet(ctx, userID, amount)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// parseAmount accepts the amount as either a JSON number or a numeric
// string.
func parseAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return amount, true
	default:
		return 0, false
	}
}

// isRefund accepts the refund flag as either a bool or a "true"/"false"
// string.
func isRefund(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

func isPassenger(passengers []string, userID string) bool {
	for _, p := range passengers {
		if p == userID {
			return true
		}
	}
	return false
}
