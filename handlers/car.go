package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"roadbuddy/services/car"
	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
)

// AddCarHandler handles POST /api/add-car.
func (h *HandlerBundle) AddCarHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	_, raw, ok := bindPayload(c, []string{"make", "model", "licensePlate", "vin", "year", "color"})
	if !ok {
		return
	}

	var input car.CarInput
	if err := json.Unmarshal(raw, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON payload", "")
		return
	}

	added, err := h.Cars.AddCar(c.Request.Context(), userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Car added successfully",
		"car":     added,
	})
}

// GetCarsHandler handles GET /api/get-cars. An empty registry responds 204.
func (h *HandlerBundle) GetCarsHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	cars, err := h.Cars.GetCars(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, car.ErrNoCars) {
			c.Status(http.StatusNoContent)
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cars": cars})
}
