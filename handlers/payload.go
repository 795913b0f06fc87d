package handlers

import (
	"encoding/json"
	"net/http"

	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
)

// bindPayload reads the request body once and decodes it into a generic map
// for required-field checking. The raw bytes are returned so handlers can
// decode the same payload into a typed struct.
func bindPayload(c *gin.Context, required []string) (map[string]any, []byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON payload", "")
		return nil, nil, false
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || len(data) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON payload", "")
		return nil, nil, false
	}

	if missing := utils.MissingFields(data, required); len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.RequiredFieldsError(missing), "")
		return nil, nil, false
	}
	return data, raw, true
}

// callerIdentity pulls the authenticated caller out of the gin context, set
// by the auth middleware.
func callerIdentity(c *gin.Context) (userID, userName string, ok bool) {
	id, exists := c.Get("userID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "User is not logged in", "")
		return "", "", false
	}
	userID, ok = id.(string)
	if !ok || userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "User is not logged in", "")
		return "", "", false
	}
	if name, exists := c.Get("userName"); exists {
		userName, _ = name.(string)
	}
	return userID, userName, true
}

func stringField(data map[string]any, field string) string {
	if v, ok := data[field].(string); ok {
		return v
	}
	return ""
}
