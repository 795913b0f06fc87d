package handlers

import (
	"net/http"

	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
)

// UnreadNotificationsCountHandler handles GET /api/unread-notifications-count.
func (h *HandlerBundle) UnreadNotificationsCountHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	count, err := h.Users.UnreadNotificationCount(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// GetNotificationsHandler handles GET /api/get-notifications. Fetching marks
// every unread notification as read.
func (h *HandlerBundle) GetNotificationsHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	notifications, err := h.Notifications.ListAndMarkRead(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
