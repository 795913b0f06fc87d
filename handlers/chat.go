package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendMessageHandler handles POST /api/send-message: last-message summary
// first, then the message itself, then notify the other participants.
func (h *HandlerBundle) SendMessageHandler(c *gin.Context) {
	userID, userName, ok := callerIdentity(c)
	if !ok {
		return
	}

	data, _, ok := bindPayload(c, []string{"rideId", "text"})
	if !ok {
		return
	}
	rideID := strings.TrimSpace(stringField(data, "rideId"))
	text := strings.TrimSpace(stringField(data, "text"))

	ctx := c.Request.Context()
	room, err := h.Chats.UpdateLastMessage(ctx, userID, userName, rideID, text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	isOwner := userID == room.Owner
	if err := h.Messages.SendMessage(ctx, rideID, userID, userName, text, isOwner); err != nil {
		utils.RespondError(c, err)
		return
	}

	recipients := make([]string, 0, len(room.Participants))
	for _, p := range room.Participants {
		if p != userID {
			recipients = append(recipients, p)
		}
	}
	if len(recipients) > 0 {
		message := fmt.Sprintf("%s has sent a message.\nFrom: %s\nTo: %s",
			userName, room.From, room.To)
		if err := h.Notifications.NotifyAll(ctx, recipients, rideID, message); err != nil {
			getLogger(c).Error("Failed to notify chat participants",
				zap.String("rideId", rideID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message has been sent"})
}

// GetMessagesHandler handles GET /api/get-messages/:chatId. Participants
// only.
func (h *HandlerBundle) GetMessagesHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	chatID := c.Param("chatId")
	ctx := c.Request.Context()
	if _, err := h.Chats.GetChatDetails(ctx, userID, chatID); err != nil {
		utils.RespondError(c, err)
		return
	}

	messages, err := h.Messages.Messages(ctx, chatID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// CheckRideChatHandler handles GET /api/check-ride-chat/:chatId.
func (h *HandlerBundle) CheckRideChatHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	chatID := c.Param("chatId")
	if _, err := h.Chats.GetChatDetails(c.Request.Context(), userID, chatID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"exists": false,
			"error":  "Ride chat not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true})
}

// UserRideChatsHandler handles GET /api/get-all-user-ride-chats.
func (h *HandlerBundle) UserRideChatsHandler(c *gin.Context) {
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

	chats, err := h.Chats.UserChats(ctx, rideIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ride_chats": chats})
}
