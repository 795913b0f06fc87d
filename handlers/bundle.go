package handlers

import (
	"roadbuddy/services/car"
	"roadbuddy/services/chat"
	"roadbuddy/services/notification"
	"roadbuddy/services/payment"
	"roadbuddy/services/ride"
	"roadbuddy/services/user"
)

// HandlerBundle groups every endpoint's dependencies into one struct.
type HandlerBundle struct {
	Users         user.UserService
	Cars          car.CarService
	Rides         ride.RideService
	Chats         chat.RideChatService
	Messages      chat.MessageService
	Notifications notification.NotificationService
	Payments      payment.PaymentService
}
