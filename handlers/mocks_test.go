package handlers

import (
	"context"

	"roadbuddy/models"
	"roadbuddy/services/car"
	"roadbuddy/services/chat"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Hand-written mocks with function fields; unset functions return zero
// values so tests only stub what they assert on.

type mockUserService struct {
	signUpFn        func(name, email, password string) error
	ridesPostedFn   func(userID string) ([]string, error)
	ridesFn         func(userID string) ([]string, error)
	unreadFn        func(userID string) (int64, error)
	addedPosted     []string
	addedJoined     []string
	removedPosted   []string
	removedJoined   []string
	removeJoinedFor []string
}

func (m *mockUserService) SignUp(_ context.Context, name, email, password string) error {
	if m.signUpFn != nil {
		return m.signUpFn(name, email, password)
	}
	return nil
}

func (m *mockUserService) RidesPosted(_ context.Context, userID string) ([]string, error) {
	if m.ridesPostedFn != nil {
		return m.ridesPostedFn(userID)
	}
	return nil, nil
}

func (m *mockUserService) Rides(_ context.Context, userID string) ([]string, error) {
	if m.ridesFn != nil {
		return m.ridesFn(userID)
	}
	return nil, nil
}

func (m *mockUserService) AddPostedRide(_ context.Context, userID, rideID string) (bool, error) {
	m.addedPosted = append(m.addedPosted, rideID)
	return false, nil
}

func (m *mockUserService) AddJoinedRide(_ context.Context, userID, rideID string) (bool, error) {
	m.addedJoined = append(m.addedJoined, rideID)
	return false, nil
}

func (m *mockUserService) RemovePostedRide(_ context.Context, userID, rideID string) error {
	m.removedPosted = append(m.removedPosted, rideID)
	return nil
}

func (m *mockUserService) RemoveJoinedRide(_ context.Context, userID, rideID string) error {
	m.removedJoined = append(m.removedJoined, rideID)
	m.removeJoinedFor = append(m.removeJoinedFor, userID)
	return nil
}

func (m *mockUserService) UnreadNotificationCount(_ context.Context, userID string) (int64, error) {
	if m.unreadFn != nil {
		return m.unreadFn(userID)
	}
	return 0, nil
}

type mockCarService struct {
	addCarFn  func(ownerID string, input car.CarInput) (*models.Car, error)
	getCarsFn func(ownerID string) ([]models.CarSummary, error)
}

func (m *mockCarService) AddCar(_ context.Context, ownerID string, input car.CarInput) (*models.Car, error) {
	if m.addCarFn != nil {
		return m.addCarFn(ownerID, input)
	}
	return &models.Car{}, nil
}

func (m *mockCarService) GetCars(_ context.Context, ownerID string) ([]models.CarSummary, error) {
	if m.getCarsFn != nil {
		return m.getCarsFn(ownerID)
	}
	return nil, car.ErrNoCars
}

type mockRideService struct {
	postRideFn       func(ownerID, ownerName string, postedIDs []string, input models.RidePost) (*models.Ride, error)
	getRideFn        func(rideID string) (*models.Ride, error)
	getRidesByIDsFn  func(rideIDs []string) ([]models.Ride, error)
	deleteRideFn     func(callerID, rideID string) (*models.Ride, error)
	addPassengerFn   func(callerID, rideID string) (bool, error)
	removePassengers []string
	availableRidesFn func(excluded []string) ([]models.Ride, error)
}

func (m *mockRideService) PostRide(_ context.Context, ownerID, ownerName string, postedIDs []string, input models.RidePost) (*models.Ride, error) {
	if m.postRideFn != nil {
		return m.postRideFn(ownerID, ownerName, postedIDs, input)
	}
	return &models.Ride{ID: "ride-1"}, nil
}

func (m *mockRideService) GetRide(_ context.Context, rideID string) (*models.Ride, error) {
	if m.getRideFn != nil {
		return m.getRideFn(rideID)
	}
	return &models.Ride{ID: rideID}, nil
}

func (m *mockRideService) GetRidesByIDs(_ context.Context, rideIDs []string) ([]models.Ride, error) {
	if m.getRidesByIDsFn != nil {
		return m.getRidesByIDsFn(rideIDs)
	}
	return nil, nil
}

func (m *mockRideService) DeleteRide(_ context.Context, callerID, rideID string) (*models.Ride, error) {
	if m.deleteRideFn != nil {
		return m.deleteRideFn(callerID, rideID)
	}
	return &models.Ride{ID: rideID}, nil
}

func (m *mockRideService) AddPassenger(_ context.Context, callerID, rideID string) (bool, error) {
	if m.addPassengerFn != nil {
		return m.addPassengerFn(callerID, rideID)
	}
	return false, nil
}

func (m *mockRideService) RemovePassenger(_ context.Context, callerID, rideID string) error {
	m.removePassengers = append(m.removePassengers, rideID)
	return nil
}

func (m *mockRideService) AvailableRides(_ context.Context, excluded []string) ([]models.Ride, error) {
	if m.availableRidesFn != nil {
		return m.availableRidesFn(excluded)
	}
	return nil, nil
}

func (m *mockRideService) SweepExpired(_ context.Context) ([]models.Ride, error) {
	return nil, nil
}

type mockChatService struct {
	getChatDetailsFn    func(callerID, rideID string) (*models.RideChat, error)
	updateLastMessageFn func(callerID, callerName, rideID, text string) (*models.RideChat, error)
	userChatsFn         func(rideIDs []string) ([]models.RideChatView, error)
	createdChats        []string
	addedParticipants   []string
	removedParticipants []string
	deletedChats        []string
}

func (m *mockChatService) CreateChat(_ context.Context, ownerID, ownerName, rideID string, input models.RidePost) (*models.RideChat, error) {
	m.createdChats = append(m.createdChats, rideID)
	return &models.RideChat{ID: rideID}, nil
}

func (m *mockChatService) GetChatDetails(_ context.Context, callerID, rideID string) (*models.RideChat, error) {
	if m.getChatDetailsFn != nil {
		return m.getChatDetailsFn(callerID, rideID)
	}
	return &models.RideChat{ID: rideID}, nil
}

func (m *mockChatService) UserChats(_ context.Context, rideIDs []string) ([]models.RideChatView, error) {
	if m.userChatsFn != nil {
		return m.userChatsFn(rideIDs)
	}
	return []models.RideChatView{}, nil
}

func (m *mockChatService) DeleteChat(_ context.Context, rideID string) error {
	m.deletedChats = append(m.deletedChats, rideID)
	return nil
}

func (m *mockChatService) AddParticipant(_ context.Context, callerID, rideID string) (bool, error) {
	m.addedParticipants = append(m.addedParticipants, callerID)
	return false, nil
}

func (m *mockChatService) RemoveParticipant(_ context.Context, callerID, rideID string) error {
	m.removedParticipants = append(m.removedParticipants, callerID)
	return nil
}

func (m *mockChatService) UpdateLastMessage(_ context.Context, callerID, callerName, rideID, text string) (*models.RideChat, error) {
	if m.updateLastMessageFn != nil {
		return m.updateLastMessageFn(callerID, callerName, rideID, text)
	}
	return &models.RideChat{ID: rideID}, nil
}

type sentMessage struct {
	rideID, senderID, senderName, text string
	isOwner                            bool
}

type mockMessageService struct {
	messagesFn func(rideID string) (map[int]models.ChatMessageView, error)
	sent       []sentMessage
	deletedFor []string
}

func (m *mockMessageService) SendMessage(_ context.Context, rideID, senderID, senderName, text string, isOwner bool) error {
	m.sent = append(m.sent, sentMessage{rideID, senderID, senderName, text, isOwner})
	return nil
}

func (m *mockMessageService) Messages(_ context.Context, rideID string) (map[int]models.ChatMessageView, error) {
	if m.messagesFn != nil {
		return m.messagesFn(rideID)
	}
	return map[int]models.ChatMessageView{}, nil
}

func (m *mockMessageService) DeleteAllMessages(_ context.Context, rideID string) error {
	m.deletedFor = append(m.deletedFor, rideID)
	return nil
}

type sentNotification struct {
	userIDs []string
	rideID  string
	message string
}

type mockNotificationService struct {
	listFn   func(userID string) ([]models.NotificationView, error)
	notified []sentNotification
}

func (m *mockNotificationService) Notify(_ context.Context, userID, rideID, message string) error {
	m.notified = append(m.notified, sentNotification{[]string{userID}, rideID, message})
	return nil
}

func (m *mockNotificationService) NotifyAll(_ context.Context, userIDs []string, rideID, message string) error {
	m.notified = append(m.notified, sentNotification{userIDs, rideID, message})
	return nil
}

func (m *mockNotificationService) ListAndMarkRead(_ context.Context, userID string) ([]models.NotificationView, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return []models.NotificationView{}, nil
}

type mockPaymentService struct {
	createFn func(userID string, amount float64) (*models.PaymentSheet, error)
}

func (m *mockPaymentService) CreatePaymentSheet(_ context.Context, userID string, amount float64) (*models.PaymentSheet, error) {
	if m.createFn != nil {
		return m.createFn(userID, amount)
	}
	return &models.PaymentSheet{Customer: "cus_test"}, nil
}

// bundle with every mock wired; tests override the fields they need.
type mocks struct {
	users         *mockUserService
	cars          *mockCarService
	rides         *mockRideService
	chats         *mockChatService
	messages      *mockMessageService
	notifications *mockNotificationService
	payments      *mockPaymentService
}

func newMockedBundle() (*HandlerBundle, *mocks) {
	m := &mocks{
		users:         &mockUserService{},
		cars:          &mockCarService{},
		rides:         &mockRideService{},
		chats:         &mockChatService{},
		messages:      &mockMessageService{},
		notifications: &mockNotificationService{},
		payments:      &mockPaymentService{},
	}
	hb := &HandlerBundle{
		Users:         m.users,
		Cars:          m.cars,
		Rides:         m.rides,
		Chats:         m.chats,
		Messages:      m.messages,
		Notifications: m.notifications,
		Payments:      m.payments,
	}
	return hb, m
}

var _ chat.RideChatService = (*mockChatService)(nil)
var _ chat.MessageService = (*mockMessageService)(nil)
