// models/ride.go
package models

// Ride statuses. A ride is closed exactly when its passenger list reaches
// capacity.
const (
	RideStatusOpen   = "open"
	RideStatusClosed = "closed"
)

// Ride is a scheduled shared trip with fixed capacity. The owner never
// appears in CurrentPassengers.
type Ride struct {
	ID                string   `firestore:"-" json:"id,omitempty"`
	OwnerID           string   `firestore:"ownerID" json:"ownerID"`
	OwnerName         string   `firestore:"ownerName" json:"ownerName"`
	From              string   `firestore:"from" json:"from"`
	To                string   `firestore:"to" json:"to"`
	Date              string   `firestore:"date" json:"date"`
	DepartureTime     string   `firestore:"departureTime" json:"departureTime"`
	MaxPassengers     int      `firestore:"maxPassengers" json:"maxPassengers"`
	Cost              float64  `firestore:"cost" json:"cost"`
	CurrentPassengers []string `firestore:"currentPassengers" json:"currentPassengers"`
	Car               string   `firestore:"car" json:"car"`
	LicensePlate      string   `firestore:"licensePlate" json:"licensePlate"`
	Status            string   `firestore:"status" json:"status"`
}

// RidePost is the validated input for posting a ride.
type RidePost struct {
	Car           string  `json:"car_select"`
	LicensePlate  string  `json:"license_plate"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Date          string  `json:"date"`
	DepartureTime string  `json:"departure_time"`
	MaxPassengers int     `json:"max_passengers"`
	Cost          float64 `json:"cost"`
}
