// models/car.go
package models

// Car is a vehicle document under users/{id}/cars. At most one car per owner
// is primary; the VIN is unique per owner.
type Car struct {
	ID           string `firestore:"-" json:"id,omitempty"`
	Make         string `firestore:"make" json:"make"`
	Model        string `firestore:"model" json:"model"`
	LicensePlate string `firestore:"licensePlate" json:"licensePlate"`
	VIN          string `firestore:"vin" json:"vin"`
	Year         int    `firestore:"year" json:"year"`
	Color        string `firestore:"color" json:"color"`
	IsPrimary    bool   `firestore:"isPrimary" json:"isPrimary"`
}

// CarSummary is the fixed projection returned when listing a user's cars.
type CarSummary struct {
	Year         int    `firestore:"year" json:"year"`
	Make         string `firestore:"make" json:"make"`
	Model        string `firestore:"model" json:"model"`
	Color        string `firestore:"color" json:"color"`
	LicensePlate string `firestore:"licensePlate" json:"licensePlate"`
}
