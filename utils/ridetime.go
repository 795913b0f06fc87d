// File: utils/ridetime.go
package utils

import (
	"fmt"
	"sync"
	"time"

	"roadbuddy/config"
)

// Ride schedules are stored as local strings: an ISO date plus a 12-hour
// clock time, both interpreted in the configured ride time zone. The textual
// convention is a boundary contract shared with the stored documents, so the
// layouts below must not change.
const (
	RideDateLayout     = "2006-01-02"
	RideDateTimeLayout = "2006-01-02 3:04 PM"

	displayTimestampLayout      = "2006-01-02 03:04 PM"
	notificationTimestampLayout = "01-02-2006 03:04 PM"
)

var (
	rideZone     *time.Location
	rideZoneOnce sync.Once
)

// RideZone returns the fixed time zone ride schedules are interpreted in.
func RideZone() *time.Location {
	rideZoneOnce.Do(func() {
		name := config.AppConfig.RideTimezone
		if name == "" {
			name = "America/Los_Angeles"
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			GetLogger().Sugar().Fatalf("failed to load ride time zone %q: %v", name, err)
		}
		rideZone = loc
	})
	return rideZone
}

// ParseRideDateTime combines a ride's date and departure time into a moment
// in the ride time zone.
func ParseRideDateTime(date, departureTime string) (time.Time, error) {
	t, err := time.ParseInLocation(RideDateTimeLayout, date+" "+departureTime, RideZone())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ride schedule %q %q: %w", date, departureTime, err)
	}
	return t, nil
}

// FormatDisplayTimestamp renders a stored timestamp for chat and message
// payloads, e.g. "2025-03-14 07:30 PM PT".
func FormatDisplayTimestamp(t time.Time) string {
	return t.In(RideZone()).Format(displayTimestampLayout) + " PT"
}

// FormatNotificationTimestamp renders a notification creation time,
// e.g. "03-14-2025 07:30 PM PT".
func FormatNotificationTimestamp(t time.Time) string {
	return t.In(RideZone()).Format(notificationTimestampLayout) + " PT"
}

// TodayRideDate returns the current date in the ride time zone, in the same
// textual form ride dates are stored in.
func TodayRideDate() string {
	return time.Now().In(RideZone()).Format(RideDateLayout)
}
