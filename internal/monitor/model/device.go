package model

import "time"

const (
	DeviceStatusOnline  = "online"
	DeviceStatusWarning = "warning"
	DeviceStatusOffline = "offline"
)

type SensorReading struct {
	ID           uint `gorm:"primaryKey"`
	DeviceID     string
	TemperatureC float64
	Humidity     float64
	RecordedAt   time.Time
}

func (SensorReading) TableName() string {
	return "sensors"
}

type DeviceLastSeen struct {
	DeviceID string
	LastAt   *time.Time
}

type DeviceStatus struct {
	DeviceID        string     `json:"device_id"`
	Status          string     `json:"status"`
	LastSeenAt      *time.Time `json:"last_seen_at"`
	LastSeenMinutes *int       `json:"last_seen_minutes"`
}

// StatusAt classifies a device by the age of its last reading.
func (d DeviceLastSeen) StatusAt(now time.Time) DeviceStatus {
	s := DeviceStatus{DeviceID: d.DeviceID, Status: DeviceStatusOffline, LastSeenAt: d.LastAt}
	if d.LastAt == nil {
		return s
	}
	age := now.Sub(*d.LastAt)
	minutes := int(age.Minutes())
	s.LastSeenMinutes = &minutes
	switch {
	case age <= time.Minute:
		s.Status = DeviceStatusOnline
	case age <= 5*time.Minute:
		s.Status = DeviceStatusWarning
	}
	return s
}
