package domain

import "time"

// UsageRecord is a single persisted device measurement.
// ID is assigned by the store and never reused; CreatedAt is set at
// creation time and immutable afterwards.
type UsageRecord struct {
	ID         int64     `json:"id"`
	DeviceName string    `json:"device_name"`
	Value      float64   `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}

// DeviceTotal is one row of the usage report: the sum of Value over all
// current records sharing DeviceName. Derived on demand, never persisted.
type DeviceTotal struct {
	DeviceName string  `json:"device_name"`
	Total      float64 `json:"total"`
}
