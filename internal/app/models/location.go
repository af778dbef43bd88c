package models

import "time"

// Location is the last geolocation captured for a user.
type Location struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Address    string    `json:"address" db:"address"`
	City       string    `json:"city" db:"city"`
	CapturedAt time.Time `json:"capturedAt" db:"captured_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	UserName string `json:"userName,omitempty" db:"-"`
}
