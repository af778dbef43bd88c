package models

import "time"

// AdminProfile holds the public profile of an admin or coordinator.
type AdminProfile struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"userId" db:"user_id"`
	Position          string    `json:"position" db:"position"`
	Office            string    `json:"office" db:"office"`
	Phone             string    `json:"phone" db:"phone"`
	Bio               string    `json:"bio" db:"bio"`
	PhotoPath         string    `json:"-" db:"photo_path"`
	PhotoOriginalName string    `json:"photoOriginalName,omitempty" db:"photo_original_name"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}
