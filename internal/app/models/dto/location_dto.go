package dto

import (
	"github.com/yigit/egresados/internal/app/models"
)

// LocationRequest captures the current geolocation of the caller
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
	Address   string   `json:"address" binding:"omitempty,max=255"`
	City      string   `json:"city" binding:"omitempty,max=100"`
}

// ToModel builds the location of userID
func (r *LocationRequest) ToModel(userID int64) *models.Location {
	return &models.Location{
		UserID:    userID,
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Address:   r.Address,
		City:      r.City,
	}
}
