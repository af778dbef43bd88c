package dto

import (
	"mime/multipart"

	"github.com/yigit/egresados/internal/app/models"
)

// AdminProfileRequest is the update-or-create payload of a staff profile
type AdminProfileRequest struct {
	Position string                `form:"position" binding:"omitempty,max=150"`
	Office   string                `form:"office" binding:"omitempty,max=150"`
	Phone    string                `form:"phone" binding:"omitempty,phone"`
	Bio      string                `form:"bio" binding:"omitempty,max=2000"`
	Photo    *multipart.FileHeader `form:"photo" swaggerignore:"true"`
}

// ToModel builds the profile owned by userID
func (r *AdminProfileRequest) ToModel(userID int64) *models.AdminProfile {
	return &models.AdminProfile{
		UserID:   userID,
		Position: r.Position,
		Office:   r.Office,
		Phone:    r.Phone,
		Bio:      r.Bio,
	}
}

// AdminProfileResponse joins the profile with its owner
type AdminProfileResponse struct {
	User     UserResponse         `json:"user"`
	Profile  *models.AdminProfile `json:"profile"`
	PhotoURL string               `json:"photoUrl,omitempty"`
}
