package dto

import (
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// BasicInformationRequest is the update-or-create payload of the personal data form
type BasicInformationRequest struct {
	DocumentType   string `json:"documentType" binding:"required,oneof=CC TI CE PA"`
	DocumentNumber string `json:"documentNumber" binding:"required,document"`
	FirstNames     string `json:"firstNames" binding:"required,min=2,max=100"`
	LastNames      string `json:"lastNames" binding:"required,min=2,max=100"`
	Gender         string `json:"gender" binding:"omitempty,max=30"`
	BirthDate      string `json:"birthDate" binding:"omitempty,date,pastdate"`
	Phone          string `json:"phone" binding:"omitempty,phone"`
	Address        string `json:"address" binding:"omitempty,max=255"`
	City           string `json:"city" binding:"omitempty,max=100"`
	Department     string `json:"department" binding:"omitempty,max=100"`
	Country        string `json:"country" binding:"omitempty,max=100"`
	MaritalStatus  string `json:"maritalStatus" binding:"omitempty,max=30"`
}

// ToModel builds the record owned by userID
func (r *BasicInformationRequest) ToModel(userID int64) (*models.BasicInformation, error) {
	birthDate, err := helpers.ParseOptionalDate(r.BirthDate)
	if err != nil {
		return nil, fieldError("birthDate", "birthDate must be a date in YYYY-MM-DD format")
	}

	return &models.BasicInformation{
		UserID:         userID,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		FirstNames:     r.FirstNames,
		LastNames:      r.LastNames,
		Gender:         r.Gender,
		BirthDate:      birthDate,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		Department:     r.Department,
		Country:        r.Country,
		MaritalStatus:  r.MaritalStatus,
	}, nil
}
