package dto

import (
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// EmploymentInformationRequest is the create/update payload of a job
type EmploymentInformationRequest struct {
	CompanyName  string   `json:"companyName" binding:"required,max=200"`
	Position     string   `json:"position" binding:"required,max=150"`
	Sector       string   `json:"sector" binding:"omitempty,max=100"`
	ContractType string   `json:"contractType" binding:"omitempty,max=50"`
	City         string   `json:"city" binding:"omitempty,max=100"`
	StartDate    string   `json:"startDate" binding:"omitempty,date"`
	EndDate      string   `json:"endDate" binding:"omitempty,date"`
	IsCurrentJob bool     `json:"isCurrentJob"`
	SoftSkills   []string `json:"softSkills" binding:"omitempty,max=30,dive,max=60"`
	HardSkills   []string `json:"hardSkills" binding:"omitempty,max=30,dive,max=60"`
	Description  string   `json:"description" binding:"omitempty,max=2000"`
}

// ToModel builds the record owned by userID. A current job never keeps an end date.
func (r *EmploymentInformationRequest) ToModel(userID int64) (*models.EmploymentInformation, error) {
	start, err := helpers.ParseOptionalDate(r.StartDate)
	if err != nil {
		return nil, fieldError("startDate", "startDate must be a date in YYYY-MM-DD format")
	}

	record := &models.EmploymentInformation{
		UserID:       userID,
		CompanyName:  r.CompanyName,
		Position:     r.Position,
		Sector:       r.Sector,
		ContractType: r.ContractType,
		City:         r.City,
		StartDate:    start,
		IsCurrentJob: r.IsCurrentJob,
		SoftSkills:   r.SoftSkills,
		HardSkills:   r.HardSkills,
		Description:  r.Description,
	}

	if !r.IsCurrentJob {
		end, err := helpers.ParseOptionalDate(r.EndDate)
		if err != nil {
			return nil, fieldError("endDate", "endDate must be a date in YYYY-MM-DD format")
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, fieldError("endDate", "endDate must not be before startDate")
		}
		record.EndDate = end
	}
	record.Normalize()

	return record, nil
}
