package models

import (
	"time"

	"github.com/yigit/egresados/internal/pkg/helpers"
)

// EmploymentInformation is one job of a user's employment history.
type EmploymentInformation struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	CompanyName  string     `json:"companyName" db:"company_name"`
	Position     string     `json:"position" db:"position"`
	Sector       string     `json:"sector" db:"sector"`
	ContractType string     `json:"contractType" db:"contract_type"`
	City         string     `json:"city" db:"city"`
	StartDate    *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate      *time.Time `json:"endDate,omitempty" db:"end_date"`
	IsCurrentJob bool       `json:"isCurrentJob" db:"is_current_job"`
	SoftSkills   []string   `json:"softSkills" db:"soft_skills"`
	HardSkills   []string   `json:"hardSkills" db:"hard_skills"`
	Description  string     `json:"description" db:"description"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Normalize drops the end date of a current job and deduplicates skills.
func (e *EmploymentInformation) Normalize() {
	if e.IsCurrentJob {
		e.EndDate = nil
	}
	e.SoftSkills = helpers.UniqueStrings(e.SoftSkills)
	e.HardSkills = helpers.UniqueStrings(e.HardSkills)
}
