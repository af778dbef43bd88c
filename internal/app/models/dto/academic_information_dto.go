package dto

import (
	"mime/multipart"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// AcademicInformationRequest is submitted as multipart/form-data so a certificate can travel along
type AcademicInformationRequest struct {
	Kind              string                `form:"kind" binding:"required,oneof=formal course"`
	Level             string                `form:"level" binding:"required_if=Kind formal,max=40"`
	DegreeObtained    string                `form:"degreeObtained" binding:"max=200"`
	Institution       string                `form:"institution" binding:"required_without=CustomInstitution,max=200"`
	CustomInstitution string                `form:"customInstitution" binding:"max=200"`
	Program           string                `form:"program" binding:"required_without=CustomProgram,max=200"`
	CustomProgram     string                `form:"customProgram" binding:"max=200"`
	StartDate         string                `form:"startDate" binding:"omitempty,date"`
	GraduationDate    string                `form:"graduationDate" binding:"omitempty,date"`
	Certificate       *multipart.FileHeader `form:"certificate" swaggerignore:"true"`
}

// ToModel builds the record owned by userID, canonicalising the academic level
func (r *AcademicInformationRequest) ToModel(userID int64) (*models.AcademicInformation, error) {
	start, err := helpers.ParseOptionalDate(r.StartDate)
	if err != nil {
		return nil, fieldError("startDate", "startDate must be a date in YYYY-MM-DD format")
	}
	graduation, err := helpers.ParseOptionalDate(r.GraduationDate)
	if err != nil {
		return nil, fieldError("graduationDate", "graduationDate must be a date in YYYY-MM-DD format")
	}
	if start != nil && graduation != nil && graduation.Before(*start) {
		return nil, fieldError("graduationDate", "graduationDate must not be before startDate")
	}

	record := &models.AcademicInformation{
		UserID:            userID,
		Kind:              models.AcademicKind(r.Kind),
		DegreeObtained:    r.DegreeObtained,
		Institution:       r.Institution,
		CustomInstitution: r.CustomInstitution,
		Program:           r.Program,
		CustomProgram:     r.CustomProgram,
		StartDate:         start,
		GraduationDate:    graduation,
	}

	if record.Kind == models.AcademicKindFormal {
		level, ok := CanonicalLevel(r.Level)
		if !ok {
			return nil, fieldError("level", "level must be one of: pregrado, especialización, maestría, doctorado, educación superior")
		}
		record.Level = level
	}
	record.Normalize()

	return record, nil
}

// CanonicalLevel matches a level ignoring case and accents
func CanonicalLevel(level string) (string, bool) {
	folded := helpers.FoldAccents(level)
	for _, candidate := range models.AcademicLevels {
		if helpers.FoldAccents(candidate) == folded {
			return candidate, true
		}
	}
	return "", false
}

// AcademicInformationResponse adds the certificate download URL
type AcademicInformationResponse struct {
	models.AcademicInformation
	CertificateURL string `json:"certificateUrl,omitempty"`
}

func fieldError(field, message string) error {
	return apperrors.NewValidationError("Validation failed", map[string]string{field: message})
}
