package models

import (
	"time"

	"github.com/yigit/egresados/internal/pkg/helpers"
)

// AcademicKind distinguishes formal education from short courses.
type AcademicKind string

const (
	AcademicKindFormal AcademicKind = "formal"
	AcademicKindCourse AcademicKind = "course"
)

// Academic levels of formal records
const (
	LevelPregrado          = "pregrado"
	LevelEspecializacion   = "especialización"
	LevelMaestria          = "maestría"
	LevelDoctorado         = "doctorado"
	LevelEducacionSuperior = "educación superior"
)

// AcademicLevels lists the accepted levels in display order.
var AcademicLevels = []string{LevelPregrado, LevelEspecializacion, LevelMaestria, LevelDoctorado, LevelEducacionSuperior}

// AcademicInformation is one entry of a user's academic history.
// Institution and Program hold catalog values; the Custom fields override them for display.
type AcademicInformation struct {
	ID                      int64        `json:"id" db:"id"`
	UserID                  int64        `json:"userId" db:"user_id"`
	Kind                    AcademicKind `json:"kind" db:"kind"`
	Level                   string       `json:"level,omitempty" db:"level"`
	DegreeObtained          string       `json:"degreeObtained,omitempty" db:"degree_obtained"`
	Institution             string       `json:"institution" db:"institution"`
	CustomInstitution       string       `json:"customInstitution,omitempty" db:"custom_institution"`
	Program                 string       `json:"program" db:"program"`
	CustomProgram           string       `json:"customProgram,omitempty" db:"custom_program"`
	StartDate               *time.Time   `json:"startDate,omitempty" db:"start_date"`
	GraduationDate          *time.Time   `json:"graduationDate,omitempty" db:"graduation_date"`
	CertificatePath         string       `json:"-" db:"certificate_path"`
	CertificateOriginalName string       `json:"certificateOriginalName,omitempty" db:"certificate_original_name"`
	CreatedAt               time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt               time.Time    `json:"updatedAt" db:"updated_at"`
}

// DisplayInstitution returns the custom institution if set, else the catalog one.
func (a *AcademicInformation) DisplayInstitution() string {
	return helpers.FirstNonEmpty(a.CustomInstitution, a.Institution)
}

// DisplayProgram returns the custom program if set, else the catalog one.
func (a *AcademicInformation) DisplayProgram() string {
	return helpers.FirstNonEmpty(a.CustomProgram, a.Program)
}

// Normalize clears the fields a course record cannot carry.
func (a *AcademicInformation) Normalize() {
	if a.Kind != AcademicKindFormal {
		a.Kind = AcademicKindCourse
		a.Level = ""
		a.DegreeObtained = ""
	}
}

// GraduationYear returns the calendar year of graduation, or 0 if unknown.
func (a *AcademicInformation) GraduationYear() int {
	if a.GraduationDate == nil {
		return 0
	}
	return a.GraduationDate.Year()
}
