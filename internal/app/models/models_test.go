package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicDisplayValues(t *testing.T) {
	a := AcademicInformation{Institution: "Universidad de Nariño", Program: "Derecho", CustomProgram: "Derecho Ambiental"}
	assert.Equal(t, "Universidad de Nariño", a.DisplayInstitution())
	assert.Equal(t, "Derecho Ambiental", a.DisplayProgram())
}

func TestAcademicNormalizeCourse(t *testing.T) {
	a := AcademicInformation{Kind: AcademicKindCourse, Level: LevelMaestria, DegreeObtained: "Magíster"}
	a.Normalize()
	assert.Empty(t, a.Level)
	assert.Empty(t, a.DegreeObtained)

	f := AcademicInformation{Kind: AcademicKindFormal, Level: LevelMaestria, DegreeObtained: "Magíster"}
	f.Normalize()
	assert.Equal(t, LevelMaestria, f.Level)
}

func TestEmploymentNormalizeCurrentJob(t *testing.T) {
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	e := EmploymentInformation{IsCurrentJob: true, EndDate: &end, HardSkills: []string{"Go", "go", " SQL "}}
	e.Normalize()
	assert.Nil(t, e.EndDate)
	assert.Equal(t, []string{"Go", "SQL"}, e.HardSkills)
	assert.Equal(t, []string{}, e.SoftSkills)
}

func TestRoleType(t *testing.T) {
	assert.True(t, RoleCoordinator.IsStaff())
	assert.False(t, RoleGraduate.IsStaff())
	assert.False(t, RoleType("STUDENT").IsValid())
}
