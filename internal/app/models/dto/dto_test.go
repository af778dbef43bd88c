package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/validation"
)

func TestEmploymentCurrentJobDropsEndDate(t *testing.T) {
	req := EmploymentInformationRequest{
		CompanyName:  "Acme",
		Position:     "Developer",
		StartDate:    "2022-01-10",
		EndDate:      "2023-01-10",
		IsCurrentJob: true,
		SoftSkills:   []string{"Liderazgo", "liderazgo"},
	}

	record, err := req.ToModel(9)
	require.NoError(t, err)
	assert.Nil(t, record.EndDate)
	assert.Equal(t, int64(9), record.UserID)
	assert.Equal(t, []string{"Liderazgo"}, record.SoftSkills)
}

func TestEmploymentEndBeforeStart(t *testing.T) {
	req := EmploymentInformationRequest{CompanyName: "Acme", Position: "Dev", StartDate: "2023-01-10", EndDate: "2022-01-10"}
	_, err := req.ToModel(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.DetailsOf(err), "endDate")
}

func TestAcademicCourseClearsLevel(t *testing.T) {
	req := AcademicInformationRequest{Kind: "course", Level: "maestría", DegreeObtained: "x", Institution: "SENA", Program: "Excel"}
	record, err := req.ToModel(3)
	require.NoError(t, err)
	assert.Equal(t, models.AcademicKindCourse, record.Kind)
	assert.Empty(t, record.Level)
	assert.Empty(t, record.DegreeObtained)
}

func TestAcademicFormalCanonicalLevel(t *testing.T) {
	req := AcademicInformationRequest{Kind: "formal", Level: "MAESTRIA", Institution: "Universidad de Nariño", Program: "Derecho", GraduationDate: "2023-06-30"}
	record, err := req.ToModel(3)
	require.NoError(t, err)
	assert.Equal(t, models.LevelMaestria, record.Level)
	assert.Equal(t, 2023, record.GraduationYear())

	req.Level = "bachillerato"
	_, err = req.ToModel(3)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.Register(v))
	v.SetTagName("binding")

	err := v.Struct(LocationRequest{Address: "Calle 18"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	fields, ok := detail.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "latitude is required", fields["latitude"])
	assert.Equal(t, "longitude is required", fields["longitude"])
}

func TestHandleValidationErrorFallback(t *testing.T) {
	detail := HandleValidationError(errors.New("EOF"))
	assert.Equal(t, ErrorCodeBadRequest, detail.Code)
}
