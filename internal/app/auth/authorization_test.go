package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

type fakeUsers map[int64]*models.User

func (f fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeAcademic map[int64]*models.AcademicInformation

func (f fakeAcademic) GetByID(_ context.Context, id int64) (*models.AcademicInformation, error) {
	if a, ok := f[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAcademicInformationNotFound
}

type fakeEmployment map[int64]*models.EmploymentInformation

func (f fakeEmployment) GetByID(_ context.Context, id int64) (*models.EmploymentInformation, error) {
	if e, ok := f[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrEmploymentInformationNotFound
}

func newService() *AuthorizationService {
	return NewAuthorizationService(
		fakeUsers{
			1: {ID: 1, Role: models.RoleGraduate},
			2: {ID: 2, Role: models.RoleCoordinator},
		},
		fakeAcademic{10: {ID: 10, UserID: 1}, 11: {ID: 11, UserID: 3}},
		fakeEmployment{20: {ID: 20, UserID: 1}},
	)
}

func TestAcademicOwnership(t *testing.T) {
	s := newService()
	ctx := context.Background()

	record, err := s.AcademicRecordForOwner(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), record.ID)

	_, err = s.AcademicRecordForOwner(ctx, 11, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, MsgNotRecordOwner, apperrors.MessageOf(err, ""))

	_, err = s.AcademicRecordForOwner(ctx, 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrAcademicInformationNotFound)

	assert.ErrorIs(t, s.ValidateAcademicOwnership(ctx, []int64{10, 11}, 1), apperrors.ErrPermissionDenied)
}

func TestEmploymentOwnership(t *testing.T) {
	s := newService()
	require.NoError(t, s.ValidateEmploymentOwnership(context.Background(), []int64{20}, 1))
	assert.ErrorIs(t, s.ValidateEmploymentOwnership(context.Background(), []int64{20}, 2), apperrors.ErrPermissionDenied)
}

func TestValidateStaff(t *testing.T) {
	s := newService()
	assert.NoError(t, s.ValidateStaff(context.Background(), 2))
	assert.ErrorIs(t, s.ValidateStaff(context.Background(), 1), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, s.ValidateStaff(context.Background(), 7), apperrors.ErrUserNotFound)
}
