package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/auth"
)

func TestDeleteUserRemovesFilesAfterRow(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 1, Role: models.RoleAdmin}, &models.User{ID: 2, Role: models.RoleGraduate})
	storage := &fakeStorage{}
	files := fakeFileIndex{2: {"certificates/a.pdf", "profile_photos/b.png"}}
	svc := NewUserService(users, files, storage, nopLogger())

	require.NoError(t, svc.DeleteUser(context.Background(), 1, 2))
	assert.NotContains(t, users.users, int64(2))
	assert.Equal(t, []string{"certificates/a.pdf", "profile_photos/b.png"}, storage.deleted)

	err := svc.DeleteUser(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Len(t, storage.deleted, 2)
}

func TestDeleteOwnAccountForbidden(t *testing.T) {
	svc := NewUserService(newFakeUserStore(&models.User{ID: 1}), fakeFileIndex{}, &fakeStorage{}, nopLogger())
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 1), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.SetUserStatus(context.Background(), 1, 1, false), apperrors.ErrPermissionDenied)
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	hash, err := auth.HashPassword("original1")
	require.NoError(t, err)
	users := newFakeUserStore(&models.User{ID: 3, Name: "Old", Email: "old@example.com", Password: hash, Role: models.RoleGraduate, IsActive: true})
	svc := NewUserService(users, fakeFileIndex{}, &fakeStorage{}, nopLogger())

	resp, err := svc.UpdateUser(context.Background(), 3, &dto.UpdateUserRequest{Name: "New", Email: "NEW@example.com", Role: "coordinator"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, "coordinator", resp.Role)
	assert.True(t, auth.CheckPassword(users.users[3].Password, "original1"))

	_, err = svc.UpdateUser(context.Background(), 3, &dto.UpdateUserRequest{Name: "New", Email: "new@example.com", Role: "coordinator", Password: "changed12"})
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(users.users[3].Password, "changed12"))
}

func TestListUsersPaginates(t *testing.T) {
	users := newFakeUserStore(
		&models.User{ID: 1, Role: models.RoleGraduate},
		&models.User{ID: 2, Role: models.RoleGraduate},
		&models.User{ID: 3, Role: models.RoleAdmin},
	)
	svc := NewUserService(users, fakeFileIndex{}, &fakeStorage{}, nopLogger())

	page, err := svc.ListUsers(context.Background(), &dto.UserListQuery{Role: "graduate", Page: 1, PageSize: 10})
	require.NoError(t, err)
	items, ok := page.Items.([]dto.UserResponse)
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), page.Pagination.TotalItems)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}
