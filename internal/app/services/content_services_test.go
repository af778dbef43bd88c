package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/egresados/internal/app/auth"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

func TestEmploymentUpdateOwnership(t *testing.T) {
	store := &fakeEmploymentStore{records: map[int64]*models.EmploymentInformation{
		1: {ID: 1, UserID: 1, CompanyName: "Acme"},
	}}
	authz := appauth.NewAuthorizationService(newFakeUserStore(), newFakeAcademicStore(), store)
	svc := NewEmploymentInformationService(store, authz, nopLogger())
	req := &dto.EmploymentInformationRequest{CompanyName: "Beta", Position: "Dev", IsCurrentJob: true, EndDate: "2024-01-01"}

	_, err := svc.Update(context.Background(), 2, 1, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), 1, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Beta", store.records[1].CompanyName)
	assert.Nil(t, updated.EndDate)

	deleted, err := svc.DeleteMany(context.Background(), 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestProfileSaveReplacesPhoto(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 1, Name: "Admin", Role: models.RoleAdmin})
	profiles := &fakeProfileStore{profiles: map[int64]*models.AdminProfile{
		1: {UserID: 1, PhotoPath: "profile_photos/old.png"},
	}}
	storage := &fakeStorage{}
	svc := NewProfileService(profiles, users, storage, nopLogger())

	resp, err := svc.Save(context.Background(), 1, &dto.AdminProfileRequest{
		Position: "Coordinadora", Photo: &multipart.FileHeader{Filename: "new.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profile_photos/new.png", resp.PhotoURL)
	assert.Equal(t, []string{"profile_photos/old.png"}, storage.deleted)

	resp, err = svc.Save(context.Background(), 1, &dto.AdminProfileRequest{Position: "Directora"})
	require.NoError(t, err)
	assert.Equal(t, "profile_photos/new.png", resp.Profile.PhotoPath)
	assert.Len(t, storage.deleted, 1)
}

func TestProfileGetWithoutProfile(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 1, Name: "Admin", Role: models.RoleAdmin})
	svc := NewProfileService(&fakeProfileStore{profiles: map[int64]*models.AdminProfile{}}, users, &fakeStorage{}, nopLogger())

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, resp.Profile)
	assert.Equal(t, "Admin", resp.User.Name)
}

func TestNewsUpdateKeepsAuthorAndDeleteRemovesPhoto(t *testing.T) {
	author := int64(4)
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeNewsStore{items: map[int64]*models.News{
		1: {ID: 1, Title: "Old", AuthorID: &author, PhotoPath: "news/old.jpg", PublishedAt: published},
	}}
	storage := &fakeStorage{}
	svc := NewNewsService(store, storage, nopLogger())

	resp, err := svc.UpdateNews(context.Background(), 1, &dto.NewsRequest{Title: "Nuevo título", Content: "Contenido"})
	require.NoError(t, err)
	require.NotNil(t, resp.AuthorID)
	assert.Equal(t, author, *resp.AuthorID)
	assert.Equal(t, published, resp.PublishedAt)
	assert.Equal(t, "news/old.jpg", resp.PhotoPath)

	require.NoError(t, svc.DeleteNews(context.Background(), 1))
	assert.Equal(t, []string{"news/old.jpg"}, storage.deleted)

	_, err = svc.GetNews(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}

func TestNewsCreateUploadFailure(t *testing.T) {
	store := &fakeNewsStore{items: map[int64]*models.News{}}
	storage := &fakeStorage{saveErr: apperrors.ErrInvalidFile}
	svc := NewNewsService(store, storage, nopLogger())

	_, err := svc.CreateNews(context.Background(), 1, &dto.NewsRequest{
		Title: "Feria laboral", Content: "x", Photo: &multipart.FileHeader{Filename: "x.exe"},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFile)
	assert.Empty(t, store.items)
}
