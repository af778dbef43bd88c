package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/filestorage"
)

// ProfileService manages the profile of administrators and coordinators
type ProfileService struct {
	repo    ProfileStore
	users   UserStore
	uploads uploads
	logger  zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(repo ProfileStore, users UserStore, storage filestorage.FileStorage, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		repo:    repo,
		users:   users,
		uploads: uploads{storage: storage, logger: logger},
		logger:  logger,
	}
}

func (s *ProfileService) response(user *models.User, profile *models.AdminProfile) *dto.AdminProfileResponse {
	resp := &dto.AdminProfileResponse{User: dto.NewUserResponse(user), Profile: profile}
	if profile != nil {
		resp.PhotoURL = s.uploads.url(profile.PhotoPath)
	}
	return resp
}

// Get returns the user together with its profile, which may not exist yet
func (s *ProfileService) Get(ctx context.Context, userID int64) (*dto.AdminProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}
	return s.response(user, profile), nil
}

// Save creates or replaces the profile. A new photo replaces the stored one.
func (s *ProfileService) Save(ctx context.Context, userID int64, req *dto.AdminProfileRequest) (*dto.AdminProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}

	profile := req.ToModel(userID)
	if existing != nil {
		profile.PhotoPath = existing.PhotoPath
		profile.PhotoOriginalName = existing.PhotoOriginalName
	}

	upload, err := s.uploads.save(req.Photo, filestorage.CategoryProfilePhotos)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		profile.PhotoPath = upload.Path
		profile.PhotoOriginalName = upload.OriginalName
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		s.uploads.discard(upload)
		return nil, err
	}
	if upload != nil && existing != nil {
		s.uploads.remove(existing.PhotoPath)
	}

	return s.response(user, profile), nil
}
