package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

// BasicInformationService manages the personal data of the authenticated user
type BasicInformationService struct {
	repo   BasicInformationStore
	logger zerolog.Logger
}

// NewBasicInformationService creates a new BasicInformationService
func NewBasicInformationService(repo BasicInformationStore, logger zerolog.Logger) *BasicInformationService {
	return &BasicInformationService{repo: repo, logger: logger}
}

// Get returns the user's basic information, or nil when none was stored yet
func (s *BasicInformationService) Get(ctx context.Context, userID int64) (*models.BasicInformation, error) {
	info, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, apperrors.ErrBasicInformationNotFound) {
		return nil, nil
	}
	return info, err
}

// Save creates or replaces the user's basic information
func (s *BasicInformationService) Save(ctx context.Context, userID int64, req *dto.BasicInformationRequest) (*models.BasicInformation, error) {
	info, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	s.logger.Debug().Int64("userID", userID).Msg("Basic information saved")
	return info, nil
}
