package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

// LocationService stores the geolocation captured by each user
type LocationService struct {
	repo   LocationStore
	logger zerolog.Logger
}

// NewLocationService creates a new LocationService
func NewLocationService(repo LocationStore, logger zerolog.Logger) *LocationService {
	return &LocationService{repo: repo, logger: logger}
}

// Get returns the user's location, or nil when none was captured
func (s *LocationService) Get(ctx context.Context, userID int64) (*models.Location, error) {
	loc, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, apperrors.ErrLocationNotFound) {
		return nil, nil
	}
	return loc, err
}

// Save creates or replaces the user's location
func (s *LocationService) Save(ctx context.Context, userID int64, req *dto.LocationRequest) (*models.Location, error) {
	loc := req.ToModel(userID)
	if err := s.repo.Upsert(ctx, loc); err != nil {
		return nil, err
	}
	s.logger.Debug().Int64("userID", userID).Float64("lat", loc.Latitude).Float64("lng", loc.Longitude).Msg("Location captured")
	return loc, nil
}

// List returns every captured location
func (s *LocationService) List(ctx context.Context) ([]*models.Location, error) {
	return s.repo.ListAll(ctx)
}
