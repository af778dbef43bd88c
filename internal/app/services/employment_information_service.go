package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/auth"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

// EmploymentInformationService manages employment history
type EmploymentInformationService struct {
	repo   EmploymentStore
	authz  *auth.AuthorizationService
	logger zerolog.Logger
}

// NewEmploymentInformationService creates a new EmploymentInformationService
func NewEmploymentInformationService(repo EmploymentStore, authz *auth.AuthorizationService, logger zerolog.Logger) *EmploymentInformationService {
	return &EmploymentInformationService{repo: repo, authz: authz, logger: logger}
}

// List returns the user's employment records
func (s *EmploymentInformationService) List(ctx context.Context, userID int64) ([]*models.EmploymentInformation, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Create stores a new employment record
func (s *EmploymentInformationService) Create(ctx context.Context, userID int64, req *dto.EmploymentInformationRequest) (*models.EmploymentInformation, error) {
	record, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update replaces a record owned by userID
func (s *EmploymentInformationService) Update(ctx context.Context, userID, id int64, req *dto.EmploymentInformationRequest) (*models.EmploymentInformation, error) {
	existing, err := s.authz.EmploymentRecordForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	record, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes one record owned by userID
func (s *EmploymentInformationService) Delete(ctx context.Context, userID, id int64) error {
	_, err := s.DeleteMany(ctx, userID, []int64{id})
	return err
}

// DeleteMany removes records owned by userID
func (s *EmploymentInformationService) DeleteMany(ctx context.Context, userID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewBadRequestError("no records selected")
	}
	if err := s.authz.ValidateEmploymentOwnership(ctx, ids, userID); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteMany(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("error deleting employment records: %w", err)
	}
	return deleted, nil
}
