package auth

import (
	"context"
	"fmt"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/logger"
)

// Messages returned with ownership failures
const (
	MsgNotRecordOwner = "you are not allowed to modify this record"
	MsgStaffOnly      = "only administrators and coordinators can perform this action"
)

// UserLookup resolves users by id.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AcademicLookup resolves academic records by id.
type AcademicLookup interface {
	GetByID(ctx context.Context, id int64) (*models.AcademicInformation, error)
}

// EmploymentLookup resolves employment records by id.
type EmploymentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.EmploymentInformation, error)
}

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	users      UserLookup
	academic   AcademicLookup
	employment EmploymentLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users UserLookup, academic AcademicLookup, employment EmploymentLookup) *AuthorizationService {
	return &AuthorizationService{
		users:      users,
		academic:   academic,
		employment: employment,
	}
}

// ValidateOwnership returns a permission error unless ownerID is userID.
func ValidateOwnership(ownerID, userID int64) error {
	if ownerID != userID {
		return apperrors.NewForbiddenError(MsgNotRecordOwner)
	}
	return nil
}

// ValidateStaff checks that the user is an administrator or coordinator.
func (s *AuthorizationService) ValidateStaff(ctx context.Context, userID int64) error {
	user, err := s.GetUserInfo(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Role.IsStaff() {
		return apperrors.NewForbiddenError(MsgStaffOnly)
	}
	return nil
}

// AcademicRecordForOwner returns the record if userID owns it.
func (s *AuthorizationService) AcademicRecordForOwner(ctx context.Context, recordID, userID int64) (*models.AcademicInformation, error) {
	record, err := s.academic.GetByID(ctx, recordID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			logger.Error().Err(err).Int64("recordID", recordID).Msg("Error getting academic record for ownership check")
		}
		return nil, err
	}
	if err := ValidateOwnership(record.UserID, userID); err != nil {
		logger.Warn().Int64("recordID", recordID).Int64("userID", userID).Msg("Academic record ownership check failed")
		return nil, err
	}
	return record, nil
}

// EmploymentRecordForOwner returns the record if userID owns it.
func (s *AuthorizationService) EmploymentRecordForOwner(ctx context.Context, recordID, userID int64) (*models.EmploymentInformation, error) {
	record, err := s.employment.GetByID(ctx, recordID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			logger.Error().Err(err).Int64("recordID", recordID).Msg("Error getting employment record for ownership check")
		}
		return nil, err
	}
	if err := ValidateOwnership(record.UserID, userID); err != nil {
		logger.Warn().Int64("recordID", recordID).Int64("userID", userID).Msg("Employment record ownership check failed")
		return nil, err
	}
	return record, nil
}

// ValidateAcademicOwnership checks every id in ids belongs to userID.
func (s *AuthorizationService) ValidateAcademicOwnership(ctx context.Context, ids []int64, userID int64) error {
	for _, id := range ids {
		if _, err := s.AcademicRecordForOwner(ctx, id, userID); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEmploymentOwnership checks every id in ids belongs to userID.
func (s *AuthorizationService) ValidateEmploymentOwnership(ctx context.Context, ids []int64, userID int64) error {
	for _, id := range ids {
		if _, err := s.EmploymentRecordForOwner(ctx, id, userID); err != nil {
			return err
		}
	}
	return nil
}

// GetUserInfo returns user information
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in GetUserInfo")
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
