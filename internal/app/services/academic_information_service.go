package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/auth"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/filestorage"
)

// AcademicInformationService manages academic records and their certificates
type AcademicInformationService struct {
	repo    AcademicStore
	authz   *auth.AuthorizationService
	uploads uploads
	logger  zerolog.Logger
}

// NewAcademicInformationService creates a new AcademicInformationService
func NewAcademicInformationService(repo AcademicStore, authz *auth.AuthorizationService, storage filestorage.FileStorage, logger zerolog.Logger) *AcademicInformationService {
	return &AcademicInformationService{
		repo:    repo,
		authz:   authz,
		uploads: uploads{storage: storage, logger: logger},
		logger:  logger,
	}
}

func (s *AcademicInformationService) toResponse(a *models.AcademicInformation) dto.AcademicInformationResponse {
	return dto.AcademicInformationResponse{
		AcademicInformation: *a,
		CertificateURL:      s.uploads.url(a.CertificatePath),
	}
}

// List returns the user's academic records
func (s *AcademicInformationService) List(ctx context.Context, userID int64) ([]dto.AcademicInformationResponse, error) {
	records, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AcademicInformationResponse, 0, len(records))
	for _, r := range records {
		out = append(out, s.toResponse(r))
	}
	return out, nil
}

// Create stores a new record with its optional certificate
func (s *AcademicInformationService) Create(ctx context.Context, userID int64, req *dto.AcademicInformationRequest) (*dto.AcademicInformationResponse, error) {
	record, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}

	upload, err := s.uploads.save(req.Certificate, filestorage.CategoryCertificates)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		record.CertificatePath = upload.Path
		record.CertificateOriginalName = upload.OriginalName
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.uploads.discard(upload)
		return nil, err
	}

	resp := s.toResponse(record)
	return &resp, nil
}

// Update replaces a record owned by userID. A new certificate replaces the stored one,
// which is deleted only after the row is updated.
func (s *AcademicInformationService) Update(ctx context.Context, userID, id int64, req *dto.AcademicInformationRequest) (*dto.AcademicInformationResponse, error) {
	existing, err := s.authz.AcademicRecordForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	record, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	record.CertificatePath = existing.CertificatePath
	record.CertificateOriginalName = existing.CertificateOriginalName

	upload, err := s.uploads.save(req.Certificate, filestorage.CategoryCertificates)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		record.CertificatePath = upload.Path
		record.CertificateOriginalName = upload.OriginalName
	}

	if err := s.repo.Update(ctx, record); err != nil {
		s.uploads.discard(upload)
		return nil, err
	}
	if upload != nil {
		s.uploads.remove(existing.CertificatePath)
	}

	resp := s.toResponse(record)
	return &resp, nil
}

// Delete removes one record owned by userID
func (s *AcademicInformationService) Delete(ctx context.Context, userID, id int64) error {
	_, err := s.DeleteMany(ctx, userID, []int64{id})
	return err
}

// DeleteMany removes records owned by userID together with their certificates
func (s *AcademicInformationService) DeleteMany(ctx context.Context, userID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewBadRequestError("no records selected")
	}
	if err := s.authz.ValidateAcademicOwnership(ctx, ids, userID); err != nil {
		return 0, err
	}

	paths, err := s.repo.DeleteMany(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("error deleting academic records: %w", err)
	}
	s.uploads.remove(paths...)

	s.logger.Debug().Int64("userID", userID).Int("deleted", len(paths)).Msg("Academic records deleted")
	return len(paths), nil
}

// CertificateFile is a stored certificate ready to be served
type CertificateFile struct {
	FullPath     string
	OriginalName string
}

// Certificate returns the certificate of record id. Owners and staff may read it.
func (s *AcademicInformationService) Certificate(ctx context.Context, userID int64, role models.RoleType, id int64) (*CertificateFile, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.IsStaff() {
		if err := auth.ValidateOwnership(record.UserID, userID); err != nil {
			return nil, err
		}
	}
	if record.CertificatePath == "" {
		return nil, apperrors.NewResourceNotFoundError("this record has no certificate")
	}

	fullPath := s.uploads.storage.GetFullPath(record.CertificatePath)
	if fullPath == "" {
		return nil, apperrors.NewResourceNotFoundError("certificate not found")
	}
	return &CertificateFile{
		FullPath:     fullPath,
		OriginalName: record.CertificateOriginalName,
	}, nil
}
