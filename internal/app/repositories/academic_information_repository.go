package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/dberrors"
	"github.com/yigit/egresados/internal/pkg/helpers"
	"github.com/yigit/egresados/internal/pkg/logger"
)

var academicColumns = []string{
	"id", "user_id", "kind", coalesce("level"), coalesce("degree_obtained"), "institution",
	coalesce("custom_institution"), "program", coalesce("custom_program"), "start_date", "graduation_date",
	coalesce("certificate_path"), coalesce("certificate_original_name"), "created_at", "updated_at",
}

// AcademicInformationRepository handles academic_information rows
type AcademicInformationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAcademicInformationRepository creates a new AcademicInformationRepository
func NewAcademicInformationRepository(db *pgxpool.Pool) *AcademicInformationRepository {
	return &AcademicInformationRepository{db: db, sb: statementBuilder()}
}

func scanAcademic(row scanner) (*models.AcademicInformation, error) {
	a := &models.AcademicInformation{}
	err := row.Scan(&a.ID, &a.UserID, &a.Kind, &a.Level, &a.DegreeObtained, &a.Institution,
		&a.CustomInstitution, &a.Program, &a.CustomProgram, &a.StartDate, &a.GraduationDate,
		&a.CertificatePath, &a.CertificateOriginalName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AcademicInformationRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.AcademicInformation, error) {
	query := r.sb.Select(academicColumns...).From("academic_information").
		OrderBy("graduation_date DESC NULLS LAST", "id ASC")
	if where != nil {
		query = query.Where(where)
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list academic information query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list academic information query")
		return nil, fmt.Errorf("error querying academic information: %w", err)
	}
	defer rows.Close()

	records := []*models.AcademicInformation{}
	for rows.Next() {
		a, err := scanAcademic(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning academic information row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByUserID returns the academic history of userID, latest graduation first
func (r *AcademicInformationRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.AcademicInformation, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListAll returns every academic record
func (r *AcademicInformationRepository) ListAll(ctx context.Context) ([]*models.AcademicInformation, error) {
	return r.list(ctx, nil)
}

// GetByID retrieves one record
func (r *AcademicInformationRepository) GetByID(ctx context.Context, id int64) (*models.AcademicInformation, error) {
	sql, args, err := r.sb.Select(academicColumns...).From("academic_information").
		Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get academic information query: %w", err)
	}

	a, err := scanAcademic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAcademicInformationNotFound
		}
		return nil, fmt.Errorf("error getting academic information: %w", err)
	}
	return a, nil
}

// Create inserts a record and fills its id and timestamps
func (r *AcademicInformationRepository) Create(ctx context.Context, a *models.AcademicInformation) error {
	sql, args, err := r.sb.Insert("academic_information").
		Columns("user_id", "kind", "level", "degree_obtained", "institution", "custom_institution",
			"program", "custom_program", "start_date", "graduation_date", "certificate_path",
			"certificate_original_name").
		Values(a.UserID, a.Kind, helpers.NullableString(a.Level), helpers.NullableString(a.DegreeObtained),
			a.Institution, helpers.NullableString(a.CustomInstitution), a.Program,
			helpers.NullableString(a.CustomProgram), a.StartDate, a.GraduationDate,
			helpers.NullableString(a.CertificatePath), helpers.NullableString(a.CertificateOriginalName)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create academic information query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", a.UserID).Msg("Error creating academic information")
		return fmt.Errorf("error creating academic information: %w", err)
	}
	return nil
}

// Update replaces the contents of a record owned by a.UserID
func (r *AcademicInformationRepository) Update(ctx context.Context, a *models.AcademicInformation) error {
	a.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("academic_information").
		SetMap(map[string]interface{}{
			"kind":                      a.Kind,
			"level":                     helpers.NullableString(a.Level),
			"degree_obtained":           helpers.NullableString(a.DegreeObtained),
			"institution":               a.Institution,
			"custom_institution":        helpers.NullableString(a.CustomInstitution),
			"program":                   a.Program,
			"custom_program":            helpers.NullableString(a.CustomProgram),
			"start_date":                a.StartDate,
			"graduation_date":           a.GraduationDate,
			"certificate_path":          helpers.NullableString(a.CertificatePath),
			"certificate_original_name": helpers.NullableString(a.CertificateOriginalName),
			"updated_at":                a.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": a.ID, "user_id": a.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update academic information query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", a.ID).Msg("Error updating academic information")
		return fmt.Errorf("error updating academic information: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAcademicInformationNotFound
	}
	return nil
}

// DeleteMany removes the given records of userID and returns the certificate paths they held
func (r *AcademicInformationRepository) DeleteMany(ctx context.Context, userID int64, ids []int64) ([]string, error) {
	sql, args, err := r.sb.Delete("academic_information").
		Where(squirrel.Eq{"user_id": userID, "id": ids}).
		Suffix("RETURNING " + coalesce("certificate_path")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete academic information query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error deleting academic information: %w", err)
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("error deleting academic information: %w", err)
	}
	return paths, nil
}
