package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/dberrors"
	"github.com/yigit/egresados/internal/pkg/helpers"
	"github.com/yigit/egresados/internal/pkg/logger"
)

var employmentColumns = []string{
	"id", "user_id", "company_name", "position", coalesce("sector"), coalesce("contract_type"),
	coalesce("city"), "start_date", "end_date", "is_current_job", "soft_skills", "hard_skills",
	coalesce("description"), "created_at", "updated_at",
}

// EmploymentInformationRepository handles employment_information rows
type EmploymentInformationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmploymentInformationRepository creates a new EmploymentInformationRepository
func NewEmploymentInformationRepository(db *pgxpool.Pool) *EmploymentInformationRepository {
	return &EmploymentInformationRepository{db: db, sb: statementBuilder()}
}

func scanEmployment(row scanner) (*models.EmploymentInformation, error) {
	e := &models.EmploymentInformation{}
	err := row.Scan(&e.ID, &e.UserID, &e.CompanyName, &e.Position, &e.Sector, &e.ContractType,
		&e.City, &e.StartDate, &e.EndDate, &e.IsCurrentJob, &e.SoftSkills, &e.HardSkills,
		&e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

func (r *EmploymentInformationRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.EmploymentInformation, error) {
	query := r.sb.Select(employmentColumns...).From("employment_information").
		OrderBy("is_current_job DESC", "start_date DESC NULLS LAST", "id ASC")
	if where != nil {
		query = query.Where(where)
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list employment information query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list employment information query")
		return nil, fmt.Errorf("error querying employment information: %w", err)
	}
	defer rows.Close()

	records := []*models.EmploymentInformation{}
	for rows.Next() {
		e, err := scanEmployment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employment information row: %w", err)
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

// ListByUserID returns the employment history of userID, current job first
func (r *EmploymentInformationRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.EmploymentInformation, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListAll returns the whole employment table
func (r *EmploymentInformationRepository) ListAll(ctx context.Context) ([]*models.EmploymentInformation, error) {
	return r.list(ctx, nil)
}

// GetByID retrieves one record
func (r *EmploymentInformationRepository) GetByID(ctx context.Context, id int64) (*models.EmploymentInformation, error) {
	sql, args, err := r.sb.Select(employmentColumns...).From("employment_information").
		Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employment information query: %w", err)
	}

	e, err := scanEmployment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrEmploymentInformationNotFound
		}
		return nil, fmt.Errorf("error getting employment information: %w", err)
	}
	return e, nil
}

// Create inserts a record and fills its id and timestamps
func (r *EmploymentInformationRepository) Create(ctx context.Context, e *models.EmploymentInformation) error {
	sql, args, err := r.sb.Insert("employment_information").
		Columns("user_id", "company_name", "position", "sector", "contract_type", "city", "start_date",
			"end_date", "is_current_job", "soft_skills", "hard_skills", "description").
		Values(e.UserID, e.CompanyName, e.Position, helpers.NullableString(e.Sector),
			helpers.NullableString(e.ContractType), helpers.NullableString(e.City), e.StartDate,
			e.EndDate, e.IsCurrentJob, skillsOrEmpty(e.SoftSkills), skillsOrEmpty(e.HardSkills),
			helpers.NullableString(e.Description)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create employment information query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", e.UserID).Msg("Error creating employment information")
		return fmt.Errorf("error creating employment information: %w", err)
	}
	return nil
}

// Update replaces the contents of a record owned by e.UserID
func (r *EmploymentInformationRepository) Update(ctx context.Context, e *models.EmploymentInformation) error {
	e.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("employment_information").
		SetMap(map[string]interface{}{
			"company_name":   e.CompanyName,
			"position":       e.Position,
			"sector":         helpers.NullableString(e.Sector),
			"contract_type":  helpers.NullableString(e.ContractType),
			"city":           helpers.NullableString(e.City),
			"start_date":     e.StartDate,
			"end_date":       e.EndDate,
			"is_current_job": e.IsCurrentJob,
			"soft_skills":    skillsOrEmpty(e.SoftSkills),
			"hard_skills":    skillsOrEmpty(e.HardSkills),
			"description":    helpers.NullableString(e.Description),
			"updated_at":     e.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": e.ID, "user_id": e.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update employment information query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", e.ID).Msg("Error updating employment information")
		return fmt.Errorf("error updating employment information: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmploymentInformationNotFound
	}
	return nil
}

// DeleteMany removes the given records of userID and reports how many were deleted
func (r *EmploymentInformationRepository) DeleteMany(ctx context.Context, userID int64, ids []int64) (int, error) {
	sql, args, err := r.sb.Delete("employment_information").
		Where(squirrel.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete employment information query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting employment information: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
