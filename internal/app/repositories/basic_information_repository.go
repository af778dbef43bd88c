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

var basicColumns = []string{
	"id", "user_id", "document_type", "document_number", "first_names", "last_names",
	coalesce("gender"), "birth_date", coalesce("phone"), coalesce("address"), coalesce("city"),
	coalesce("department"), coalesce("country"), coalesce("marital_status"), "created_at", "updated_at",
}

// BasicInformationRepository handles basic_information rows
type BasicInformationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBasicInformationRepository creates a new BasicInformationRepository
func NewBasicInformationRepository(db *pgxpool.Pool) *BasicInformationRepository {
	return &BasicInformationRepository{db: db, sb: statementBuilder()}
}

func scanBasic(row scanner) (*models.BasicInformation, error) {
	b := &models.BasicInformation{}
	err := row.Scan(&b.ID, &b.UserID, &b.DocumentType, &b.DocumentNumber, &b.FirstNames, &b.LastNames,
		&b.Gender, &b.BirthDate, &b.Phone, &b.Address, &b.City, &b.Department, &b.Country, &b.MaritalStatus,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByUserID returns the record of userID
func (r *BasicInformationRepository) GetByUserID(ctx context.Context, userID int64) (*models.BasicInformation, error) {
	sql, args, err := r.sb.Select(basicColumns...).From("basic_information").
		Where(squirrel.Eq{"user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get basic information query: %w", err)
	}

	b, err := scanBasic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrBasicInformationNotFound
		}
		return nil, fmt.Errorf("error getting basic information: %w", err)
	}
	return b, nil
}

// Upsert creates the record of b.UserID or replaces its contents
func (r *BasicInformationRepository) Upsert(ctx context.Context, b *models.BasicInformation) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("basic_information").
		Columns("user_id", "document_type", "document_number", "first_names", "last_names", "gender",
			"birth_date", "phone", "address", "city", "department", "country", "marital_status", "updated_at").
		Values(b.UserID, b.DocumentType, b.DocumentNumber, b.FirstNames, b.LastNames,
			helpers.NullableString(b.Gender), b.BirthDate, helpers.NullableString(b.Phone),
			helpers.NullableString(b.Address), helpers.NullableString(b.City),
			helpers.NullableString(b.Department), helpers.NullableString(b.Country),
			helpers.NullableString(b.MaritalStatus), now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			document_type = EXCLUDED.document_type,
			document_number = EXCLUDED.document_number,
			first_names = EXCLUDED.first_names,
			last_names = EXCLUDED.last_names,
			gender = EXCLUDED.gender,
			birth_date = EXCLUDED.birth_date,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			department = EXCLUDED.department,
			country = EXCLUDED.country,
			marital_status = EXCLUDED.marital_status,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert basic information query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", b.UserID).Msg("Error upserting basic information")
		return fmt.Errorf("error saving basic information: %w", err)
	}
	return nil
}

// ListAll returns every basic information row keyed by user id
func (r *BasicInformationRepository) ListAll(ctx context.Context) (map[int64]*models.BasicInformation, error) {
	sql, args, err := r.sb.Select(basicColumns...).From("basic_information").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list basic information query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying basic information: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64]*models.BasicInformation)
	for rows.Next() {
		b, err := scanBasic(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning basic information row: %w", err)
		}
		byUser[b.UserID] = b
	}
	return byUser, rows.Err()
}
