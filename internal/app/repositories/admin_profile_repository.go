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

var profileColumns = []string{
	"id", "user_id", coalesce("position"), coalesce("office"), coalesce("phone"), coalesce("bio"),
	coalesce("photo_path"), coalesce("photo_original_name"), "created_at", "updated_at",
}

// AdminProfileRepository handles admin_profiles rows
type AdminProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminProfileRepository creates a new AdminProfileRepository
func NewAdminProfileRepository(db *pgxpool.Pool) *AdminProfileRepository {
	return &AdminProfileRepository{db: db, sb: statementBuilder()}
}

// GetByUserID returns the profile of userID
func (r *AdminProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error) {
	sql, args, err := r.sb.Select(profileColumns...).From("admin_profiles").
		Where(squirrel.Eq{"user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.AdminProfile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.UserID, &p.Position, &p.Office, &p.Phone,
		&p.Bio, &p.PhotoPath, &p.PhotoOriginalName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting profile: %w", err)
	}
	return p, nil
}

// Upsert creates the profile of p.UserID or replaces its contents
func (r *AdminProfileRepository) Upsert(ctx context.Context, p *models.AdminProfile) error {
	sql, args, err := r.sb.Insert("admin_profiles").
		Columns("user_id", "position", "office", "phone", "bio", "photo_path", "photo_original_name", "updated_at").
		Values(p.UserID, helpers.NullableString(p.Position), helpers.NullableString(p.Office),
			helpers.NullableString(p.Phone), helpers.NullableString(p.Bio),
			helpers.NullableString(p.PhotoPath), helpers.NullableString(p.PhotoOriginalName), time.Now()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			position = EXCLUDED.position,
			office = EXCLUDED.office,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			photo_path = EXCLUDED.photo_path,
			photo_original_name = EXCLUDED.photo_original_name,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", p.UserID).Msg("Error upserting profile")
		return fmt.Errorf("error saving profile: %w", err)
	}
	return nil
}
