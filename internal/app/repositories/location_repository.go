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

var locationColumns = []string{
	"l.id", "l.user_id", "l.latitude", "l.longitude", coalesce("l.address"), coalesce("l.city"),
	"l.captured_at", "l.updated_at", "u.name",
}

// LocationRepository handles locations rows
type LocationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db, sb: statementBuilder()}
}

func scanLocation(row scanner) (*models.Location, error) {
	l := &models.Location{}
	err := row.Scan(&l.ID, &l.UserID, &l.Latitude, &l.Longitude, &l.Address, &l.City,
		&l.CapturedAt, &l.UpdatedAt, &l.UserName)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LocationRepository) selectLocations() squirrel.SelectBuilder {
	return r.sb.Select(locationColumns...).From("locations l").Join("users u ON u.id = l.user_id")
}

// GetByUserID returns the captured location of userID
func (r *LocationRepository) GetByUserID(ctx context.Context, userID int64) (*models.Location, error) {
	sql, args, err := r.selectLocations().Where(squirrel.Eq{"l.user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get location query: %w", err)
	}

	l, err := scanLocation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("error getting location: %w", err)
	}
	return l, nil
}

// Upsert stores l as the current location of l.UserID
func (r *LocationRepository) Upsert(ctx context.Context, l *models.Location) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("locations").
		Columns("user_id", "latitude", "longitude", "address", "city", "captured_at", "updated_at").
		Values(l.UserID, l.Latitude, l.Longitude, helpers.NullableString(l.Address),
			helpers.NullableString(l.City), now, now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			captured_at = EXCLUDED.captured_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id, captured_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert location query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&l.ID, &l.CapturedAt, &l.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", l.UserID).Msg("Error upserting location")
		return fmt.Errorf("error saving location: %w", err)
	}
	return nil
}

// ListAll returns every captured location with its owner name
func (r *LocationRepository) ListAll(ctx context.Context) ([]*models.Location, error) {
	sql, args, err := r.selectLocations().OrderBy("u.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list locations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying locations: %w", err)
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
