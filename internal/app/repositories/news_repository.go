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

var newsColumns = []string{
	"n.id", "n.title", coalesce("n.summary"), "n.content", coalesce("n.photo_path"),
	coalesce("n.photo_original_name"), "n.author_id", coalesce("u.name"), "n.published_at",
	"n.created_at", "n.updated_at",
}

// NewsRepository handles news rows
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db, sb: statementBuilder()}
}

func scanNews(row scanner) (*models.News, error) {
	n := &models.News{}
	err := row.Scan(&n.ID, &n.Title, &n.Summary, &n.Content, &n.PhotoPath, &n.PhotoOriginalName,
		&n.AuthorID, &n.AuthorName, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NewsRepository) selectNews() squirrel.SelectBuilder {
	return r.sb.Select(newsColumns...).From("news n").LeftJoin("users u ON u.id = n.author_id")
}

// List returns a page of news, newest first, and the total count
func (r *NewsRepository) List(ctx context.Context, offset, limit uint64) ([]*models.News, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting news: %w", err)
	}

	sql, args, err := r.selectNews().OrderBy("n.published_at DESC", "n.id DESC").
		Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, 0, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	items := []*models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning news row: %w", err)
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}

// GetByID retrieves one news item
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := r.selectNews().Where(squirrel.Eq{"n.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	n, err := scanNews(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error getting news: %w", err)
	}
	return n, nil
}

// Create inserts a news item
func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "summary", "content", "photo_path", "photo_original_name", "author_id", "published_at").
		Values(n.Title, helpers.NullableString(n.Summary), n.Content, helpers.NullableString(n.PhotoPath),
			helpers.NullableString(n.PhotoOriginalName), n.AuthorID, n.PublishedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error creating news")
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a news item
func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	n.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("news").
		SetMap(map[string]interface{}{
			"title":               n.Title,
			"summary":             helpers.NullableString(n.Summary),
			"content":             n.Content,
			"photo_path":          helpers.NullableString(n.PhotoPath),
			"photo_original_name": helpers.NullableString(n.PhotoOriginalName),
			"published_at":        n.PublishedAt,
			"updated_at":          n.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": n.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", n.ID).Msg("Error updating news")
		return fmt.Errorf("error updating news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}

// Delete removes a news item
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}
