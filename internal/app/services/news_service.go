package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/pkg/filestorage"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// NewsService defines the interface for news operations
type NewsService interface {
	ListNews(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	GetNews(ctx context.Context, id int64) (*dto.NewsResponse, error)
	CreateNews(ctx context.Context, authorID int64, req *dto.NewsRequest) (*dto.NewsResponse, error)
	UpdateNews(ctx context.Context, id int64, req *dto.NewsRequest) (*dto.NewsResponse, error)
	DeleteNews(ctx context.Context, id int64) error
}

type newsServiceImpl struct {
	repo    NewsStore
	uploads uploads
	logger  zerolog.Logger
}

// NewNewsService creates a new NewsService
func NewNewsService(repo NewsStore, storage filestorage.FileStorage, logger zerolog.Logger) NewsService {
	return &newsServiceImpl{
		repo:    repo,
		uploads: uploads{storage: storage, logger: logger},
		logger:  logger,
	}
}

func (s *newsServiceImpl) toResponse(n *models.News) *dto.NewsResponse {
	return &dto.NewsResponse{News: *n, PhotoURL: s.uploads.url(n.PhotoPath)}
}

// ListNews returns one page of news, newest first
func (s *newsServiceImpl) ListNews(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	items, total, err := s.repo.List(ctx, offset, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}

	out := make([]*dto.NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, s.toResponse(n))
	}
	return &dto.PaginatedResponse{
		Items:      out,
		Pagination: helpers.NewPaginationInfo(int64(total), page, limit),
	}, nil
}

// GetNews retrieves a news item by ID
func (s *newsServiceImpl) GetNews(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(n), nil
}

// CreateNews publishes a news item with an optional photo
func (s *newsServiceImpl) CreateNews(ctx context.Context, authorID int64, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	news, err := req.ToModel(authorID)
	if err != nil {
		return nil, err
	}

	upload, err := s.uploads.save(req.Photo, filestorage.CategoryNews)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		news.PhotoPath = upload.Path
		news.PhotoOriginalName = upload.OriginalName
	}

	if err := s.repo.Create(ctx, news); err != nil {
		s.uploads.discard(upload)
		return nil, err
	}

	s.logger.Info().Int64("newsID", news.ID).Int64("authorID", authorID).Msg("News published")
	return s.toResponse(news), nil
}

// UpdateNews replaces a news item. The author is kept.
func (s *newsServiceImpl) UpdateNews(ctx context.Context, id int64, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var authorID int64
	if existing.AuthorID != nil {
		authorID = *existing.AuthorID
	}
	news, err := req.ToModel(authorID)
	if err != nil {
		return nil, err
	}
	news.ID = existing.ID
	news.AuthorID = existing.AuthorID
	news.AuthorName = existing.AuthorName
	news.CreatedAt = existing.CreatedAt
	news.PhotoPath = existing.PhotoPath
	news.PhotoOriginalName = existing.PhotoOriginalName
	if req.PublishedAt == "" {
		news.PublishedAt = existing.PublishedAt
	}

	upload, err := s.uploads.save(req.Photo, filestorage.CategoryNews)
	if err != nil {
		return nil, err
	}
	if upload != nil {
		news.PhotoPath = upload.Path
		news.PhotoOriginalName = upload.OriginalName
	}

	if err := s.repo.Update(ctx, news); err != nil {
		s.uploads.discard(upload)
		return nil, err
	}
	if upload != nil {
		s.uploads.remove(existing.PhotoPath)
	}
	return s.toResponse(news), nil
}

// DeleteNews removes a news item and its photo
func (s *newsServiceImpl) DeleteNews(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.uploads.remove(existing.PhotoPath)
	return nil
}
