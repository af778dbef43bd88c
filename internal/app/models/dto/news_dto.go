package dto

import (
	"mime/multipart"
	"time"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// NewsRequest is submitted as multipart/form-data with an optional photo
type NewsRequest struct {
	Title       string                `form:"title" binding:"required,min=3,max=200"`
	Summary     string                `form:"summary" binding:"omitempty,max=500"`
	Content     string                `form:"content" binding:"required"`
	PublishedAt string                `form:"publishedAt" binding:"omitempty,date"`
	Photo       *multipart.FileHeader `form:"photo" swaggerignore:"true"`
}

// ToModel builds a news item authored by authorID
func (r *NewsRequest) ToModel(authorID int64) (*models.News, error) {
	published, err := helpers.ParseOptionalDate(r.PublishedAt)
	if err != nil {
		return nil, fieldError("publishedAt", "publishedAt must be a date in YYYY-MM-DD format")
	}

	news := &models.News{
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		AuthorID:    &authorID,
		PublishedAt: time.Now(),
	}
	if published != nil {
		news.PublishedAt = *published
	}
	return news, nil
}

// NewsResponse adds the photo URL
type NewsResponse struct {
	models.News
	PhotoURL string `json:"photoUrl,omitempty"`
}
