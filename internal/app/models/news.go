package models

import "time"

// News is an announcement published by staff.
type News struct {
	ID                int64     `json:"id" db:"id"`
	Title             string    `json:"title" db:"title"`
	Summary           string    `json:"summary" db:"summary"`
	Content           string    `json:"content" db:"content"`
	PhotoPath         string    `json:"-" db:"photo_path"`
	PhotoOriginalName string    `json:"photoOriginalName,omitempty" db:"photo_original_name"`
	AuthorID          *int64    `json:"authorId,omitempty" db:"author_id"`
	AuthorName        string    `json:"authorName,omitempty" db:"-"`
	PublishedAt       time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}
