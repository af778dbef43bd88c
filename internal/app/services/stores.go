package services

import (
	"context"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/repositories"
)

// UserStore is the persistence used by the auth and user services.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter repositories.UserFilter) ([]*models.User, int, error)
	Update(ctx context.Context, user *models.User) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// StoredFileIndex lists the stored files that belong to a user.
type StoredFileIndex interface {
	StoredFilesByUser(ctx context.Context, userID int64) ([]string, error)
}

// BasicInformationStore persists basic information.
type BasicInformationStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BasicInformation, error)
	Upsert(ctx context.Context, b *models.BasicInformation) error
}

// AcademicStore persists academic records.
type AcademicStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.AcademicInformation, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicInformation, error)
	Create(ctx context.Context, a *models.AcademicInformation) error
	Update(ctx context.Context, a *models.AcademicInformation) error
	DeleteMany(ctx context.Context, userID int64, ids []int64) ([]string, error)
}

// EmploymentStore persists employment records.
type EmploymentStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.EmploymentInformation, error)
	GetByID(ctx context.Context, id int64) (*models.EmploymentInformation, error)
	Create(ctx context.Context, e *models.EmploymentInformation) error
	Update(ctx context.Context, e *models.EmploymentInformation) error
	DeleteMany(ctx context.Context, userID int64, ids []int64) (int, error)
}

// ProfileStore persists staff profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.AdminProfile, error)
	Upsert(ctx context.Context, p *models.AdminProfile) error
}

// NewsStore persists news items.
type NewsStore interface {
	List(ctx context.Context, offset, limit uint64) ([]*models.News, int, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, n *models.News) error
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id int64) error
}

// LocationStore persists geolocations.
type LocationStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Location, error)
	Upsert(ctx context.Context, l *models.Location) error
	ListAll(ctx context.Context) ([]*models.Location, error)
}
