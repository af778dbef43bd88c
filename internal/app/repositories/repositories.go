package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	BasicInfoRepository  *BasicInformationRepository
	AcademicRepository   *AcademicInformationRepository
	EmploymentRepository *EmploymentInformationRepository
	NewsRepository       *NewsRepository
	LocationRepository   *LocationRepository
	ProfileRepository    *AdminProfileRepository
	GraduateRepository   *GraduateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		BasicInfoRepository:  NewBasicInformationRepository(db),
		AcademicRepository:   NewAcademicInformationRepository(db),
		EmploymentRepository: NewEmploymentInformationRepository(db),
		NewsRepository:       NewNewsRepository(db),
		LocationRepository:   NewLocationRepository(db),
		ProfileRepository:    NewAdminProfileRepository(db),
		GraduateRepository:   NewGraduateRepository(db),
	}
}

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// coalesce selects a nullable text column as an empty string
func coalesce(column string) string {
	return "COALESCE(" + column + ", '')"
}
