package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/egresados/internal/app/models"
)

// GraduateRepository assembles graduates with their related records for reporting
type GraduateRepository struct {
	db         *pgxpool.Pool
	users      *UserRepository
	basic      *BasicInformationRepository
	academic   *AcademicInformationRepository
	employment *EmploymentInformationRepository
	locations  *LocationRepository
}

// NewGraduateRepository creates a new GraduateRepository
func NewGraduateRepository(db *pgxpool.Pool) *GraduateRepository {
	return &GraduateRepository{
		db:         db,
		users:      NewUserRepository(db),
		basic:      NewBasicInformationRepository(db),
		academic:   NewAcademicInformationRepository(db),
		employment: NewEmploymentInformationRepository(db),
		locations:  NewLocationRepository(db),
	}
}

// LoadGraduates returns every user with the graduate role joined with its records.
// Each graduate appears once, oldest registration first.
func (r *GraduateRepository) LoadGraduates(ctx context.Context) ([]models.Graduate, error) {
	users, _, err := r.users.List(ctx, UserFilter{Role: models.RoleGraduate})
	if err != nil {
		return nil, fmt.Errorf("load graduate users: %w", err)
	}

	basics, err := r.basic.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load basic information: %w", err)
	}
	academics, err := r.academic.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load academic information: %w", err)
	}
	jobs, err := r.employment.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employment information: %w", err)
	}
	locations, err := r.locations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	academicByUser := make(map[int64][]models.AcademicInformation)
	for _, a := range academics {
		academicByUser[a.UserID] = append(academicByUser[a.UserID], *a)
	}
	jobsByUser := make(map[int64][]models.EmploymentInformation)
	for _, e := range jobs {
		jobsByUser[e.UserID] = append(jobsByUser[e.UserID], *e)
	}
	locationByUser := make(map[int64]*models.Location, len(locations))
	for _, l := range locations {
		locationByUser[l.UserID] = l
	}

	graduates := make([]models.Graduate, 0, len(users))
	for i := len(users) - 1; i >= 0; i-- {
		u := users[i]
		graduates = append(graduates, models.Graduate{
			User:       *u,
			Basic:      basics[u.ID],
			Academic:   academicByUser[u.ID],
			Employment: jobsByUser[u.ID],
			Location:   locationByUser[u.ID],
		})
	}
	return graduates, nil
}

// LoadEmployment returns the whole employment table
func (r *GraduateRepository) LoadEmployment(ctx context.Context) ([]models.EmploymentInformation, error) {
	jobs, err := r.employment.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.EmploymentInformation, 0, len(jobs))
	for _, e := range jobs {
		out = append(out, *e)
	}
	return out, nil
}

// LoadLocations returns every captured location
func (r *GraduateRepository) LoadLocations(ctx context.Context) ([]*models.Location, error) {
	return r.locations.ListAll(ctx)
}

// StoredFilesByUser lists the uploaded files owned by userID across all tables
func (r *GraduateRepository) StoredFilesByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT certificate_path FROM academic_information WHERE user_id = $1 AND certificate_path IS NOT NULL
		UNION ALL
		SELECT photo_path FROM admin_profiles WHERE user_id = $1 AND photo_path IS NOT NULL`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying stored files: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
