package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/migrations"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

// Integration tests are opt-in: set TEST_DATABASE_URL to a disposable database.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("integration tests are disabled; set TEST_DATABASE_URL to enable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory(ctx, "../../../migrations"))
	return pool
}

func createGraduate(t *testing.T, repos *Repositories) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Integración",
		Email:    uuid.NewString() + "@example.com",
		Password: "hash",
		Role:     models.RoleGraduate,
		IsActive: true,
	}
	require.NoError(t, repos.UserRepository.Create(context.Background(), user))
	return user
}

func TestDeleteUserCascades(t *testing.T) {
	pool := setupTestDB(t)
	repos := NewRepositories(pool)
	ctx := context.Background()
	user := createGraduate(t, repos)

	require.NoError(t, repos.BasicInfoRepository.Upsert(ctx, &models.BasicInformation{
		UserID: user.ID, DocumentType: "CC", DocumentNumber: "12345678", FirstNames: "Ana", LastNames: "Pérez", City: "Pasto",
	}))
	grad := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.AcademicRepository.Create(ctx, &models.AcademicInformation{
		UserID: user.ID, Kind: models.AcademicKindFormal, Level: models.LevelPregrado,
		Institution: "Universidad de Nariño", Program: "Derecho", GraduationDate: &grad,
	}))
	require.NoError(t, repos.EmploymentRepository.Create(ctx, &models.EmploymentInformation{
		UserID: user.ID, CompanyName: "Acme", Position: "Abogada", IsCurrentJob: true, HardSkills: []string{"Litigio"},
	}))
	require.NoError(t, repos.LocationRepository.Upsert(ctx, &models.Location{UserID: user.ID, Latitude: 1.2, Longitude: -77.28}))

	require.NoError(t, repos.UserRepository.Delete(ctx, user.ID))

	for _, table := range []string{"basic_information", "academic_information", "employment_information", "locations"} {
		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+" WHERE user_id = $1", user.ID).Scan(&count))
		assert.Zero(t, count, table)
	}

	_, err := repos.UserRepository.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCurrentJobStoresNoEndDate(t *testing.T) {
	pool := setupTestDB(t)
	repos := NewRepositories(pool)
	ctx := context.Background()
	user := createGraduate(t, repos)
	t.Cleanup(func() { _ = repos.UserRepository.Delete(ctx, user.ID) })

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	job := &models.EmploymentInformation{UserID: user.ID, CompanyName: "Acme", Position: "Dev", IsCurrentJob: true, EndDate: &end}
	job.Normalize()
	require.NoError(t, repos.EmploymentRepository.Create(ctx, job))

	stored, err := repos.EmploymentRepository.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate)
	assert.Equal(t, []string{}, stored.SoftSkills)
}

func TestBasicInformationUpsertKeepsOneRow(t *testing.T) {
	pool := setupTestDB(t)
	repos := NewRepositories(pool)
	ctx := context.Background()
	user := createGraduate(t, repos)
	t.Cleanup(func() { _ = repos.UserRepository.Delete(ctx, user.ID) })

	info := &models.BasicInformation{UserID: user.ID, DocumentType: "CC", DocumentNumber: "1111", FirstNames: "Ana", LastNames: "P"}
	require.NoError(t, repos.BasicInfoRepository.Upsert(ctx, info))
	info.City = "Cali"
	require.NoError(t, repos.BasicInfoRepository.Upsert(ctx, info))

	stored, err := repos.BasicInfoRepository.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cali", stored.City)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM basic_information WHERE user_id = $1", user.ID).Scan(&count))
	assert.Equal(t, 1, count)
}
