package reports

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/logger"
)

// GraduateSource loads the raw data the engine aggregates.
type GraduateSource interface {
	LoadGraduates(ctx context.Context) ([]models.Graduate, error)
	LoadEmployment(ctx context.Context) ([]models.EmploymentInformation, error)
	LoadLocations(ctx context.Context) ([]*models.Location, error)
}

// EngineConfig tunes aggregation.
type EngineConfig struct {
	RecentDays int
	TopLimit   int
}

// Engine filters graduates and computes report statistics.
type Engine struct {
	source     GraduateSource
	log        zerolog.Logger
	now        func() time.Time
	recentDays int
	topLimit   int
}

// NewEngine creates an engine over source.
func NewEngine(source GraduateSource, cfg EngineConfig) *Engine {
	if cfg.RecentDays <= 0 {
		cfg.RecentDays = 30
	}
	if cfg.TopLimit <= 0 {
		cfg.TopLimit = 10
	}
	return &Engine{
		source:     source,
		log:        logger.Component("reports"),
		now:        time.Now,
		recentDays: cfg.RecentDays,
		topLimit:   cfg.TopLimit,
	}
}

// snapshot is one consistent load of the data a report needs.
type snapshot struct {
	pool       []models.Graduate
	views      []GraduateView
	employment []models.EmploymentInformation
	now        time.Time
}

func (e *Engine) load(ctx context.Context, filters Filters, withEmployment bool) (*snapshot, error) {
	pool, err := e.source.LoadGraduates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graduates: %w", err)
	}

	s := &snapshot{pool: pool, now: e.now()}
	s.views = Filter(pool, filters, s.now)

	if withEmployment {
		s.employment, err = e.source.LoadEmployment(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load employment records: %w", err)
		}
	}
	return s, nil
}

// FilteredGraduates returns the graduates matching filters, each exactly once.
func (e *Engine) FilteredGraduates(ctx context.Context, filters Filters) ([]GraduateView, error) {
	s, err := e.load(ctx, filters, false)
	if err != nil {
		return nil, err
	}
	return s.views, nil
}

// Graduate returns the view of a single graduate.
func (e *Engine) Graduate(ctx context.Context, userID int64) (*GraduateView, error) {
	pool, err := e.source.LoadGraduates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graduates: %w", err)
	}
	for _, g := range pool {
		if g.User.ID == userID {
			v := NewGraduateView(g, e.now())
			return &v, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Locations returns every captured location.
func (e *Engine) Locations(ctx context.Context) ([]*models.Location, error) {
	locations, err := e.source.LoadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	return locations, nil
}

// Report computes stats and every distribution for filters.
func (e *Engine) Report(ctx context.Context, filters Filters) (*Report, error) {
	s, err := e.load(ctx, filters, true)
	if err != nil {
		return nil, err
	}
	return e.build(filters, s), nil
}

type generator struct {
	key string
	fn  func(*snapshot) Distribution
}

func (e *Engine) generators() []generator {
	return []generator{
		{KeyGender, func(s *snapshot) Distribution { return GenderDistribution(s.views) }},
		{KeyLocation, func(s *snapshot) Distribution { return LocationDistribution(s.views) }},
		{KeyDepartment, func(s *snapshot) Distribution { return DepartmentDistribution(s.views) }},
		{KeyAgeRange, func(s *snapshot) Distribution { return AgeRangeDistribution(s.views) }},
		{KeyAcademic, func(s *snapshot) Distribution { return AcademicDistribution(s.views) }},
		{KeyGraduationYear, func(s *snapshot) Distribution { return GraduationYearDistribution(s.views) }},
		{KeyAcademicLevel, func(s *snapshot) Distribution { return AcademicLevelDistribution(s.views) }},
		{KeyContactStatus, func(s *snapshot) Distribution { return ContactStatusDistribution(s.views) }},
		{KeyCompletion, func(s *snapshot) Distribution { return CompletionDistribution(s.views) }},
		{KeyEmploymentStatus, func(s *snapshot) Distribution { return EmploymentStatusDistribution(s.views) }},
		{KeyEmploymentSector, func(s *snapshot) Distribution { return SectorDistribution(s.employment) }},
		{KeySkills, func(s *snapshot) Distribution { return SkillsDistribution(s.employment, e.topLimit) }},
		{KeyTopEmployers, func(s *snapshot) Distribution { return TopEmployers(s.employment, e.topLimit) }},
	}
}

func (e *Engine) build(filters Filters, s *snapshot) *Report {
	gens := e.generators()
	report := &Report{
		Filters:       filters,
		Stats:         e.safeStats(s),
		Distributions: make([]Distribution, 0, len(gens)),
		GeneratedAt:   s.now,
	}
	for _, g := range gens {
		report.Distributions = append(report.Distributions, e.safeGenerate(g, s))
	}
	return report
}

// safeGenerate runs one generator, turning a panic into an empty distribution.
func (e *Engine) safeGenerate(g generator, s *snapshot) (d Distribution) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Str("distribution", g.key).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Distribution generator failed")
			d = Distribution{Key: g.key, Title: distributionTitles[g.key], Items: []Item{}}
		}
	}()
	return g.fn(s)
}

func (e *Engine) safeStats(s *snapshot) (stats Stats) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Summary statistics failed")
			stats = Stats{TotalGraduates: len(s.views)}
		}
	}()
	return SummaryStats(s.views, s.pool, s.now, e.recentDays)
}
