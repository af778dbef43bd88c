package reports

import (
	"math"
	"strings"
	"time"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// CompleteThreshold is the completion from which a profile counts as complete.
const CompleteThreshold = 90

// higherEducation holds folded level names counted as higher education.
var higherEducation = map[string]bool{
	"especializacion":    true,
	"maestria":           true,
	"magister":           true,
	"doctorado":          true,
	"educacion superior": true,
	"posgrado":           true,
	"postgrado":          true,
}

// IsHigherEducation reports whether level names a postgraduate or higher-education level.
func IsHigherEducation(level string) bool {
	return higherEducation[helpers.FoldAccents(strings.TrimSpace(level))]
}

func hasHigherEducation(g models.Graduate) bool {
	for _, a := range g.Academic {
		if a.Kind == models.AcademicKindFormal && IsHigherEducation(a.Level) {
			return true
		}
	}
	return false
}

// mostFrequent returns the most common meaningful value, first encountered on ties.
func mostFrequent(values []string) string {
	c := newCounter()
	for _, v := range values {
		if strings.TrimSpace(v) == "" || v == models.Placeholder {
			continue
		}
		c.add(v)
	}
	best, bestCount := "", 0
	for _, k := range c.order {
		if c.counts[k] > bestCount {
			best, bestCount = k, c.counts[k]
		}
	}
	return best
}

// SummaryStats summarises views. RecentlyRegistered is counted over pool, the unfiltered
// graduate set, within recentDays before now.
func SummaryStats(views []GraduateView, pool []models.Graduate, now time.Time, recentDays int) Stats {
	stats := Stats{TotalGraduates: len(views)}

	cities := make([]string, 0, len(views))
	careers := make([]string, 0, len(views))
	completionSum := 0
	for _, v := range views {
		if v.HasEmployment {
			stats.WithEmployment++
		}
		if hasHigherEducation(v.Graduate) {
			stats.WithHigherEducation++
		}
		if v.Completion >= CompleteThreshold {
			stats.CompleteProfiles++
		}
		completionSum += v.Completion
		cities = append(cities, v.City)
		if v.primary != nil {
			careers = append(careers, v.Career)
		}
	}

	stats.TopCity = mostFrequent(cities)
	stats.TopCareer = mostFrequent(careers)
	stats.EmploymentRate = Percentage(stats.WithEmployment, stats.TotalGraduates)
	if len(views) > 0 {
		stats.AverageCompletion = math.Round(float64(completionSum)/float64(len(views))*10) / 10
	}

	since := now.AddDate(0, 0, -recentDays)
	for _, g := range pool {
		if !g.User.CreatedAt.Before(since) {
			stats.RecentlyRegistered++
		}
	}

	return stats
}
