package reports

import (
	"time"

	"github.com/yigit/egresados/internal/app/models"
)

// Filters narrow the graduate set. Zero values impose no constraint. Text filters match
// ignoring case and accents, so "bogota" selects "Bogotá".
type Filters struct {
	Institution string `form:"institution" json:"institution,omitempty"`
	Career      string `form:"career" json:"career,omitempty"`
	City        string `form:"city" json:"city,omitempty"`
	Department  string `form:"department" json:"department,omitempty"`
	Year        int    `form:"year" json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f == Filters{}
}

func (f Filters) hasAcademic() bool {
	return f.Institution != "" || f.Career != "" || f.Year != 0
}

// Stats summarises a graduate set. RecentlyRegistered ignores the filters and counts the
// whole graduate pool.
type Stats struct {
	TotalGraduates      int     `json:"totalGraduates"`
	WithEmployment      int     `json:"withEmployment"`
	WithHigherEducation int     `json:"withHigherEducation"`
	CompleteProfiles    int     `json:"completeProfiles"`
	TopCity             string  `json:"topCity"`
	TopCareer           string  `json:"topCareer"`
	RecentlyRegistered  int     `json:"recentlyRegistered"`
	EmploymentRate      float64 `json:"employmentRate"`
	AverageCompletion   float64 `json:"averageCompletion"`
}

// Item is one bucket of a distribution.
type Item struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// Distribution is a named, sorted set of buckets.
type Distribution struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

// GraduateView is a graduate flattened for reporting, with derived metrics and placeholders filled.
type GraduateView struct {
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RegisteredAt   time.Time `json:"registeredAt"`
	DocumentNumber string    `json:"documentNumber"`
	Gender         string    `json:"gender"`
	City           string    `json:"city"`
	Department     string    `json:"department"`
	Phone          string    `json:"phone"`
	Age            int       `json:"age,omitempty"`
	Institution    string    `json:"institution"`
	Career         string    `json:"career"`
	AcademicLevel  string    `json:"academicLevel"`
	GraduationYear string    `json:"graduationYear"`
	Employed       bool      `json:"employed"`
	Company        string    `json:"company"`
	Position       string    `json:"position"`
	Completion     int       `json:"profileCompletion"`
	ContactStatus  string    `json:"contactStatus"`
	HasBasic       bool      `json:"hasBasicInformation"`
	HasAcademic    bool      `json:"hasAcademicInformation"`
	HasEmployment  bool      `json:"hasEmploymentInformation"`

	Graduate models.Graduate `json:"-"`
	primary  *models.AcademicInformation
}

// Report is the JSON payload of the reports dashboard.
type Report struct {
	Filters       Filters        `json:"filters"`
	Stats         Stats          `json:"stats"`
	Distributions []Distribution `json:"distributions"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}

// Distribution returns the distribution stored under key, if present.
func (r *Report) Distribution(key string) (Distribution, bool) {
	for _, d := range r.Distributions {
		if d.Key == key {
			return d, true
		}
	}
	return Distribution{}, false
}
