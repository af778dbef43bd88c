package reports

import (
	"strconv"
	"strings"
	"time"

	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// placeholder substitutes missing values.
func placeholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return models.Placeholder
	}
	return s
}

// sameValue compares filter values ignoring case and accents.
func sameValue(a, b string) bool {
	return helpers.FoldAccents(a) == helpers.FoldAccents(b)
}

// primaryAcademic picks the record that represents a graduate: the most recent formal
// record by graduation date, else the first record.
func primaryAcademic(records []models.AcademicInformation) *models.AcademicInformation {
	var best *models.AcademicInformation
	for i := range records {
		r := &records[i]
		if r.Kind != models.AcademicKindFormal {
			continue
		}
		if best == nil || laterGraduation(r, best) {
			best = r
		}
	}
	if best == nil && len(records) > 0 {
		best = &records[0]
	}
	return best
}

func laterGraduation(a, b *models.AcademicInformation) bool {
	switch {
	case a.GraduationDate == nil:
		return false
	case b.GraduationDate == nil:
		return true
	default:
		return a.GraduationDate.After(*b.GraduationDate)
	}
}

func matchesAcademic(r *models.AcademicInformation, f Filters) bool {
	if f.Institution != "" && !sameValue(r.DisplayInstitution(), f.Institution) {
		return false
	}
	if f.Career != "" && !sameValue(r.DisplayProgram(), f.Career) {
		return false
	}
	if f.Year != 0 && r.GraduationYear() != f.Year {
		return false
	}
	return true
}

// matchingAcademic returns the primary record among those satisfying every academic filter.
// Institution, career and year must hold on the same record.
func matchingAcademic(records []models.AcademicInformation, f Filters) (*models.AcademicInformation, bool) {
	if !f.hasAcademic() {
		return primaryAcademic(records), true
	}
	var matched []models.AcademicInformation
	for i := range records {
		if matchesAcademic(&records[i], f) {
			matched = append(matched, records[i])
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return primaryAcademic(matched), true
}

// Matches reports whether g satisfies every filter.
func (f Filters) Matches(g models.Graduate) bool {
	_, ok := f.match(g)
	return ok
}

func (f Filters) match(g models.Graduate) (*models.AcademicInformation, bool) {
	if f.City != "" || f.Department != "" {
		if g.Basic == nil {
			return nil, false
		}
		if f.City != "" && !sameValue(g.Basic.City, f.City) {
			return nil, false
		}
		if f.Department != "" && !sameValue(g.Basic.Department, f.Department) {
			return nil, false
		}
	}
	return matchingAcademic(g.Academic, f)
}

// NewGraduateView flattens g using its primary academic record.
func NewGraduateView(g models.Graduate, now time.Time) GraduateView {
	return newView(g, primaryAcademic(g.Academic), now)
}

func newView(g models.Graduate, primary *models.AcademicInformation, now time.Time) GraduateView {
	completion := ProfileCompletion(g)
	v := GraduateView{
		UserID:         g.User.ID,
		Name:           g.User.Name,
		Email:          g.User.Email,
		RegisteredAt:   g.User.CreatedAt,
		DocumentNumber: models.Placeholder,
		Gender:         models.Placeholder,
		City:           models.Placeholder,
		Department:     models.Placeholder,
		Phone:          models.Placeholder,
		Institution:    models.Placeholder,
		Career:         models.Placeholder,
		AcademicLevel:  models.Placeholder,
		GraduationYear: models.Placeholder,
		Company:        models.Placeholder,
		Position:       models.Placeholder,
		Completion:     completion,
		ContactStatus:  ContactStatus(completion),
		HasBasic:       g.Basic != nil,
		HasAcademic:    len(g.Academic) > 0,
		HasEmployment:  len(g.Employment) > 0,
		Graduate:       g,
		primary:        primary,
	}

	if b := g.Basic; b != nil {
		if name := strings.TrimSpace(b.FullName()); name != "" {
			v.Name = name
		}
		v.DocumentNumber = b.DocumentNumber
		v.Gender = b.Gender
		v.City = b.City
		v.Department = b.Department
		v.Phone = b.Phone
		if b.BirthDate != nil {
			v.Age = helpers.AgeAt(*b.BirthDate, now)
		}
	}

	if primary != nil {
		v.Institution = primary.DisplayInstitution()
		v.Career = primary.DisplayProgram()
		v.AcademicLevel = primary.Level
		v.GraduationYear = ""
		if year := primary.GraduationYear(); year > 0 {
			v.GraduationYear = strconv.Itoa(year)
		}
	}

	if job := currentJob(g.Employment); job != nil {
		v.Employed = job.IsCurrentJob
		v.Company = job.CompanyName
		v.Position = job.Position
	}

	return v
}

// currentJob prefers a job flagged as current, else the first record.
func currentJob(jobs []models.EmploymentInformation) *models.EmploymentInformation {
	for i := range jobs {
		if jobs[i].IsCurrentJob {
			return &jobs[i]
		}
	}
	if len(jobs) > 0 {
		return &jobs[0]
	}
	return nil
}

// Filter keeps the graduates matching f and flattens them.
func Filter(pool []models.Graduate, f Filters, now time.Time) []GraduateView {
	views := make([]GraduateView, 0, len(pool))
	for _, g := range pool {
		primary, ok := f.match(g)
		if !ok {
			continue
		}
		views = append(views, newView(g, primary, now))
	}
	return views
}
