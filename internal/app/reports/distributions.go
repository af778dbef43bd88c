package reports

import (
	"math"
	"sort"
	"strings"

	"github.com/yigit/egresados/internal/app/models"
)

// Distribution keys
const (
	KeyGender           = "gender"
	KeyLocation         = "location"
	KeyAcademic         = "academic"
	KeyGraduationYear   = "graduationYear"
	KeyAcademicLevel    = "academicLevel"
	KeyContactStatus    = "contactStatus"
	KeyCompletion       = "profileCompletion"
	KeyEmploymentSector = "employmentSector"
	KeySkills           = "skills"
	KeyTopEmployers     = "topEmployers"
	KeyDepartment       = "department"
	KeyAgeRange         = "ageRange"
	KeyEmploymentStatus = "employmentStatus"
)

var distributionTitles = map[string]string{
	KeyGender:           "Distribución por género",
	KeyLocation:         "Distribución por ciudad",
	KeyAcademic:         "Institución y programa",
	KeyGraduationYear:   "Año de graduación",
	KeyAcademicLevel:    "Nivel académico",
	KeyContactStatus:    "Estado de contacto",
	KeyCompletion:       "Completitud del perfil",
	KeyEmploymentSector: "Sector laboral",
	KeySkills:           "Habilidades más frecuentes",
	KeyTopEmployers:     "Principales empleadores",
	KeyDepartment:       "Distribución por departamento",
	KeyAgeRange:         "Rango de edad",
	KeyEmploymentStatus: "Situación laboral",
}

// Employment statuses
const (
	EmploymentCurrent = "Empleado actualmente"
	EmploymentPast    = "Con experiencia previa"
	EmploymentNone    = "Sin información laboral"
)

// AgeRanges lists the age buckets in display order.
var AgeRanges = []string{"Menor de 25", "25-29", "30-34", "35-39", "40 o más", models.Placeholder}

// Percentage is round(count/total*100, 1), or 0 when total is 0.
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// counter groups keys preserving first-encountered order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter(seed ...string) *counter {
	c := &counter{counts: make(map[string]int)}
	for _, s := range seed {
		if _, ok := c.counts[s]; !ok {
			c.order = append(c.order, s)
			c.counts[s] = 0
		}
	}
	return c
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// distribution sorts by count descending, ties kept in first-encountered order, drops empty
// buckets, truncates to limit (0 keeps all) and colors by position. Percentages use the
// untruncated total.
func (c *counter) distribution(key string, limit int) Distribution {
	items := make([]Item, 0, len(c.order))
	total := 0
	for _, label := range c.order {
		n := c.counts[label]
		if n == 0 {
			continue
		}
		total += n
		items = append(items, Item{Label: label, Count: n})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].Percentage = Percentage(items[i].Count, total)
		items[i].Color = ColorAt(i)
	}

	return Distribution{Key: key, Title: distributionTitles[key], Total: total, Items: items}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" || s == models.Placeholder {
		return models.Placeholder
	}
	return s
}

// GenderDistribution counts graduates by gender. Missing genders roll into the placeholder bucket.
func GenderDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		c.add(orPlaceholder(v.Gender))
	}
	return c.distribution(KeyGender, 0)
}

// LocationDistribution counts graduates by city. Missing cities roll into the placeholder bucket.
func LocationDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		c.add(orPlaceholder(v.City))
	}
	return c.distribution(KeyLocation, 0)
}

// AcademicDistribution counts graduates by institution and program of their primary record.
func AcademicDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		if v.primary == nil {
			continue
		}
		c.add(v.Institution + " - " + v.Career)
	}
	return c.distribution(KeyAcademic, 0)
}

// GraduationYearDistribution counts graduates by graduation year. Undated records share
// the placeholder bucket with graduates lacking a record.
func GraduationYearDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		c.add(orPlaceholder(v.GraduationYear))
	}
	return c.distribution(KeyGraduationYear, 0)
}

// AcademicLevelDistribution counts formal primary records by level.
func AcademicLevelDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		if v.primary == nil || v.primary.Kind != models.AcademicKindFormal {
			continue
		}
		c.add(v.primary.Level)
	}
	return c.distribution(KeyAcademicLevel, 0)
}

// ContactStatusDistribution counts graduates by contact status.
func ContactStatusDistribution(views []GraduateView) Distribution {
	c := newCounter(ContactStatuses...)
	for _, v := range views {
		c.add(v.ContactStatus)
	}
	return c.distribution(KeyContactStatus, 0)
}

// CompletionDistribution counts graduates by completion range.
func CompletionDistribution(views []GraduateView) Distribution {
	c := newCounter(CompletionBuckets...)
	for _, v := range views {
		c.add(CompletionBucket(v.Completion))
	}
	return c.distribution(KeyCompletion, 0)
}

// SectorDistribution counts employment records by sector.
func SectorDistribution(jobs []models.EmploymentInformation) Distribution {
	c := newCounter()
	for _, j := range jobs {
		c.add(j.Sector)
	}
	return c.distribution(KeyEmploymentSector, 0)
}

// SkillsDistribution counts soft and hard skill mentions across employment records.
func SkillsDistribution(jobs []models.EmploymentInformation, limit int) Distribution {
	c := newCounter()
	for _, j := range jobs {
		for _, s := range j.SoftSkills {
			c.add(s)
		}
		for _, s := range j.HardSkills {
			c.add(s)
		}
	}
	return c.distribution(KeySkills, limit)
}

// TopEmployers counts employment records by company.
func TopEmployers(jobs []models.EmploymentInformation, limit int) Distribution {
	c := newCounter()
	for _, j := range jobs {
		c.add(j.CompanyName)
	}
	return c.distribution(KeyTopEmployers, limit)
}

// DepartmentDistribution counts graduates by department. Missing departments roll into the
// placeholder bucket.
func DepartmentDistribution(views []GraduateView) Distribution {
	c := newCounter()
	for _, v := range views {
		c.add(orPlaceholder(v.Department))
	}
	return c.distribution(KeyDepartment, 0)
}

// AgeRange maps an age to its bucket label. Zero means unknown.
func AgeRange(age int) string {
	switch {
	case age <= 0:
		return models.Placeholder
	case age < 25:
		return AgeRanges[0]
	case age < 30:
		return AgeRanges[1]
	case age < 35:
		return AgeRanges[2]
	case age < 40:
		return AgeRanges[3]
	default:
		return AgeRanges[4]
	}
}

// AgeRangeDistribution counts graduates by age range.
func AgeRangeDistribution(views []GraduateView) Distribution {
	c := newCounter(AgeRanges...)
	for _, v := range views {
		c.add(AgeRange(v.Age))
	}
	return c.distribution(KeyAgeRange, 0)
}

// EmploymentStatusDistribution splits graduates by whether they hold a current job.
func EmploymentStatusDistribution(views []GraduateView) Distribution {
	c := newCounter(EmploymentCurrent, EmploymentPast, EmploymentNone)
	for _, v := range views {
		switch {
		case v.Employed:
			c.add(EmploymentCurrent)
		case v.HasEmployment:
			c.add(EmploymentPast)
		default:
			c.add(EmploymentNone)
		}
	}
	return c.distribution(KeyEmploymentStatus, 0)
}
