package reports

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/helpers"
	"github.com/yigit/egresados/internal/pkg/logger"
	"github.com/yigit/egresados/internal/pkg/pdf"
)

//go:embed templates/*.html
var templateFS embed.FS

// ReportType selects what an export contains.
type ReportType string

// Report types
const (
	TypeGeneral           ReportType = "general"
	TypeGender            ReportType = "gender"
	TypeLocation          ReportType = "location"
	TypeAcademic          ReportType = "academic"
	TypeGraduationYear    ReportType = "graduationYear"
	TypeAcademicLevel     ReportType = "academicLevel"
	TypeProfileCompletion ReportType = "profileCompletion"
	TypeEmploymentSector  ReportType = "employmentSector"
	TypeSkills            ReportType = "skills"
	TypeTopEmployers      ReportType = "topEmployers"
	TypeAdditionalInfo    ReportType = "additionalInfo"
	TypeGraduatesList     ReportType = "graduatesList"
	TypeProfileDetail     ReportType = "profileDetail"
	TypeLocationMap       ReportType = "locationMap"
	TypeContactStatus     ReportType = "contactStatus"
	TypeComplete          ReportType = "complete"
)

type layout struct {
	title       string
	keys        []string
	stats       bool
	conclusions bool
}

var allKeys = []string{
	KeyGender, KeyLocation, KeyDepartment, KeyAgeRange, KeyAcademic, KeyGraduationYear,
	KeyAcademicLevel, KeyContactStatus, KeyCompletion, KeyEmploymentStatus,
	KeyEmploymentSector, KeySkills, KeyTopEmployers,
}

var layouts = map[ReportType]layout{
	TypeGeneral:           {title: "Reporte general de egresados", keys: []string{KeyGender, KeyLocation, KeyGraduationYear, KeyContactStatus}, stats: true},
	TypeGender:            {title: "Egresados por género", keys: []string{KeyGender}},
	TypeLocation:          {title: "Egresados por ubicación", keys: []string{KeyLocation, KeyDepartment}},
	TypeAcademic:          {title: "Egresados por institución y programa", keys: []string{KeyAcademic}},
	TypeGraduationYear:    {title: "Egresados por año de graduación", keys: []string{KeyGraduationYear}},
	TypeAcademicLevel:     {title: "Egresados por nivel académico", keys: []string{KeyAcademicLevel}},
	TypeProfileCompletion: {title: "Completitud de perfiles", keys: []string{KeyCompletion}},
	TypeEmploymentSector:  {title: "Egresados por sector laboral", keys: []string{KeyEmploymentSector}},
	TypeSkills:            {title: "Habilidades de los egresados", keys: []string{KeySkills}},
	TypeTopEmployers:      {title: "Principales empleadores", keys: []string{KeyTopEmployers}},
	TypeAdditionalInfo:    {title: "Información adicional", keys: []string{KeyDepartment, KeyAgeRange, KeyEmploymentStatus}},
	TypeGraduatesList:     {title: "Listado de egresados"},
	TypeProfileDetail:     {title: "Detalle del egresado"},
	TypeLocationMap:       {title: "Ubicaciones registradas"},
	TypeContactStatus:     {title: "Estado de contacto", keys: []string{KeyContactStatus}},
	TypeComplete:          {title: "Reporte completo de egresados", keys: allKeys, stats: true, conclusions: true},
}

// ParseReportType maps s to a known type, falling back to complete.
func ParseReportType(s string) ReportType {
	t := ReportType(strings.TrimSpace(s))
	if _, ok := layouts[t]; ok {
		return t
	}
	return TypeComplete
}

// Orientation returns the page orientation used for t.
func (t ReportType) Orientation() pdf.Orientation {
	switch t {
	case TypeGraduatesList, TypeLocationMap:
		return pdf.Landscape
	default:
		return pdf.Portrait
	}
}

// Filename returns the download name for t.
func (t ReportType) Filename() string {
	return fmt.Sprintf("reporte-egresados-%s.pdf", t)
}

// Bag is the data handed to the report template.
type Bag struct {
	Type          ReportType
	Title         string
	Institution   string
	GeneratedAt   time.Time
	Filters       Filters
	Landscape     bool
	Stats         *Stats
	Distributions []Distribution
	Graduates     []GraduateView
	Graduate      *GraduateView
	Locations     []*models.Location
	Conclusions   string
}

// BuildBag selects from report the sections t needs.
func BuildBag(t ReportType, report *Report) *Bag {
	l, ok := layouts[t]
	if !ok {
		t, l = TypeComplete, layouts[TypeComplete]
	}

	bag := &Bag{
		Type:      t,
		Title:     l.title,
		Landscape: t.Orientation() == pdf.Landscape,
	}
	if report == nil {
		return bag
	}

	bag.Filters = report.Filters
	bag.GeneratedAt = report.GeneratedAt
	if l.stats {
		stats := report.Stats
		bag.Stats = &stats
	}
	for _, key := range l.keys {
		if d, ok := report.Distribution(key); ok {
			bag.Distributions = append(bag.Distributions, d)
		}
	}
	if l.conclusions {
		bag.Conclusions = Conclusions(report.Stats, report.Filters)
	}
	return bag
}

// Conclusions writes a short summary paragraph of stats.
func Conclusions(stats Stats, filters Filters) string {
	if stats.TotalGraduates == 0 {
		return "No se encontraron egresados que cumplan con los criterios seleccionados."
	}

	var b strings.Builder
	scope := "registrados"
	if !filters.IsEmpty() {
		scope = "que cumplen con los filtros aplicados"
	}
	fmt.Fprintf(&b, "Se analizaron %d egresados %s. ", stats.TotalGraduates, scope)
	fmt.Fprintf(&b, "El %.1f%% reporta información laboral y %d cuentan con formación de posgrado o educación superior. ",
		stats.EmploymentRate, stats.WithHigherEducation)
	if stats.TopCity != "" {
		fmt.Fprintf(&b, "La ciudad con mayor presencia es %s", stats.TopCity)
		if stats.TopCareer != "" {
			fmt.Fprintf(&b, " y el programa más frecuente es %s", stats.TopCareer)
		}
		b.WriteString(". ")
	} else if stats.TopCareer != "" {
		fmt.Fprintf(&b, "El programa más frecuente es %s. ", stats.TopCareer)
	}
	fmt.Fprintf(&b, "La completitud promedio de los perfiles es %.1f%% y %d perfiles están completos. ",
		stats.AverageCompletion, stats.CompleteProfiles)
	fmt.Fprintf(&b, "En el periodo reciente se registraron %d egresados nuevos en la plataforma.", stats.RecentlyRegistered)
	return b.String()
}

// ExportRequest describes one PDF export.
type ExportRequest struct {
	Type    ReportType
	Filters Filters
	UserID  int64
}

// Document is a rendered export.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Renderer turns reports into HTML and PDF documents.
type Renderer struct {
	engine      *Engine
	converter   pdf.Converter
	tmpl        *template.Template
	institution string
	log         zerolog.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(engine *Engine, converter pdf.Converter, institution string) (*Renderer, error) {
	tmpl, err := template.New("report.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}
	return &Renderer{
		engine:      engine,
		converter:   converter,
		tmpl:        tmpl,
		institution: institution,
		log:         logger.Component("report-renderer"),
	}, nil
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return models.Placeholder
		}
		return t.Format("02/01/2006")
	},
	"optdate": func(t *time.Time) string {
		if s := helpers.FormatOptionalDate(t); s != "" {
			return s
		}
		return models.Placeholder
	},
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"orph": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return models.Placeholder
		}
		return s
	},
	"join": strings.Join,
	"yesno": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
}

// Bag loads what t needs and builds its template data.
func (r *Renderer) Bag(ctx context.Context, req ExportRequest) (*Bag, error) {
	t := ParseReportType(string(req.Type))

	switch t {
	case TypeProfileDetail:
		if req.UserID <= 0 {
			return nil, apperrors.NewValidationError("user_id is required for the profileDetail report",
				map[string]string{"user_id": "user_id is required"})
		}
		g, err := r.engine.Graduate(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		bag := BuildBag(t, nil)
		bag.Graduate = g
		bag.GeneratedAt = r.engine.now()
		return r.finish(bag), nil

	case TypeGraduatesList:
		views, err := r.engine.FilteredGraduates(ctx, req.Filters)
		if err != nil {
			return nil, err
		}
		bag := BuildBag(t, nil)
		bag.Filters = req.Filters
		bag.Graduates = views
		bag.GeneratedAt = r.engine.now()
		return r.finish(bag), nil

	case TypeLocationMap:
		locations, err := r.engine.Locations(ctx)
		if err != nil {
			return nil, err
		}
		bag := BuildBag(t, nil)
		bag.Locations = locations
		bag.GeneratedAt = r.engine.now()
		return r.finish(bag), nil
	}

	report, err := r.engine.Report(ctx, req.Filters)
	if err != nil {
		return nil, err
	}
	return r.finish(BuildBag(t, report)), nil
}

func (r *Renderer) finish(bag *Bag) *Bag {
	bag.Institution = r.institution
	return bag
}

// RenderHTML executes the report template for bag.
func (r *Renderer) RenderHTML(bag *Bag) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "report.html", bag); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}
	return buf.String(), nil
}

// Export renders req as a PDF document.
func (r *Renderer) Export(ctx context.Context, req ExportRequest) (*Document, error) {
	bag, err := r.Bag(ctx, req)
	if err != nil {
		return nil, err
	}

	html, err := r.RenderHTML(bag)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	content, err := r.converter.Convert(ctx, html, pdf.Options{Orientation: bag.Type.Orientation(), Format: "A4"})
	if err != nil {
		r.log.Error().Err(err).Str("report", string(bag.Type)).Msg("PDF conversion failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}

	r.log.Info().
		Str("report", string(bag.Type)).
		Int("bytes", len(content)).
		Dur("elapsed", time.Since(started)).
		Msg("Report exported")

	return &Document{
		Filename:    bag.Type.Filename(),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
