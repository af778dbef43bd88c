package reports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/pdf"
)

type fakeConverter struct {
	html string
	opts pdf.Options
	err  error
}

func (f *fakeConverter) Convert(_ context.Context, html string, opts pdf.Options) ([]byte, error) {
	f.html = html
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7"), nil
}

func newTestRenderer(t *testing.T, src *fakeSource, conv pdf.Converter) *Renderer {
	t.Helper()
	r, err := NewRenderer(newTestEngine(src), conv, "Universidad de Nariño")
	require.NoError(t, err)
	return r
}

func TestParseReportType(t *testing.T) {
	assert.Equal(t, TypeGender, ParseReportType("gender"))
	assert.Equal(t, TypeComplete, ParseReportType(""))
	assert.Equal(t, TypeComplete, ParseReportType("unknown"))
}

func TestOrientationAndFilename(t *testing.T) {
	assert.Equal(t, pdf.Landscape, TypeGraduatesList.Orientation())
	assert.Equal(t, pdf.Landscape, TypeLocationMap.Orientation())
	assert.Equal(t, pdf.Portrait, TypeComplete.Orientation())
	assert.Equal(t, "reporte-egresados-skills.pdf", TypeSkills.Filename())
}

func TestBuildBagSelectsSections(t *testing.T) {
	report, err := newTestEngine(&fakeSource{graduates: samplePool()}).Report(context.Background(), Filters{})
	require.NoError(t, err)

	bag := BuildBag(TypeGender, report)
	require.Len(t, bag.Distributions, 1)
	assert.Equal(t, KeyGender, bag.Distributions[0].Key)
	assert.Nil(t, bag.Stats)
	assert.Empty(t, bag.Conclusions)

	complete := BuildBag(ReportType("bogus"), report)
	assert.Equal(t, TypeComplete, complete.Type)
	assert.Len(t, complete.Distributions, len(allKeys))
	require.NotNil(t, complete.Stats)
	assert.Contains(t, complete.Conclusions, "Se analizaron 3 egresados")
}

func TestConclusionsEmpty(t *testing.T) {
	assert.Contains(t, Conclusions(Stats{}, Filters{}), "No se encontraron egresados")
}

func TestExportComplete(t *testing.T) {
	conv := &fakeConverter{}
	r := newTestRenderer(t, &fakeSource{graduates: samplePool()}, conv)

	doc, err := r.Export(context.Background(), ExportRequest{Type: TypeComplete})
	require.NoError(t, err)
	assert.Equal(t, "reporte-egresados-complete.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), doc.Content)

	assert.Equal(t, pdf.Portrait, conv.opts.Orientation)
	assert.Contains(t, conv.html, "Reporte completo de egresados")
	assert.Contains(t, conv.html, "Universidad de Nariño")
	assert.Contains(t, conv.html, "Conclusiones")
	assert.Contains(t, conv.html, "Estado de contacto")
}

func TestExportGraduatesListIsLandscape(t *testing.T) {
	conv := &fakeConverter{}
	r := newTestRenderer(t, &fakeSource{graduates: samplePool()}, conv)

	doc, err := r.Export(context.Background(), ExportRequest{Type: TypeGraduatesList, Filters: Filters{City: "Pasto"}})
	require.NoError(t, err)
	assert.Equal(t, "reporte-egresados-graduatesList.pdf", doc.Filename)
	assert.Equal(t, pdf.Landscape, conv.opts.Orientation)
	assert.Contains(t, conv.html, "ana@example.com")
	assert.NotContains(t, conv.html, "carla@example.com")
}

func TestExportProfileDetailRequiresUser(t *testing.T) {
	r := newTestRenderer(t, &fakeSource{graduates: samplePool()}, &fakeConverter{})

	_, err := r.Export(context.Background(), ExportRequest{Type: TypeProfileDetail})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	conv := &fakeConverter{}
	r = newTestRenderer(t, &fakeSource{graduates: samplePool()}, conv)
	_, err = r.Export(context.Background(), ExportRequest{Type: TypeProfileDetail, UserID: 1})
	require.NoError(t, err)
	assert.Contains(t, conv.html, "Acme")
	assert.Contains(t, conv.html, "Derecho Público")
}

func TestExportLocationMap(t *testing.T) {
	conv := &fakeConverter{}
	src := &fakeSource{locations: []*models.Location{{UserID: 1, UserName: "Ana", Latitude: 1.2136, Longitude: -77.2811, City: "Pasto"}}}
	r := newTestRenderer(t, src, conv)

	_, err := r.Export(context.Background(), ExportRequest{Type: TypeLocationMap})
	require.NoError(t, err)
	assert.Equal(t, pdf.Landscape, conv.opts.Orientation)
	assert.Contains(t, conv.html, "-77.281100")
}

func TestExportConverterFailure(t *testing.T) {
	r := newTestRenderer(t, &fakeSource{graduates: samplePool()}, &fakeConverter{err: errors.New("chromium missing")})
	_, err := r.Export(context.Background(), ExportRequest{Type: TypeGender})
	assert.ErrorIs(t, err, apperrors.ErrRenderFailed)
}

func TestExportGraduationYearSinglePlaceholderRow(t *testing.T) {
	conv := &fakeConverter{}
	r := newTestRenderer(t, &fakeSource{graduates: unknownYearAndDepartmentPool()}, conv)

	_, err := r.Export(context.Background(), ExportRequest{Type: TypeGraduationYear})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(conv.html, models.Placeholder+"</td>"))
}
