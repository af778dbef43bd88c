package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/reports"
	"github.com/yigit/egresados/internal/middleware"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterWithGin(); err != nil {
		panic(err)
	}
}

// asUser stands in for JWTAuth
func asUser(id int64, role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func perform(r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

type fakeEngine struct {
	filters   reports.Filters
	report    *reports.Report
	graduates []reports.GraduateView
	err       error
}

func (f *fakeEngine) Report(_ context.Context, filters reports.Filters) (*reports.Report, error) {
	f.filters = filters
	return f.report, f.err
}

func (f *fakeEngine) FilteredGraduates(_ context.Context, filters reports.Filters) ([]reports.GraduateView, error) {
	f.filters = filters
	return f.graduates, f.err
}

type fakeExporter struct {
	req reports.ExportRequest
	doc *reports.Document
	err error
}

func (f *fakeExporter) Export(_ context.Context, req reports.ExportRequest) (*reports.Document, error) {
	f.req = req
	return f.doc, f.err
}

func reportRouter(engine *fakeEngine, exporter *fakeExporter) *gin.Engine {
	ctrl := NewReportController(engine, exporter, zerolog.Nop())
	r := gin.New()
	r.GET("/graduateReports", ctrl.Index)
	r.GET("/graduateReports/graduates", ctrl.Graduates)
	r.GET("/graduateReports/export", ctrl.Export)
	return r
}

func TestReportIndexBindsFilters(t *testing.T) {
	engine := &fakeEngine{report: &reports.Report{Stats: reports.Stats{TotalGraduates: 3}}}
	r := reportRouter(engine, &fakeExporter{})

	w := perform(r, http.MethodGet, "/graduateReports?institution=Universidad%20de%20Nari%C3%B1o&city=pasto&year=2023", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reports.Filters{Institution: "Universidad de Nariño", City: "pasto", Year: 2023}, engine.filters)

	var resp struct {
		Success bool           `json:"success"`
		Data    reports.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Stats.TotalGraduates)
}

func TestReportIndexRejectsBadYear(t *testing.T) {
	engine := &fakeEngine{report: &reports.Report{}}
	r := reportRouter(engine, &fakeExporter{})

	w := perform(r, http.MethodGet, "/graduateReports?year=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/graduateReports?year=1200", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportGraduates(t *testing.T) {
	engine := &fakeEngine{graduates: []reports.GraduateView{{UserID: 1, Name: "Ana"}}}
	r := reportRouter(engine, &fakeExporter{})

	w := perform(r, http.MethodGet, "/graduateReports/graduates?career=derecho", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "derecho", engine.filters.Career)
	assert.Contains(t, w.Body.String(), `"Ana"`)
}

func TestReportExportSendsAttachment(t *testing.T) {
	exporter := &fakeExporter{doc: &reports.Document{
		Filename:    "reporte-egresados-general.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4"),
	}}
	r := reportRouter(&fakeEngine{}, exporter)

	w := perform(r, http.MethodGet, "/graduateReports/export?report=general&department=Nari%C3%B1o", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte-egresados-general.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4", w.Body.String())
	assert.Equal(t, reports.TypeGeneral, exporter.req.Type)
	assert.Equal(t, "Nariño", exporter.req.Filters.Department)
}

func TestReportExportUnknownTypeFallsBack(t *testing.T) {
	exporter := &fakeExporter{doc: &reports.Document{Filename: "x.pdf", ContentType: "application/pdf"}}
	r := reportRouter(&fakeEngine{}, exporter)

	w := perform(r, http.MethodGet, "/graduateReports/export?report=nope&user_id=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reports.TypeComplete, exporter.req.Type)
	assert.Equal(t, int64(7), exporter.req.UserID)
}

func TestReportExportErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"missing user", apperrors.NewValidationError("Validation failed", map[string]string{"user_id": "user_id is required"}), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown graduate", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"render", apperrors.ErrRenderFailed, http.StatusInternalServerError, dto.ErrorCodeRenderFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reportRouter(&fakeEngine{}, &fakeExporter{err: tt.err})
			w := perform(r, http.MethodGet, "/graduateReports/export?report=profileDetail", nil)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

type fakeNewsService struct {
	items    map[int64]*dto.NewsResponse
	authorID int64
	page     int
	size     int
}

func (f *fakeNewsService) ListNews(_ context.Context, page, size int) (*dto.PaginatedResponse, error) {
	f.page, f.size = page, size
	items := make([]*dto.NewsResponse, 0, len(f.items))
	for _, n := range f.items {
		items = append(items, n)
	}
	return &dto.PaginatedResponse{Items: items}, nil
}

func (f *fakeNewsService) GetNews(_ context.Context, id int64) (*dto.NewsResponse, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrNewsNotFound
	}
	return n, nil
}

func (f *fakeNewsService) CreateNews(_ context.Context, authorID int64, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	f.authorID = authorID
	n := &dto.NewsResponse{News: models.News{ID: int64(len(f.items) + 1), Title: req.Title, Content: req.Content, AuthorID: &authorID}}
	f.items[n.ID] = n
	return n, nil
}

func (f *fakeNewsService) UpdateNews(_ context.Context, id int64, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrNewsNotFound
	}
	n.Title = req.Title
	return n, nil
}

func (f *fakeNewsService) DeleteNews(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrNewsNotFound
	}
	delete(f.items, id)
	return nil
}

func newsRouter(svc *fakeNewsService) *gin.Engine {
	ctrl := NewNewsController(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/news", ctrl.ListNews)
	r.GET("/news/:id", ctrl.GetNews)
	staff := r.Group("", asUser(5, models.RoleCoordinator))
	staff.POST("/news", ctrl.CreateNews)
	staff.PUT("/news/:id", ctrl.UpdateNews)
	staff.DELETE("/news/:id", ctrl.DeleteNews)
	return r
}

func TestNewsGet(t *testing.T) {
	svc := &fakeNewsService{items: map[int64]*dto.NewsResponse{1: {News: models.News{ID: 1, Title: "Feria laboral"}}}}
	r := newsRouter(svc)

	w := perform(r, http.MethodGet, "/news/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Feria laboral")

	w = perform(r, http.MethodGet, "/news/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodGet, "/news/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, errorCode(t, w))
}

func TestNewsListPassesPagination(t *testing.T) {
	svc := &fakeNewsService{items: map[int64]*dto.NewsResponse{}}
	r := newsRouter(svc)

	w := perform(r, http.MethodGet, "/news?page=2&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.page)
	assert.Equal(t, 5, svc.size)
}

func TestNewsCreateUsesCaller(t *testing.T) {
	svc := &fakeNewsService{items: map[int64]*dto.NewsResponse{}}
	r := newsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewBufferString("title=Convocatoria&content=Abierta"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(5), svc.authorID)
	assert.Len(t, svc.items, 1)
}

func TestNewsCreateValidation(t *testing.T) {
	svc := &fakeNewsService{items: map[int64]*dto.NewsResponse{}}
	r := newsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewBufferString("title=ab"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
	assert.Empty(t, svc.items)
}

func TestNewsDelete(t *testing.T) {
	svc := &fakeNewsService{items: map[int64]*dto.NewsResponse{3: {News: models.News{ID: 3}}}}
	r := newsRouter(svc)

	w := perform(r, http.MethodDelete, "/news/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.items)

	w = perform(r, http.MethodDelete, "/news/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCurrentUserRequired(t *testing.T) {
	ctrl := NewLocationController(nil, zerolog.Nop())
	r := gin.New()
	r.POST("/location", ctrl.Store)

	w := perform(r, http.MethodPost, "/location", []byte(`{"latitude":1.2,"longitude":-77.2}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

func TestLocationValidation(t *testing.T) {
	ctrl := NewLocationController(nil, zerolog.Nop())
	r := gin.New()
	r.POST("/location", asUser(1, models.RoleGraduate), ctrl.Store)

	w := perform(r, http.MethodPost, "/location", []byte(`{"latitude":120,"longitude":-77.2}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	ctrl := NewEmploymentInformationController(nil, zerolog.Nop())
	r := gin.New()
	r.DELETE("/employmentInformation", asUser(1, models.RoleGraduate), ctrl.DestroyMultiple)

	w := perform(r, http.MethodDelete, "/employmentInformation", []byte(`{"ids":[]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodDelete, "/employmentInformation", []byte(`{"ids":[0]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	r := gin.New()
	r.GET("/catalog", Catalog)

	w := perform(r, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "academicLevels")
	assert.Contains(t, w.Body.String(), "Universidad de Nariño")
}
