package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/reports"
	"github.com/yigit/egresados/internal/middleware"
)

// ReportEngine computes the dashboard aggregates
type ReportEngine interface {
	Report(ctx context.Context, filters reports.Filters) (*reports.Report, error)
	FilteredGraduates(ctx context.Context, filters reports.Filters) ([]reports.GraduateView, error)
}

// ReportExporter renders reports as PDF documents
type ReportExporter interface {
	Export(ctx context.Context, req reports.ExportRequest) (*reports.Document, error)
}

// ExportQuery is the query string of GET /graduateReports/export
type ExportQuery struct {
	reports.Filters
	Report string `form:"report"`
	UserID int64  `form:"user_id" binding:"omitempty,min=1"`
}

// ReportController serves the graduate reports dashboard and its PDF exports
type ReportController struct {
	engine   ReportEngine
	exporter ReportExporter
	logger   zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(engine ReportEngine, exporter ReportExporter, logger zerolog.Logger) *ReportController {
	return &ReportController{engine: engine, exporter: exporter, logger: logger}
}

// Index godoc
// @Summary Graduate reports
// @Description Summary stats and every distribution for the filtered graduates. Filters match ignoring case and accents.
// @Tags graduateReports
// @Produce json
// @Security BearerAuth
// @Param institution query string false "Institution"
// @Param career query string false "Program"
// @Param city query string false "City"
// @Param department query string false "Department"
// @Param year query int false "Graduation year"
// @Success 200 {object} dto.APIResponse{data=reports.Report}
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /graduateReports [get]
func (c *ReportController) Index(ctx *gin.Context) {
	var filters reports.Filters
	if !middleware.BindQuery(ctx, &filters) {
		return
	}

	report, err := c.engine.Report(ctx.Request.Context(), filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report, ""))
}

// Graduates godoc
// @Summary Filtered graduates
// @Description The graduate list behind the dashboard, with completion and contact status
// @Tags graduateReports
// @Produce json
// @Security BearerAuth
// @Param institution query string false "Institution"
// @Param career query string false "Program"
// @Param city query string false "City"
// @Param department query string false "Department"
// @Param year query int false "Graduation year"
// @Success 200 {object} dto.APIResponse{data=[]reports.GraduateView}
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Router /graduateReports/graduates [get]
func (c *ReportController) Graduates(ctx *gin.Context) {
	var filters reports.Filters
	if !middleware.BindQuery(ctx, &filters) {
		return
	}

	graduates, err := c.engine.FilteredGraduates(ctx.Request.Context(), filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(graduates, ""))
}

// Export godoc
// @Summary Export a report as PDF
// @Description Unknown report types fall back to the complete report. profileDetail requires user_id.
// @Tags graduateReports
// @Produce application/pdf
// @Security BearerAuth
// @Param report query string false "Report type" Enums(general, gender, location, academic, graduationYear, academicLevel, profileCompletion, employmentSector, skills, topEmployers, additionalInfo, graduatesList, profileDetail, locationMap, contactStatus, complete)
// @Param user_id query int false "Graduate ID for profileDetail"
// @Param institution query string false "Institution"
// @Param career query string false "Program"
// @Param city query string false "City"
// @Param department query string false "Department"
// @Param year query int false "Graduation year"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 404 {object} dto.ErrorResponse "Graduate not found"
// @Failure 500 {object} dto.ErrorResponse "Render failed"
// @Router /graduateReports/export [get]
func (c *ReportController) Export(ctx *gin.Context) {
	var query ExportQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	doc, err := c.exporter.Export(ctx.Request.Context(), reports.ExportRequest{
		Type:    reports.ParseReportType(query.Report),
		Filters: query.Filters,
		UserID:  query.UserID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	ctx.Header("Content-Length", strconv.Itoa(len(doc.Content)))
	ctx.Data(http.StatusOK, doc.ContentType, doc.Content)
}
