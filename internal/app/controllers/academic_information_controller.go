package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
)

// AcademicInformationController manages the academic records of the caller
type AcademicInformationController struct {
	service *services.AcademicInformationService
	logger  zerolog.Logger
}

// NewAcademicInformationController creates a new AcademicInformationController
func NewAcademicInformationController(service *services.AcademicInformationService, logger zerolog.Logger) *AcademicInformationController {
	return &AcademicInformationController{service: service, logger: logger}
}

// Index godoc
// @Summary List my academic records
// @Tags academicInformation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AcademicInformationResponse}
// @Router /academicInformation [get]
func (c *AcademicInformationController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	records, err := c.service.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// Store godoc
// @Summary Add an academic record
// @Tags academicInformation
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param kind formData string true "formal or course"
// @Param level formData string false "Academic level, required for formal records"
// @Param degreeObtained formData string false "Degree obtained"
// @Param institution formData string false "Catalog institution"
// @Param customInstitution formData string false "Institution not in the catalog"
// @Param program formData string false "Catalog program"
// @Param customProgram formData string false "Program not in the catalog"
// @Param startDate formData string false "YYYY-MM-DD"
// @Param graduationDate formData string false "YYYY-MM-DD"
// @Param certificate formData file false "PDF certificate"
// @Success 201 {object} dto.APIResponse{data=dto.AcademicInformationResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /academicInformation [post]
func (c *AcademicInformationController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.AcademicInformationRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	record, err := c.service.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record, "Academic record created"))
}

// Update godoc
// @Summary Update an academic record
// @Description Replaces the record. A new certificate replaces the stored one.
// @Tags academicInformation
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param kind formData string true "formal or course"
// @Param certificate formData file false "PDF certificate"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicInformationResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /academicInformation/{id} [put]
func (c *AcademicInformationController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AcademicInformationRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	record, err := c.service.Update(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Academic record updated"))
}

// Destroy godoc
// @Summary Delete an academic record
// @Tags academicInformation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /academicInformation/{id} [delete]
func (c *AcademicInformationController) Destroy(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Academic record deleted"))
}

// DestroyMultiple godoc
// @Summary Delete several academic records
// @Description Deletes every listed record. Nothing is deleted when one of them is not owned by the caller.
// @Tags academicInformation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "Record IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkDeleteResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /academicInformation [delete]
func (c *AcademicInformationController) DestroyMultiple(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.BulkDeleteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	deleted, err := c.service.DeleteMany(ctx.Request.Context(), userID, req.IDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BulkDeleteResponse{Deleted: deleted}, "Academic records deleted"))
}

// Certificate godoc
// @Summary Download a certificate
// @Description Owners and staff may download the certificate of a record
// @Tags academicInformation
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {file} file
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /academicInformation/{id}/certificate [get]
func (c *AcademicInformationController) Certificate(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.service.Certificate(ctx.Request.Context(), userID, middleware.CurrentRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.FileAttachment(file.FullPath, file.OriginalName)
}
