package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
)

// EmploymentInformationController manages the job history of the caller
type EmploymentInformationController struct {
	service *services.EmploymentInformationService
	logger  zerolog.Logger
}

// NewEmploymentInformationController creates a new EmploymentInformationController
func NewEmploymentInformationController(service *services.EmploymentInformationService, logger zerolog.Logger) *EmploymentInformationController {
	return &EmploymentInformationController{service: service, logger: logger}
}

// Index godoc
// @Summary List my jobs
// @Tags employmentInformation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EmploymentInformation}
// @Router /employmentInformation [get]
func (c *EmploymentInformationController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	jobs, err := c.service.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs, ""))
}

// Store godoc
// @Summary Add a job
// @Description A current job never keeps an end date
// @Tags employmentInformation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EmploymentInformationRequest true "Job data"
// @Success 201 {object} dto.APIResponse{data=models.EmploymentInformation}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /employmentInformation [post]
func (c *EmploymentInformationController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.EmploymentInformationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.service.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(job, "Employment record created"))
}

// Update godoc
// @Summary Update a job
// @Tags employmentInformation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.EmploymentInformationRequest true "Job data"
// @Success 200 {object} dto.APIResponse{data=models.EmploymentInformation}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /employmentInformation/{id} [put]
func (c *EmploymentInformationController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.EmploymentInformationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.service.Update(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job, "Employment record updated"))
}

// Destroy godoc
// @Summary Delete a job
// @Tags employmentInformation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /employmentInformation/{id} [delete]
func (c *EmploymentInformationController) Destroy(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Employment record deleted"))
}

// DestroyMultiple godoc
// @Summary Delete several jobs
// @Tags employmentInformation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "Record IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkDeleteResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /employmentInformation [delete]
func (c *EmploymentInformationController) DestroyMultiple(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BulkDeleteResponse{Deleted: deleted}, "Employment records deleted"))
}
