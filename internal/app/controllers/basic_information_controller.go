package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
)

// BasicInformationController serves the personal data form of the caller
type BasicInformationController struct {
	service *services.BasicInformationService
	logger  zerolog.Logger
}

// NewBasicInformationController creates a new BasicInformationController
func NewBasicInformationController(service *services.BasicInformationService, logger zerolog.Logger) *BasicInformationController {
	return &BasicInformationController{service: service, logger: logger}
}

// Index godoc
// @Summary Get my basic information
// @Description Returns the personal data of the caller, or null when the form was never filled
// @Tags basicInformation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.BasicInformation}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /basicInformation [get]
func (c *BasicInformationController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	info, err := c.service.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info, ""))
}

// Store godoc
// @Summary Save my basic information
// @Description Creates or replaces the personal data of the caller
// @Tags basicInformation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BasicInformationRequest true "Personal data"
// @Success 200 {object} dto.APIResponse{data=models.BasicInformation}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /basicInformation [post]
func (c *BasicInformationController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.BasicInformationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	info, err := c.service.Save(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info, "Basic information saved"))
}
