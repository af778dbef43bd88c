package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
)

// LocationController captures graduate geolocation
type LocationController struct {
	service *services.LocationService
	logger  zerolog.Logger
}

// NewLocationController creates a new LocationController
func NewLocationController(service *services.LocationService, logger zerolog.Logger) *LocationController {
	return &LocationController{service: service, logger: logger}
}

// Index godoc
// @Summary Get my location
// @Tags location
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Location}
// @Router /location [get]
func (c *LocationController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	loc, err := c.service.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(loc, ""))
}

// Store godoc
// @Summary Save my location
// @Tags location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LocationRequest true "Coordinates"
// @Success 200 {object} dto.APIResponse{data=models.Location}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /location [post]
func (c *LocationController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.LocationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	loc, err := c.service.Save(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(loc, "Location saved"))
}

// List godoc
// @Summary List every captured location
// @Tags location
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Location}
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /locations [get]
func (c *LocationController) List(ctx *gin.Context) {
	locations, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(locations, ""))
}
