package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
)

// ProfileController serves the staff profile of the caller
type ProfileController struct {
	service *services.ProfileService
	logger  zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(service *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{service: service, logger: logger}
}

// Index godoc
// @Summary Get my staff profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminProfileResponse}
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /myProfile [get]
func (c *ProfileController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.service.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, ""))
}

// Store godoc
// @Summary Save my staff profile
// @Description Creates or replaces the profile. A new photo replaces the stored one.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param position formData string false "Position"
// @Param office formData string false "Office"
// @Param phone formData string false "Phone"
// @Param bio formData string false "Biography"
// @Param photo formData file false "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.AdminProfileResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /myProfile [post]
func (c *ProfileController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.AdminProfileRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	profile, err := c.service.Save(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile saved"))
}
