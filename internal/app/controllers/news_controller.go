package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models/dto"
	"github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/middleware"
	"github.com/yigit/egresados/internal/pkg/helpers"
)

// NewsController handles news operations
type NewsController struct {
	newsService services.NewsService
	logger      zerolog.Logger
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, logger zerolog.Logger) *NewsController {
	return &NewsController{newsService: newsService, logger: logger}
}

// ListNews godoc
// @Summary List news
// @Description Published news, newest first
// @Tags news
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	pageNum, pageSize := helpers.ParsePaginationParams(ctx)

	page, err := c.newsService.ListNews(ctx.Request.Context(), pageNum, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page, ""))
}

// GetNews godoc
// @Summary Get a news item
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=dto.NewsResponse}
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	news, err := c.newsService.GetNews(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(news, ""))
}

// CreateNews godoc
// @Summary Publish a news item
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param summary formData string false "Summary"
// @Param content formData string true "Content"
// @Param publishedAt formData string false "YYYY-MM-DD"
// @Param photo formData file false "Cover photo"
// @Success 201 {object} dto.APIResponse{data=dto.NewsResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	authorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.NewsRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	news, err := c.newsService.CreateNews(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(news, "News created successfully"))
}

// UpdateNews godoc
// @Summary Update a news item
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param photo formData file false "Cover photo"
// @Success 200 {object} dto.APIResponse{data=dto.NewsResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.NewsRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	news, err := c.newsService.UpdateNews(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(news, "News updated successfully"))
}

// DeleteNews godoc
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.newsService.DeleteNews(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "News deleted successfully"))
}
