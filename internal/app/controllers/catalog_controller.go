package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/models/dto"
)

// Catalog godoc
// @Summary Form catalog
// @Description Canonical institutions, programs and academic levels used by the forms
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Catalog}
// @Router /catalog [get]
func Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(models.DefaultCatalog, ""))
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
