package handlers

import (
	"net/http"

	"kalakruti_api/internal/adapter/http/dto/response"
	"kalakruti_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves design categories, designs and delivered projects.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{usecase: uc, log: logger}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(h.usecase.ListCategories()))
}

func (h *CatalogHandler) ListDesigns(c *gin.Context) {
	categoryID := c.Param("categoryId")

	designs, err := h.usecase.ListDesigns(c.Request.Context(), categoryID)
	if err != nil {
		h.log.Info("[catalog][handler] list designs failed", zap.String("category_id", categoryID), zap.Error(err))
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDesigns(categoryID, designs))
}

func (h *CatalogHandler) GetDesign(c *gin.Context) {
	categoryID, slug := c.Param("categoryId"), c.Param("designSlug")

	d, err := h.usecase.GetDesign(c.Request.Context(), categoryID, slug)
	if err != nil {
		h.log.Info("[catalog][handler] get design failed", zap.String("slug", slug), zap.Error(err))
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.DesignDetailResponse{Success: true, Data: response.FromDesign(d)})
}

func (h *CatalogHandler) ListDeliveredProjects(c *gin.Context) {
	projects, err := h.usecase.ListDeliveredProjects(c.Request.Context())
	if err != nil {
		h.log.Info("[catalog][handler] list projects failed", zap.Error(err))
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectSummaries(projects))
}

func (h *CatalogHandler) GetDeliveredProject(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.GetDeliveredProject(c.Request.Context(), id)
	if err != nil {
		h.log.Info("[catalog][handler] get project failed", zap.String("project_id", id), zap.Error(err))
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectDetail(p))
}
