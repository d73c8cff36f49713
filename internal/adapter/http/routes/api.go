package routes

import (
	"kalakruti_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI         = "/api"
	PathCalculators = "/price-calculators/:kind/calculator"
	PathDesign      = "/design"
	PathProjects    = "/projects"
	PathContact     = "/contact"
)

// addCalculatorRoutes serves home, kitchen and wardrobe under one pattern;
// any other :kind answers 404.
func addCalculatorRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	calc := rg.Group(PathCalculators)
	{
		calc.POST("/estimate", h.Calculate)
		calc.POST("/submit", h.Submit)
		calc.GET("/estimates", h.List)
		calc.GET("/estimates/export", h.Export)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	design := rg.Group(PathDesign)
	{
		design.GET("/categories", h.ListCategories)
		design.GET("/:categoryId", h.ListDesigns)
		design.GET("/:categoryId/:designSlug", h.GetDesign)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("/delivered", h.ListDeliveredProjects)
		projects.GET("/delivered/:id", h.GetDeliveredProject)
	}
}

func addContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler) {
	rg.POST(PathContact, h.Submit)
}
