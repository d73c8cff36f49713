package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	env string
	now func() time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   h.now().UTC().Format(time.RFC3339Nano),
		"environment": h.env,
	})
}

// Index lists the public entry points.
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Kalakruti Interiors API",
		"version": "1.0",
		"endpoints": gin.H{
			"health":             "/health",
			"docs":               "/swagger/index.html",
			"homeCalculator":     "/api/price-calculators/home/calculator",
			"kitchenCalculator":  "/api/price-calculators/kitchen/calculator",
			"wardrobeCalculator": "/api/price-calculators/wardrobe/calculator",
			"designs":            "/api/design/categories",
			"projects":           "/api/projects/delivered",
			"contact":            "/api/contact",
		},
	})
}
