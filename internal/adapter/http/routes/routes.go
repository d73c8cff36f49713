package routes

import (
	"net/http"

	_ "kalakruti_api/docs"
	"kalakruti_api/internal/adapter/http/handlers"
	"kalakruti_api/internal/adapter/http/middleware"
	"kalakruti_api/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const maxBodyBytes = 10 << 20

// Deps carries everything the router needs. Limiter is optional; without it
// /api is not rate limited.
type Deps struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	Limiter        middleware.Limiter

	Health   *handlers.HealthHandler
	Estimate *handlers.EstimateHandler
	Contact  *handlers.ContactHandler
	Catalog  *handlers.CatalogHandler
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(middleware.BodyLimit(maxBodyBytes))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", d.Health.Health)
	router.GET("/", d.Health.Index)

	api := router.Group(PathAPI)
	if d.Limiter != nil {
		api.Use(middleware.RateLimit(d.Limiter, logger))
	}
	addCalculatorRoutes(api, d.Estimate)
	addCatalogRoutes(api, d.Catalog)
	addContactRoutes(api, d.Contact)

	router.NoRoute(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("NOT_FOUND", "Not found - "+c.Request.URL.Path, http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})

	return router
}
