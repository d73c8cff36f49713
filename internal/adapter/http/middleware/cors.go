package middleware

import (
	"net/http"
	"time"

	"kalakruti_api/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// CORS allows browser calls from the configured origins only. Requests
// without an Origin header (curl, mobile apps) pass through untouched.
// Unknown origins get a JSON 403 before gin-contrib/cors sees them; the
// library's own rejection carries no body.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "" {
			continue
		}
		if _, dup := allowed[o]; !dup {
			allowed[o] = struct{}{}
			origins = append(origins, o)
		}
	}

	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		// cors.New panics on an empty allow-list
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	handle := cors.New(cfg)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; !ok {
				appErr := pkg.NewDomainErrorSimple("CORS_NOT_ALLOWED", "CORS Not Allowed: "+origin, http.StatusForbidden)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
		}
		handle(c)
	}
}

// SecureHeaders sets the baseline browser hardening headers.
func SecureHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		ContentTypeNosniff:      true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ReferrerPolicy:          "no-referrer",
	})
}

// BodyLimit caps request bodies at n bytes.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
