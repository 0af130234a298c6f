package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS picks the policy for the request's surface. It must be
// registered on the engine, not a route group: group middleware only
// runs on matched routes, and an OPTIONS preflight matches none, so a
// group-scoped policy would let preflights fall through to a bare 404.
func CORS() gin.HandlerFunc {
	admin := AdminCORS()
	public := PublicCORS()
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			public(c)
			return
		}
		admin(c)
	}
}

func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/api/live-") || strings.HasPrefix(path, "/api/mobile-")
}

// AdminCORS covers the builder UI dev and embedded origins.
func AdminCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
			"https://admin.shopify.com",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}

// PublicCORS is wide open: the live endpoints are read-only JSON for
// the mobile client and carry no credentials.
func PublicCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	})
}
