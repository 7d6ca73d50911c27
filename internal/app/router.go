package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"memberhub.io/memberhub/internal/api/handlers"
	"memberhub.io/memberhub/internal/api/middleware"
	"memberhub.io/memberhub/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(jwtCfg))

	v1 := router.Group("/api/v1")

	health := v1.Group("/health")
	health.GET("/live", server.GetLiveness)
	health.GET("/ready", server.GetReadiness)

	notifications := v1.Group("/notifications")
	notifications.POST("", middleware.RequirePermission("notifications:create"), server.CreateNotification)
	notifications.DELETE("/:definitionId", middleware.RequirePermission("notifications:create"), server.CancelNotification)
	notifications.GET("/:recipientId", server.ListNotifications)
	notifications.GET("/:recipientId/unread-count", server.GetUnreadCount)
	notifications.PATCH("/read/:instanceId", server.MarkNotificationRead)
	notifications.PATCH("/read-all/:recipientId", server.MarkAllNotificationsRead)

	router.GET("/ws/notifications/:recipientId", server.StreamNotifications)

	return router
}

// buildCORSConfig derives the gin-contrib/cors configuration from server config.
// Wildcard origins are stripped unless the unsafe flag is set explicitly; the
// browser spec forbids credentials together with allow-all, so that combination
// drops credentials rather than silently breaking preflight.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")

	if cfg.Server.UnsafeAllowAllOrigins {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	corsCfg.AllowCredentials = cfg.Server.AllowCredentials

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		// Local development defaults; production deployments set allowed_origins.
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(jwtCfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(jwtCfg)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
