// Package handlers implements the console REST and WebSocket endpoints.
//
// Handlers perform request validation and authorization, then delegate to
// the store, targeting and jobs layers. Route registration lives in the
// app package.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"memberhub.io/memberhub/ent"
	"memberhub.io/memberhub/internal/api/middleware"
	"memberhub.io/memberhub/internal/config"
	"memberhub.io/memberhub/internal/pkg/worker"
	"memberhub.io/memberhub/internal/realtime"
	"memberhub.io/memberhub/internal/store"
)

// Server holds the handler dependencies.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	workerPools *worker.Pools
	store       *store.Store
	hub         *realtime.Hub
	riverClient *river.Client[pgx.Tx]
	jwtCfg      middleware.JWTConfig
	realtimeCfg config.RealtimeConfig
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	WorkerPools *worker.Pools
	Store       *store.Store
	Hub         *realtime.Hub
	RiverClient *river.Client[pgx.Tx]
	JWTCfg      middleware.JWTConfig
	RealtimeCfg config.RealtimeConfig
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		workerPools: deps.WorkerPools,
		store:       deps.Store,
		hub:         deps.Hub,
		riverClient: deps.RiverClient,
		jwtCfg:      deps.JWTCfg,
		realtimeCfg: deps.RealtimeCfg,
	}
}

// authorizeRecipient ensures the authenticated user is the recipient or a
// platform admin. Recipients never see each other's inboxes.
func authorizeRecipient(c *gin.Context, recipientID string) bool {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code": "UNAUTHORIZED", "message": "authentication required",
		})
		return false
	}
	if userID == recipientID {
		return true
	}
	for _, p := range c.GetStringSlice("permissions") {
		if p == middleware.PermissionPlatformAdmin {
			return true
		}
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code": "FORBIDDEN", "message": "cannot access another member's notifications",
	})
	return false
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c interface{ GetString(any) string }) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
