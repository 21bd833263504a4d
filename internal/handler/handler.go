package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/studio-backoffice/pkg/response"
)

// Route is a resource that mounts itself under the admin group.
type Route interface {
	Mount(g *gin.RouterGroup)
}

// Options configure the engine built by New.
type Options struct {
	Logger         zerolog.Logger
	RequestTimeout time.Duration
}

// New builds a gin engine with the middleware chain every route shares.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		RequestID(),
		AccessLog(opts.Logger),
		Recovery(opts.Logger),
		Timeout(opts.RequestTimeout),
	)
	r.NoRoute(func(c *gin.Context) {
		response.WriteMessage(c, http.StatusNotFound, "not_found", "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.WriteMessage(c, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

// Register mounts health, docs and every resource route on the given engine.
func Register(r *gin.Engine, repo Pinger, routes ...Route) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		admin := api.Group(AdminPrefix)
		for _, route := range routes {
			route.Mount(admin)
		}
	}
}
