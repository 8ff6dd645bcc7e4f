package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Readiness follows the initial pool fetch, so the pool service is normally passed as the Pinger too.
func Register(r *gin.Engine, ready Pinger, poolSvc service.PoolService, teamSvc service.TeamService, playerSvc service.PlayerService, viewSvc service.ViewService) {
	h := NewHealthHandler(ready)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPoolHandler(poolSvc, playerSvc).Register(api)
		NewPlayerHandler(playerSvc).Register(api)
		NewTeamHandler(teamSvc).Register(api)
		NewSettingsHandler(teamSvc).Register(api)
		NewViewHandler(viewSvc).Register(api)
	}
}
