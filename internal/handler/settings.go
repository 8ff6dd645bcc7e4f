package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

type SettingsHandler struct {
	svc service.TeamService
}

func NewSettingsHandler(svc service.TeamService) *SettingsHandler { return &SettingsHandler{svc: svc} }

func (h *SettingsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/settings")
	{
		g.GET("/team-size", h.getTeamSize)
		g.PUT("/team-size", h.setTeamSize)
	}
}

type teamSizeRequest struct {
	Size *int `json:"size"`
}

func (h *SettingsHandler) getTeamSize(c *gin.Context) {
	size, err := h.svc.MaxTeamSize(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"max_team_size": size})
}

// setTeamSize truncates oversized teams right away. Clients confirm before calling.
func (h *SettingsHandler) setTeamSize(c *gin.Context) {
	var req teamSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Size == nil {
		response.WriteError(c, badBody("size"))
		return
	}
	if err := h.svc.SetMaxTeamSize(c.Request.Context(), *req.Size); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"max_team_size": *req.Size})
}
