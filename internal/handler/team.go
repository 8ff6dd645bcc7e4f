package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.GET("", h.list)
		g.POST("", h.create)
		// Team names are the identity; clients must path-escape them.
		g.GET("/:name", h.get)
		g.PUT("/:name", h.rename)
		g.DELETE("/:name", h.delete)
		g.GET("/:name/available", h.available)
		g.POST("/:name/players/:id", h.addPlayer)
		g.DELETE("/:name/players/:id", h.removePlayer)
	}
}

type teamNameRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req teamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("name"))
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	teams, err := h.svc.ListTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": teams})
}

func (h *TeamHandler) get(c *gin.Context) {
	roster, err := h.svc.GetTeam(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, roster)
}

func (h *TeamHandler) rename(c *gin.Context) {
	var req teamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("name"))
		return
	}
	if err := h.svc.RenameTeam(c.Request.Context(), c.Param("name"), req.Name); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteTeam(c.Request.Context(), c.Param("name")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) available(c *gin.Context) {
	players, err := h.svc.AvailablePlayers(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": players})
}

func (h *TeamHandler) addPlayer(c *gin.Context) {
	h.membership(c, h.svc.AddPlayer)
}

func (h *TeamHandler) removePlayer(c *gin.Context) {
	h.membership(c, h.svc.RemovePlayer)
}

// membership runs add/remove; no-ops (full team, unknown team, not a member) still answer 200 with changed=false.
func (h *TeamHandler) membership(c *gin.Context, fn func(context.Context, string, int64) (bool, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	name := c.Param("name")
	changed, err := fn(c.Request.Context(), name, id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"team": name, "player_id": id, "changed": changed})
}
