package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.POST("", h.create)
		g.POST("/import", h.importFile)
		g.GET("/:id", h.getByID)
	}
}

func (h *PlayerHandler) create(c *gin.Context) {
	var req service.CreatePlayerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("body"))
		return
	}
	player, err := h.svc.CreatePlayer(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

// importFile takes the raw JSON array as the request body, the same document the
// browser would read from the selected file.
func (h *PlayerHandler) importFile(c *gin.Context) {
	players, err := h.svc.ImportPlayers(c.Request.Context(), c.Request.Body)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, gin.H{"added": len(players), "players": players})
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	player, err := h.svc.GetPlayer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}
