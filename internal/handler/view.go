package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

type ViewHandler struct {
	svc service.ViewService
}

func NewViewHandler(svc service.ViewService) *ViewHandler { return &ViewHandler{svc: svc} }

func (h *ViewHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/view")
	{
		g.GET("", h.state)
		g.POST("/navigate", h.navigate)
		g.POST("/active", h.setActive)
		g.POST("/details", h.details)
	}
}

type navigateRequest struct {
	Screen string `json:"screen"`
}

type teamRefRequest struct {
	Team string `json:"team"`
}

func (h *ViewHandler) state(c *gin.Context) {
	st, err := h.svc.State(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, st)
}

func (h *ViewHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("screen"))
		return
	}
	st, err := h.svc.Navigate(c.Request.Context(), model.Screen(req.Screen))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, st)
}

func (h *ViewHandler) setActive(c *gin.Context) {
	var req teamRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("team"))
		return
	}
	st, err := h.svc.SetActiveTeam(c.Request.Context(), req.Team)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, st)
}

func (h *ViewHandler) details(c *gin.Context) {
	var req teamRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, badBody("team"))
		return
	}
	st, err := h.svc.ViewTeam(c.Request.Context(), req.Team)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, st)
}
