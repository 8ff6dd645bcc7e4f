package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

// retryTimeout bounds a manual retry; the generator applies its own HTTP timeout too.
const retryTimeout = 90 * time.Second

type PoolHandler struct {
	pool    service.PoolService
	players service.PlayerService
}

func NewPoolHandler(pool service.PoolService, players service.PlayerService) *PoolHandler {
	return &PoolHandler{pool: pool, players: players}
}

func (h *PoolHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pool")
	{
		g.GET("", h.list)
		g.GET("/status", h.status)
		g.POST("/retry", h.retry)
	}
}

func (h *PoolHandler) list(c *gin.Context) {
	res, err := h.players.ListPool(c.Request.Context(), pageQuery(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PoolHandler) status(c *gin.Context) {
	st, err := h.pool.State(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, st)
}

// retry re-runs generation synchronously and answers with the resulting pool state.
func (h *PoolHandler) retry(c *gin.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), retryTimeout)
	defer cancel()

	err := h.pool.Retry(ctx)

	logger := log.With().
		Str("path", c.Request.URL.Path).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		status, _ := response.MapError(err)
		logger.Error().Err(err).Int("status", status).Msg("pool retry failed")
		response.WriteError(c, err)
		return
	}

	st, err := h.pool.State(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	logger.Info().Int("size", st.Size).Msg("pool retry succeeded")
	response.WriteData(c, http.StatusOK, st)
}
