package handler

import (
	"net/http"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/aggregator"
	"github.com/Eursukkul/vendor-dashboard/internal/dto"
	"github.com/Eursukkul/vendor-dashboard/internal/poller"
	"github.com/labstack/echo/v4"
)

// PollerStatus is the part of *poller.Poller the health check reports.
type PollerStatus interface {
	Interval() time.Duration
	Stats() poller.Stats
}

type HealthHandler struct {
	poller PollerStatus
	agg    *aggregator.Aggregator
}

func NewHealthHandler(p PollerStatus, agg *aggregator.Aggregator) *HealthHandler {
	return &HealthHandler{poller: p, agg: agg}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "ok",
		Service:      "vendor-dashboard",
		PollInterval: h.poller.Interval().String(),
		QuoteMetrics: string(h.agg.Source()),
		Poller:       h.poller.Stats(),
	})
}
