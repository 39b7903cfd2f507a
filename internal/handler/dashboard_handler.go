package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/vendor-dashboard/internal/correlator"
	"github.com/Eursukkul/vendor-dashboard/internal/dto"
	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/Eursukkul/vendor-dashboard/internal/service"
	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	svc   service.DashboardService
	clock clock.Clock
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc, clock: clock.New()}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	users := e.Group("/api/v1/users/:userId")
	users.GET("/dashboard", h.GetDashboard)
	users.POST("/dashboard/refresh", h.RefreshDashboard)
	users.GET("/vendors", h.ListVendors)
	users.GET("/calls", h.ListCalls)

	e.POST("/api/v1/extract", h.Extract)
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(snap))
}

func (h *DashboardHandler) RefreshDashboard(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	snap, err := h.svc.Refresh(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toDashboardResponse(snap))
}

func (h *DashboardHandler) ListVendors(c echo.Context) error {
	var vendorType *models.VendorType
	if s := c.QueryParam("type"); s != "" {
		vt := models.VendorType(s)
		if !vt.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid vendor type")
		}
		vendorType = &vt
	}

	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	var views []correlator.QuoteView
	if vendorType != nil {
		views = snap.Index.VendorsByType(*vendorType)
	} else {
		views = snap.Index.Views()
	}

	now := h.clock.Now()
	resp := make([]dto.VendorQuoteResponse, len(views))
	for i, v := range views {
		resp[i] = dto.ToVendorQuoteResponse(v, now)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) ListCalls(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	logs := snap.Index.Logs()
	resp := make([]dto.CallLogResponse, len(logs))
	for i, l := range logs {
		vendor, _ := snap.Index.VendorForCall(l)
		resp[i] = dto.ToCallLogResponse(l, vendor, now)
	}
	return c.JSON(http.StatusOK, resp)
}

// Extract parses a summary on demand. No content means the summary holds no
// dollar amount.
func (h *DashboardHandler) Extract(c echo.Context) error {
	var req dto.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		if errors.Is(err, ingest.ErrInvalidRecord) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	res, ok := h.svc.Extract(&req.Summary, req.EventID)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, dto.ExtractResponse{Quote: *res.Quote, NextSteps: res.NextSteps})
}

func (h *DashboardHandler) snapshot(c echo.Context) (*service.Snapshot, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	snap, err := h.svc.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return snap, nil
}

func toDashboardResponse(s *service.Snapshot) dto.DashboardResponse {
	return dto.DashboardResponse{
		UserID:      s.UserID,
		Event:       dto.ToEventResponse(s.Event),
		Metrics:     dto.ToMetricsResponse(s.Metrics),
		CallStats:   dto.ToCallStatsResponse(s.Calls),
		Rejected:    s.Rejected,
		RefreshedAt: s.RefreshedAt,
	}
}
