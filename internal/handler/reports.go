package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/schema"
	"github.com/minhvo/retail-suite/internal/session"
)

// ReportHandler proxies the backend's reporting endpoints for the
// console dashboard. Responses pass through the report cache
// middleware, so repeated dashboard loads within the cache TTL do
// not hit the backend.
type ReportHandler struct {
	API      *api.Client
	Sessions *session.Manager
}

func NewReportHandler(client *api.Client, mgr *session.Manager) *ReportHandler {
	if client == nil || mgr == nil {
		panic("nil dependency passed to NewReportHandler")
	}
	return &ReportHandler{API: client, Sessions: mgr}
}

// Summary handles GET /reports/summary: the dashboard's headline
// figures as a single object. Currency fields come back both raw
// and formatted for display.
func (h *ReportHandler) Summary(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	rec, err := h.API.Summary(c.Request().Context(), sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	display := make(map[string]string, len(rec))
	for k, v := range rec {
		display[k] = schema.FormatCell(k, v)
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": rec, "display": display})
}

// Report handles GET /reports/:name for the list-shaped reports
// (revenue, top products, inventory). The optional date window and
// row limit pass through to the backend.
func (h *ReportHandler) Report(c echo.Context) error {
	name := c.Param("name")
	switch name {
	case api.ReportRevenue, api.ReportTopProducts, api.ReportInventory:
	default:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "không có báo cáo này"})
	}

	f := api.ReportFilter{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.Limit = n
		}
	}

	sess := middleware.CurrentSession(c)
	records, columns, err := h.API.Report(c.Request().Context(), name, f, sessionToken(sess))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"report": name, "columns": columns, "rows": records})
}
