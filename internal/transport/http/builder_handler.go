package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/holidaydesk/backoffice/internal/service"
	"github.com/holidaydesk/backoffice/internal/store"
	"github.com/holidaydesk/backoffice/internal/util"
)

// BuilderHandler serves the interactive package-builder endpoints: the state
// cascade, selection reconciliation, and transfer-rate matching. Requests
// carry the draft in the legacy record shape; responses return the normalized
// draft alongside the valid options.
type BuilderHandler struct {
	builder *service.BuilderService
}

func RegisterBuilder(e *echo.Echo, builder *service.BuilderService) {
	handler := &BuilderHandler{builder: builder}

	group := e.Group("/api/v1/builder")
	group.POST("/state-change", handler.stateChange)
	group.POST("/reconcile", handler.reconcile)
	group.GET("/rate-match", handler.rateMatch)
}

func (h *BuilderHandler) stateChange(c echo.Context) error {
	var req struct {
		Package store.PackageRecord `json:"package"`
		State   string              `json:"state"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	// An empty state is a valid transition: it clears the scope and the
	// destination options fall back to the global list.
	draft := store.NormalizeIncoming(req.Package)
	opts := h.builder.ChangeState(c.Request().Context(), draft, req.State)
	return c.JSON(http.StatusOK, opts)
}

func (h *BuilderHandler) reconcile(c echo.Context) error {
	var req struct {
		Package store.PackageRecord `json:"package"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	draft := store.NormalizeIncoming(req.Package)
	opts := h.builder.Reconcile(c.Request().Context(), draft)
	return c.JSON(http.StatusOK, opts)
}

func (h *BuilderHandler) rateMatch(c echo.Context) error {
	state := queryValue(c, "state")
	vehicleType := queryValue(c, "vehicle_type", "vehicleType")
	destination := queryValue(c, "destination")

	if vehicleType == "" || destination == "" {
		return c.JSON(http.StatusBadRequest, util.Error("vehicle_type and destination are required"))
	}

	match := h.builder.MatchRate(c.Request().Context(), state, vehicleType, destination)
	return c.JSON(http.StatusOK, match)
}

// queryValue returns the first non-empty query parameter among the given
// spellings.
func queryValue(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.QueryParam(name)); v != "" {
			return v
		}
	}
	return ""
}
