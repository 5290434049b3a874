package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/holidaydesk/backoffice/internal/service"
	"github.com/holidaydesk/backoffice/internal/store"
	"github.com/holidaydesk/backoffice/internal/util"
)

type PackageHandler struct {
	packages *service.PackageService
}

func RegisterPackages(e *echo.Echo, packages *service.PackageService) {
	handler := &PackageHandler{packages: packages}

	group := e.Group("/api/v1/packages")
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.GET("/:id", handler.get)
	group.PUT("/:id", handler.update)
	group.DELETE("/:id", handler.remove)
	group.POST("/:id/duplicate", handler.duplicate)
	group.GET("/:id/total", handler.total)
}

// packageResponse is the outgoing wire shape: the legacy record plus the
// events total on listing rows.
type packageResponse struct {
	store.PackageRecord
	TotalPrice *float64 `json:"total_price,omitempty"`
}

func (h *PackageHandler) list(c echo.Context) error {
	statuses := statusFilter(c)

	items, err := h.packages.List(c.Request().Context(), statuses)
	if err != nil {
		return h.writePackageError(c, err)
	}

	rows := make([]packageResponse, 0, len(items))
	for _, item := range items {
		total := item.TotalPrice
		rows = append(rows, packageResponse{
			PackageRecord: store.BuildOutgoing(item.PackageDraft),
			TotalPrice:    &total,
		})
	}
	return c.JSON(http.StatusOK, util.Envelope{"packages": rows})
}

func (h *PackageHandler) get(c echo.Context) error {
	id, err := packageID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}

	draft, err := h.packages.Get(c.Request().Context(), id)
	if err != nil {
		return h.writePackageError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"package": store.BuildOutgoing(draft)})
}

func (h *PackageHandler) create(c echo.Context) error {
	var rec store.PackageRecord
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	draft := store.NormalizeIncoming(rec)
	draft.ID = 0

	saved, err := h.packages.Save(c.Request().Context(), draft)
	if err != nil {
		return h.writePackageError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Envelope{"package": store.BuildOutgoing(saved)})
}

func (h *PackageHandler) update(c echo.Context) error {
	id, err := packageID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}

	var rec store.PackageRecord
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	draft := store.NormalizeIncoming(rec)
	draft.ID = id

	saved, err := h.packages.Save(c.Request().Context(), draft)
	if err != nil {
		return h.writePackageError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{"package": store.BuildOutgoing(saved)})
}

func (h *PackageHandler) remove(c echo.Context) error {
	id, err := packageID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}

	if err := h.packages.Delete(c.Request().Context(), id); err != nil {
		return h.writePackageError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("Package deleted"))
}

func (h *PackageHandler) duplicate(c echo.Context) error {
	id, err := packageID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}

	copied, err := h.packages.Duplicate(c.Request().Context(), id)
	if err != nil {
		return h.writePackageError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Envelope{"package": store.BuildOutgoing(copied)})
}

func (h *PackageHandler) total(c echo.Context) error {
	id, err := packageID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"total_price": h.packages.Total(c.Request().Context(), id),
	})
}

func (h *PackageHandler) writePackageError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPackageNotFound):
		return c.JSON(http.StatusNotFound, util.Error("package not found"))
	case errors.Is(err, service.ErrPackageValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		c.Logger().Errorf("package request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal error"))
	}
}

func packageID(c echo.Context) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
}

// statusFilter accepts repeated status params as well as one comma-joined
// value.
func statusFilter(c echo.Context) []string {
	var out []string
	for _, raw := range c.QueryParams()["status"] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
