package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holidaydesk/backoffice/internal/service"
	"github.com/holidaydesk/backoffice/internal/util"
)

type CatalogHandler struct {
	catalogs *service.CatalogService
}

func RegisterCatalogs(e *echo.Echo, catalogs *service.CatalogService) {
	handler := &CatalogHandler{catalogs: catalogs}

	group := e.Group("/api/v1/catalogs")
	group.GET("/states", handler.listStates)
	group.GET("/destinations", handler.listDestinations)
	group.GET("/vehicle-types", handler.listVehicleTypes)
	group.GET("/day-itineraries", handler.listDayItineraries)
	group.GET("/transfer-rates", handler.listTransferRates)
	group.GET("/notes", handler.listNotes)
	group.GET("/snapshot", handler.snapshot)
}

func (h *CatalogHandler) listStates(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"states": h.catalogs.States(c.Request().Context()),
	})
}

func (h *CatalogHandler) listDestinations(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": h.catalogs.Destinations(c.Request().Context(), c.QueryParam("state")),
	})
}

func (h *CatalogHandler) listVehicleTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"vehicle_types": h.catalogs.VehicleTypes(c.Request().Context()),
	})
}

func (h *CatalogHandler) listDayItineraries(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"day_itineraries": h.catalogs.DayItineraries(c.Request().Context()),
	})
}

func (h *CatalogHandler) listTransferRates(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"transfer_rates": h.catalogs.TransferRates(c.Request().Context()),
	})
}

func (h *CatalogHandler) listNotes(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"notes": h.catalogs.Notes(c.Request().Context()),
	})
}

func (h *CatalogHandler) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogs.Snapshot(c.Request().Context()))
}
