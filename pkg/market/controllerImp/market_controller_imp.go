package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/market/service"
)

type MarketCtrl struct{ s service.MarketService }

func New(s service.MarketService) *MarketCtrl { return &MarketCtrl{s: s} }

// Prices handles GET /api/market/prices[?crop=].
func (h *MarketCtrl) Prices(c echo.Context) error {
	prices, err := h.s.Prices(c.QueryParam("crop"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "prices": prices})
}

// Trends handles GET /api/market/trends/:crop.
func (h *MarketCtrl) Trends(c echo.Context) error {
	tr, err := h.s.Trend(c.Param("crop"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "trends": tr})
}

// Nearby handles GET /api/market/nearby/:location.
func (h *MarketCtrl) Nearby(c echo.Context) error {
	res := h.s.Nearby(c.Param("location"))
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"location": res.Location,
		"matched":  res.Matched,
		"markets":  res.Markets,
	})
}
