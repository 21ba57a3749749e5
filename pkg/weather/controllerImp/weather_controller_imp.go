package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/weather/service"
)

type WeatherCtrl struct{ s service.WeatherService }

func New(s service.WeatherService) *WeatherCtrl { return &WeatherCtrl{s: s} }

// Get handles GET /api/weather/:location.
func (h *WeatherCtrl) Get(c echo.Context) error {
	r, err := h.s.Report(c.Request().Context(), c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "weather": r})
}

// Advisory handles GET /api/weather/advisory/:location.
func (h *WeatherCtrl) Advisory(c echo.Context) error {
	a, err := h.s.Advisory(c.Request().Context(), c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "advisory": a})
}
