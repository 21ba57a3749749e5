package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/farmer/service"
)

type FarmerCtrl struct{ s service.FarmerService }

func New(s service.FarmerService) *FarmerCtrl { return &FarmerCtrl{s: s} }

func (h *FarmerCtrl) Register(c echo.Context) error {
	var req service.Registration
	if err := c.Bind(&req); err != nil {
		return agronomy.InvalidInput("invalid request body")
	}
	f, err := h.s.Register(c.Request().Context(), req)
	if errors.Is(err, service.ErrPhoneTaken) {
		return echo.NewHTTPError(http.StatusConflict, err.Error()).SetInternal(err)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "Farmer registered successfully", "farmer": f})
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return agronomy.InvalidInput("invalid farmer id %q", c.Param("id"))
	}
	f, err := h.s.Get(c.Request().Context(), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "farmer": f})
}
