package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/advisory/service"
	"cropadvisor/pkg/agronomy"
	soiltypes "cropadvisor/pkg/soil/types"
)

type AdvisoryCtrl struct{ s service.AdvisoryService }

func New(s service.AdvisoryService) *AdvisoryCtrl { return &AdvisoryCtrl{s: s} }

// Recommend handles POST /api/advisory/recommend.
func (h *AdvisoryCtrl) Recommend(c echo.Context) error {
	var req service.RecommendInput
	if err := c.Bind(&req); err != nil {
		return agronomy.InvalidInput("invalid json: %v", err)
	}
	r, err := h.s.Recommend(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "advisory": r})
}

// Fertilizer handles POST /api/advisory/fertilizer.
func (h *AdvisoryCtrl) Fertilizer(c echo.Context) error {
	var req soiltypes.SampleRequest
	if err := c.Bind(&req); err != nil {
		return agronomy.InvalidInput("invalid json: %v", err)
	}
	sample, err := req.Sample()
	if err != nil {
		return err
	}
	adv, err := h.s.Fertilizer(sample)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "fertilizers": adv.Fertilizers, "analysis": adv.Analysis})
}
