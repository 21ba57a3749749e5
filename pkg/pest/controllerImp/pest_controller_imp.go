package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/pest/service"
	uploadCtrl "cropadvisor/pkg/upload/controllerImp"
)

type PestCtrl struct{ s service.PestService }

func New(s service.PestService) *PestCtrl { return &PestCtrl{s: s} }

// Detect handles POST /api/pests/detect (multipart: image, cropType).
func (h *PestCtrl) Detect(c echo.Context) error {
	fh, err := uploadCtrl.FormImage(c)
	if err != nil {
		return err
	}
	d, err := h.s.Detect(c.Request().Context(), service.DetectInput{
		CropType: c.FormValue("cropType"),
		Image:    fh,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "detection": d})
}

// Get handles GET /api/pests/:key.
func (h *PestCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "pest": p})
}

// ByCrop handles GET /api/pests/crop/:crop.
func (h *PestCtrl) ByCrop(c echo.Context) error {
	pests, err := h.s.ForCrop(c.Param("crop"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "crop": c.Param("crop"), "pests": pests})
}
