package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/agronomy"
)

type CropCtrl struct{ tables *agronomy.Tables }

func New(tables *agronomy.Tables) *CropCtrl { return &CropCtrl{tables: tables} }

// List handles GET /api/crops. ?season= narrows the list; crops sown in
// both seasons match either.
func (h *CropCtrl) List(c echo.Context) error {
	crops := h.tables.Crops()
	if s := strings.TrimSpace(c.QueryParam("season")); s != "" {
		filtered := crops[:0]
		for _, cr := range crops {
			if strings.EqualFold(string(cr.Season), s) || cr.Season == agronomy.Both {
				filtered = append(filtered, cr)
			}
		}
		crops = filtered
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": len(crops), "crops": crops})
}

type cropDetail struct {
	agronomy.CropProfile
	Irrigation     string                 `json:"irrigation"`
	PlantingWindow string                 `json:"plantingWindow"`
	Pests          []agronomy.PestProfile `json:"commonPests"`
	Price          *agronomy.PriceQuote   `json:"price,omitempty"`
}

// Get handles GET /api/crops/:key.
func (h *CropCtrl) Get(c echo.Context) error {
	crop, err := h.tables.Crop(c.Param("key"))
	if err != nil {
		return err
	}
	pests, err := h.tables.PestsForCrop(crop.Key)
	if err != nil {
		return err
	}
	d := cropDetail{
		CropProfile:    crop,
		Irrigation:     agronomy.IrrigationFrequency(crop.Water),
		PlantingWindow: agronomy.PlantingWindow(crop.Season),
		Pests:          pests,
	}
	if q, ok := h.tables.Price(crop.Key); ok {
		d.Price = &q
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "crop": d})
}
