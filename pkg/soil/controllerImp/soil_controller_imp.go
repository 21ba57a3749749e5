package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/soil/types"
)

type Recorder interface {
	RecordSoilAssessment(phStatus string)
}

type SoilCtrl struct{ rec Recorder }

func New(rec Recorder) *SoilCtrl { return &SoilCtrl{rec: rec} }

// Analyze handles POST /api/soil/analyze.
func (h *SoilCtrl) Analyze(c echo.Context) error {
	var req types.SampleRequest
	if err := c.Bind(&req); err != nil {
		return agronomy.InvalidInput("invalid json: %v", err)
	}
	sample, err := req.Sample()
	if err != nil {
		return err
	}
	a, err := agronomy.AssessSoil(sample)
	if err != nil {
		return err
	}
	h.rec.RecordSoilAssessment(a.PH.Status)
	return c.JSON(http.StatusOK, map[string]any{"success": true, "analysis": a})
}
