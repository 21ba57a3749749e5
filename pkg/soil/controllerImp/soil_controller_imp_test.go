package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/agronomy"
)

type countingRecorder struct{ statuses []string }

func (r *countingRecorder) RecordSoilAssessment(s string) { r.statuses = append(r.statuses, s) }

func post(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/soil/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAnalyze(t *testing.T) {
	r := &countingRecorder{}
	h := New(r)
	c, rec := post(`{"ph":6.8,"nitrogen":100,"phosphorus":10,"potassium":300,"organicMatter":2.5}`)

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool                    `json:"success"`
		Analysis agronomy.SoilAssessment `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Optimal", resp.Analysis.PH.Status)
	assert.Equal(t, "Low", resp.Analysis.Nitrogen.Status)
	assert.Equal(t, "High", resp.Analysis.Potassium.Status)
	assert.Equal(t, "Good", resp.Analysis.OrganicMatter.Status)
	assert.InDelta(t, 100, resp.Analysis.Fertilizer.UreaKgPerAcre, 0)
	assert.InDelta(t, 0, resp.Analysis.Fertilizer.PotashKgPerAcre, 0)
	assert.Equal(t, []string{"Optimal"}, r.statuses)
}

func TestAnalyzeRejectsMissingField(t *testing.T) {
	r := &countingRecorder{}
	c, _ := post(`{"ph":6.8,"nitrogen":100}`)

	err := New(r).Analyze(c)
	require.Error(t, err)
	assert.True(t, agronomy.IsInvalidInput(err))
	assert.Empty(t, r.statuses)
}

func TestAnalyzeRejectsBadJSON(t *testing.T) {
	c, _ := post(`{"ph":"acidic"}`)
	err := New(&countingRecorder{}).Analyze(c)
	assert.True(t, agronomy.IsInvalidInput(err))
}
