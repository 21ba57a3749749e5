package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cropadvisor/pkg/advisory/serviceImp"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/middleware"
)

type nopRecorder struct{}

func (nopRecorder) RecordSuitability(string, string) {}
func (nopRecorder) RecordSoilAssessment(string)      {}

func newServer() *echo.Echo {
	now := func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	h := New(serviceImp.New(agronomy.DefaultTables(), nil, nopRecorder{}, zap.NewNop(), time.UTC, now))
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(zap.NewNop(), false)
	e.POST("/api/advisory/recommend", h.Recommend)
	e.POST("/api/advisory/fertilizer", h.Fertilizer)
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRecommend(t *testing.T) {
	e := newServer()
	rec := post(e, "/api/advisory/recommend", `{"cropType":"rice","location":"Cuttack","farmSize":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success  bool `json:"success"`
		Advisory struct {
			Month           int `json:"month"`
			Recommendations []struct {
				Suitability    string `json:"suitability"`
				PlantingWindow string `json:"plantingWindow"`
				Irrigation     string `json:"irrigation"`
				Price          *struct {
					Price float64 `json:"price"`
				} `json:"price"`
			} `json:"recommendations"`
			Inputs map[string]any `json:"inputs"`
			Note   string         `json:"note"`
		} `json:"advisory"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 6, resp.Advisory.Month)
	require.Len(t, resp.Advisory.Recommendations, 1)
	r := resp.Advisory.Recommendations[0]
	assert.Equal(t, "Highly Suitable", r.Suitability)
	assert.Equal(t, "June-July", r.PlantingWindow)
	assert.NotEmpty(t, r.Irrigation)
	assert.NotNil(t, r.Price)
	assert.Equal(t, "Cuttack", resp.Advisory.Inputs["location"])
	assert.NotEmpty(t, resp.Advisory.Note)
}

func TestRecommendErrors(t *testing.T) {
	e := newServer()

	rec := post(e, "/api/advisory/recommend", `{"cropType":"quinoa"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNKNOWN_CROP"`)

	rec = post(e, "/api/advisory/recommend", `{"cropType":"rice","month":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(e, "/api/advisory/recommend", `{"month":"june"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFertilizer(t *testing.T) {
	e := newServer()
	rec := post(e, "/api/advisory/fertilizer", `{"ph":6.8,"nitrogen":100,"phosphorus":10,"potassium":300,"organicMatter":2.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, `{"type":"Urea","quantityKgPerAcre":100,"timing":"Split application in 3 doses"}`)
	assert.Contains(t, body, `"analysis"`)

	rec = post(e, "/api/advisory/fertilizer", `{"ph":6.8}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
}
