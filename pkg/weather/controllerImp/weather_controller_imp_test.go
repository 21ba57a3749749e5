package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/weather/provider"
	"cropadvisor/pkg/weather/serviceImp"
	"cropadvisor/pkg/weather/types"
)

type nopRecorder struct{}

func (nopRecorder) RecordWeatherCache(bool) {}

func newCtrl() *WeatherCtrl {
	now := func() time.Time { return time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC) }
	return New(serviceImp.New(provider.NewStatic(5, now), time.Minute, nopRecorder{}, now))
}

func get(h func(echo.Context) error, location string) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("location")
	c.SetParamValues(location)
	return rec, h(c)
}

func TestGet(t *testing.T) {
	rec, err := get(newCtrl().Get, "Ludhiana")
	require.NoError(t, err)

	var resp struct {
		Success bool         `json:"success"`
		Weather types.Report `json:"weather"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ludhiana", resp.Weather.Location)
	assert.Len(t, resp.Weather.Forecast, 5)
	assert.NotNil(t, resp.Weather.Alerts)
}

func TestAdvisory(t *testing.T) {
	rec, err := get(newCtrl().Advisory, "Ludhiana")
	require.NoError(t, err)

	var resp struct {
		Advisory types.Advisory `json:"advisory"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Rabi", string(resp.Advisory.Season))
	assert.NotEmpty(t, resp.Advisory.Irrigation)
	assert.NotEmpty(t, resp.Advisory.PestControl)
}
