package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/market/serviceImp"
)

func ctx(target string, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestPrices(t *testing.T) {
	h := New(serviceImp.New(agronomy.DefaultTables()))

	c, rec := ctx("/api/market/prices?crop=rice", nil, nil)
	require.NoError(t, h.Prices(c))
	var resp struct {
		Success bool                  `json:"success"`
		Prices  []agronomy.PriceQuote `json:"prices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Prices, 1)
	assert.Equal(t, "Basmati", resp.Prices[0].Variety)
	assert.Equal(t, agronomy.TrendStable, resp.Prices[0].Trend)

	c, _ = ctx("/api/market/prices?crop=quinoa", nil, nil)
	assert.True(t, agronomy.IsUnknownCrop(h.Prices(c)))
}

func TestTrends(t *testing.T) {
	h := New(serviceImp.New(agronomy.DefaultTables()))
	c, rec := ctx("/", []string{"crop"}, []string{"wheat"})
	require.NoError(t, h.Trends(c))

	var resp struct {
		Trends agronomy.PriceTrend `json:"trends"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "wheat", resp.Trends.Crop)
	require.NotNil(t, resp.Trends.Projection)
	assert.InDelta(t, 2200, resp.Trends.Projection.NextWeek, 0)
	assert.Contains(t, rec.Body.String(), `"prediction"`)
}

func TestNearby(t *testing.T) {
	h := New(serviceImp.New(agronomy.DefaultTables()))
	c, rec := ctx("/", []string{"location"}, []string{"Bharatpur"})
	require.NoError(t, h.Nearby(c))

	var resp struct {
		Matched bool `json:"matched"`
		Markets []struct {
			Name string `json:"name"`
		} `json:"markets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Matched)
	require.Len(t, resp.Markets, 1)
	assert.Equal(t, "Bharatpur Mandi", resp.Markets[0].Name)
}
