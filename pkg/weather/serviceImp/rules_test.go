package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/weather/types"
)

func report(days ...types.DayForecast) types.Report {
	return types.Report{Location: "Ludhiana", Current: types.Current{Temperature: 28, Humidity: 50}, Forecast: days}
}

func alertTypes(as []types.Alert) []string {
	out := []string{}
	for _, a := range as {
		out = append(out, a.Type)
	}
	return out
}

func TestAlertsThresholds(t *testing.T) {
	tests := []struct {
		name string
		day  types.DayForecast
		want []string
	}{
		{"calm", types.DayForecast{MaxTemp: 32, Humidity: 60}, []string{}},
		{"exactly 35 is not heat", types.DayForecast{MaxTemp: 35, Humidity: 60}, []string{}},
		{"heat", types.DayForecast{MaxTemp: 35.5, Humidity: 60}, []string{"Heat Wave Warning"}},
		{"humidity at 70", types.DayForecast{MaxTemp: 30, Humidity: 70}, []string{"Pest Activity Watch"}},
		{"humidity below 70", types.DayForecast{MaxTemp: 30, Humidity: 69.9}, []string{}},
		{"rain", types.DayForecast{Date: "2025-01-15", MaxTemp: 30, Humidity: 60, Rainfall: 0.5}, []string{"Rainfall Expected"}},
		{"all", types.DayForecast{MaxTemp: 41, Humidity: 85, Rainfall: 3}, []string{"Heat Wave Warning", "Pest Activity Watch", "Rainfall Expected"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alertTypes(Alerts(report(tt.day))))
		})
	}
}

func TestHeatSeverity(t *testing.T) {
	a := Alerts(report(types.DayForecast{MaxTemp: 38}))
	require.Len(t, a, 1)
	assert.Equal(t, "Medium", a[0].Severity)

	a = Alerts(report(types.DayForecast{MaxTemp: 42}))
	require.Len(t, a, 1)
	assert.Equal(t, "High", a[0].Severity)
	assert.Contains(t, a[0].Recommendations, "Increase irrigation")
}

func TestAdvise(t *testing.T) {
	calm := Advise(report(types.DayForecast{Date: "2025-01-14", MaxTemp: 30, Humidity: 55}), agronomy.Rabi)
	assert.Equal(t, "Follow the regular irrigation schedule", calm.Irrigation)
	assert.Equal(t, "Good conditions for sowing Rabi crops", calm.Sowing)
	assert.Equal(t, "Favorable conditions for harvesting", calm.Harvesting)
	assert.Equal(t, "Routine monitoring is sufficient", calm.PestControl)
	assert.Empty(t, calm.Alerts)

	hot := Advise(report(types.DayForecast{MaxTemp: 37, Humidity: 72}), agronomy.Kharif)
	assert.Equal(t, "Increase water supply due to high temperatures", hot.Irrigation)
	assert.Equal(t, "Monitor for pest activity due to humid conditions", hot.PestControl)

	wet := Advise(report(
		types.DayForecast{Date: "2025-01-14", MaxTemp: 37},
		types.DayForecast{Date: "2025-01-15", MaxTemp: 30, Rainfall: 25},
	), agronomy.Kharif)
	assert.Equal(t, "Hold irrigation, rainfall expected on 2025-01-15", wet.Irrigation)
	assert.Equal(t, "Delay sowing until heavy rain passes", wet.Sowing)
	assert.Equal(t, "Postpone harvesting until a dry spell", wet.Harvesting)
	assert.Equal(t, []string{"Heat Wave Warning", "Rainfall Expected"}, alertTypes(wet.Alerts))
}

func TestCurrentHumidityCounts(t *testing.T) {
	r := report(types.DayForecast{MaxTemp: 30, Humidity: 40})
	r.Current.Humidity = 75
	assert.Equal(t, []string{"Pest Activity Watch"}, alertTypes(Alerts(r)))
}
