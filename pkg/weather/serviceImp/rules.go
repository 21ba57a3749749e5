package serviceImp

import (
	"fmt"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/weather/types"
)

const (
	heatThresholdC  = 35.0
	severeHeatC     = 40.0
	pestHumidityPct = 70.0
	heavyRainfallMM = 20.0
)

type outlook struct {
	maxTemp     float64
	maxHumidity float64
	rainDay     string
	rainTotal   float64
	maxRain     float64
}

func summarize(r types.Report) outlook {
	o := outlook{maxHumidity: r.Current.Humidity}
	for _, d := range r.Forecast {
		o.maxTemp = max(o.maxTemp, d.MaxTemp)
		o.maxHumidity = max(o.maxHumidity, d.Humidity)
		if d.Rainfall > 0 {
			if o.rainDay == "" {
				o.rainDay = d.Date
			}
			o.rainTotal += d.Rainfall
			o.maxRain = max(o.maxRain, d.Rainfall)
		}
	}
	return o
}

// Alerts derives the weather alerts for a report: heat above 35°C, pest
// pressure at 70% humidity or more, and any forecast rainfall.
func Alerts(r types.Report) []types.Alert {
	o := summarize(r)
	alerts := []types.Alert{}
	if o.maxTemp > heatThresholdC {
		sev := "Medium"
		if o.maxTemp > severeHeatC {
			sev = "High"
		}
		alerts = append(alerts, types.Alert{
			Type:            "Heat Wave Warning",
			Severity:        sev,
			Description:     fmt.Sprintf("Temperature may rise to %g°C", o.maxTemp),
			Recommendations: []string{"Increase irrigation", "Provide shade to crops"},
		})
	}
	if o.maxHumidity >= pestHumidityPct {
		alerts = append(alerts, types.Alert{
			Type:            "Pest Activity Watch",
			Severity:        "Medium",
			Description:     fmt.Sprintf("Humidity up to %g%% favours pest and fungal activity", o.maxHumidity),
			Recommendations: []string{"Scout fields twice a week", "Avoid excess nitrogen application"},
		})
	}
	if o.rainTotal > 0 {
		alerts = append(alerts, types.Alert{
			Type:            "Rainfall Expected",
			Severity:        "Low",
			Description:     fmt.Sprintf("%gmm of rain expected from %s", o.rainTotal, o.rainDay),
			Recommendations: []string{"Hold irrigation until after rain", "Keep field drains open"},
		})
	}
	return alerts
}

// Advise turns a report into field advice for the given season.
func Advise(r types.Report, season agronomy.Season) types.Advisory {
	o := summarize(r)
	a := types.Advisory{
		Location:    r.Location,
		Season:      season,
		Irrigation:  "Follow the regular irrigation schedule",
		Sowing:      fmt.Sprintf("Good conditions for sowing %s crops", season),
		Harvesting:  "Favorable conditions for harvesting",
		PestControl: "Routine monitoring is sufficient",
		Alerts:      Alerts(r),
	}
	switch {
	case o.rainTotal > 0:
		a.Irrigation = fmt.Sprintf("Hold irrigation, rainfall expected on %s", o.rainDay)
	case o.maxTemp > heatThresholdC:
		a.Irrigation = "Increase water supply due to high temperatures"
	}
	if o.maxRain > heavyRainfallMM {
		a.Sowing = "Delay sowing until heavy rain passes"
	}
	if o.rainTotal > 0 {
		a.Harvesting = "Postpone harvesting until a dry spell"
	}
	if o.maxHumidity >= pestHumidityPct {
		a.PestControl = "Monitor for pest activity due to humid conditions"
	}
	return a
}
