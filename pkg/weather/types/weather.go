package types

import "cropadvisor/pkg/agronomy"

type Current struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	WindSpeed   float64 `json:"windSpeed"`   // km/h
	Description string  `json:"description"`
}

type DayForecast struct {
	Date        string  `json:"date"`
	MinTemp     float64 `json:"minTemp"`
	MaxTemp     float64 `json:"maxTemp"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"` // mm
	Description string  `json:"description"`
}

type Alert struct {
	Type            string   `json:"type"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

type Report struct {
	Location string        `json:"location"`
	Source   string        `json:"source"`
	Current  Current       `json:"current"`
	Forecast []DayForecast `json:"forecast"`
	Alerts   []Alert       `json:"alerts"`
}

type Advisory struct {
	Location    string          `json:"location"`
	Season      agronomy.Season `json:"season"`
	Irrigation  string          `json:"irrigation"`
	Sowing      string          `json:"sowing"`
	Harvesting  string          `json:"harvesting"`
	PestControl string          `json:"pestControl"`
	Alerts      []Alert         `json:"alerts"`
}
