package service

import "cropadvisor/pkg/agronomy"

type Mandi struct {
	Name        string   `json:"name"`
	State       string   `json:"state"`
	District    string   `json:"district"`
	Contact     string   `json:"contact"`
	Timings     string   `json:"timings"`
	Specialties []string `json:"specialties"`
}

// NearbyResult lists mandis for a location. Matched is false when nothing
// matched and the full list was returned instead.
type NearbyResult struct {
	Location string  `json:"location"`
	Matched  bool    `json:"matched"`
	Markets  []Mandi `json:"markets"`
}

type MarketService interface {
	Prices(crop string) ([]agronomy.PriceQuote, error)
	Trend(crop string) (agronomy.PriceTrend, error)
	Nearby(location string) NearbyResult
}
