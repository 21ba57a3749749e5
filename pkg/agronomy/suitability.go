package agronomy

import "math"

const (
	HighlySuitable     = "Highly Suitable"
	ModeratelySuitable = "Moderately Suitable"
)

// CurrentSeason maps a calendar month (1..12) to the active sowing season:
// April through October is Kharif, the rest Rabi.
func CurrentSeason(month int) Season {
	if month >= 4 && month <= 10 {
		return Kharif
	}
	return Rabi
}

var irrigationByWater = map[WaterRequirement]string{
	WaterLow:      "Every 15-20 days",
	WaterMedium:   "Every 10-12 days",
	WaterHigh:     "Every 5-7 days",
	WaterVeryHigh: "Every 3-4 days",
}

func IrrigationFrequency(w WaterRequirement) string { return irrigationByWater[w] }

func PlantingWindow(s Season) string {
	if s == Kharif {
		return "June-July"
	}
	return "November-December"
}

type Suitability struct {
	Crop           CropProfile `json:"crop"`
	CurrentSeason  Season      `json:"currentSeason"`
	Suitability    string      `json:"suitability"`
	PlantingWindow string      `json:"plantingWindow"`
	Irrigation     string      `json:"irrigation"`
	Price          *PriceQuote `json:"price,omitempty"`
}

// EvaluateCropSuitability labels a crop against the season active in the
// given month. There is no unsuitable outcome. The planting window follows
// the crop's registered season.
func (t *Tables) EvaluateCropSuitability(cropKey string, month int) (Suitability, error) {
	if month < 1 || month > 12 {
		return Suitability{}, invalidInput("month must be 1..12, got %d", month)
	}
	crop, err := t.Crop(cropKey)
	if err != nil {
		return Suitability{}, err
	}

	current := CurrentSeason(month)
	label := ModeratelySuitable
	if crop.Season == current || crop.Season == Both {
		label = HighlySuitable
	}

	out := Suitability{
		Crop:           crop,
		CurrentSeason:  current,
		Suitability:    label,
		// Keyed on the crop's own season, not the current one: Both and
		// Perennial crops fall through to the Rabi window.
		PlantingWindow: PlantingWindow(crop.Season),
		Irrigation:     IrrigationFrequency(crop.Water),
	}
	if q, ok := t.Price(crop.Key); ok {
		out.Price = &q
	}
	return out, nil
}

type Projection struct {
	NextWeek float64 `json:"nextWeek"`
	Basis    string  `json:"basis"`
}

type PriceTrend struct {
	Crop       string       `json:"crop"`
	Trend      Trend        `json:"trend"`
	Data       []PricePoint `json:"data"`
	Projection *Projection  `json:"prediction,omitempty"`
}

// PriceTrend returns the illustrative series for a crop. The projection is
// the last price plus the mean step and is omitted for fewer than two points.
func (t *Tables) PriceTrend(crop string) (PriceTrend, error) {
	c, err := t.Crop(crop)
	if err != nil {
		return PriceTrend{}, err
	}
	q, ok := t.Price(c.Key)
	if !ok {
		return PriceTrend{Crop: c.Key, Trend: TrendStable, Data: []PricePoint{}}, nil
	}
	out := PriceTrend{Crop: c.Key, Trend: q.Trend, Data: q.History}
	if out.Data == nil {
		out.Data = []PricePoint{}
	}
	if n := len(q.History); n >= 2 {
		step := (q.History[n-1].Price - q.History[0].Price) / float64(n-1)
		out.Projection = &Projection{
			NextWeek: math.Round(q.History[n-1].Price + step),
			Basis:    "mean step over illustrative series",
		}
	}
	return out, nil
}
