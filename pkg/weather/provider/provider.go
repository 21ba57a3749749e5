package provider

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"cropadvisor/pkg/weather/types"
)

// Provider fetches current conditions and a short forecast for a location.
type Provider interface {
	Fetch(ctx context.Context, location string) (types.Report, error)
}

type static struct {
	days int
	now  func() time.Time
}

// NewStatic returns the offline stand-in used until a real weather feed is
// wired. Values are synthetic but stable for a given location and day.
func NewStatic(days int, now func() time.Time) Provider {
	if days <= 0 {
		days = 5
	}
	if now == nil {
		now = time.Now
	}
	return &static{days: days, now: now}
}

func (s *static) Fetch(ctx context.Context, location string) (types.Report, error) {
	if err := ctx.Err(); err != nil {
		return types.Report{}, err
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(location))))
	seed := h.Sum32()

	r := types.Report{
		Location: location,
		Source:   "static",
		Current: types.Current{
			Temperature: float64(24 + seed%10),
			Humidity:    float64(50 + (seed>>4)%40),
			WindSpeed:   float64(5 + (seed>>8)%15),
		},
		Forecast: make([]types.DayForecast, 0, s.days),
	}
	r.Current.Description = describe(r.Current.Temperature, r.Current.Humidity, 0)

	today := s.now()
	for i := 0; i < s.days; i++ {
		b := seed>>(uint(i)*3) ^ uint32(i*2654435761)
		day := types.DayForecast{
			Date:     today.AddDate(0, 0, i).Format(time.DateOnly),
			MaxTemp:  float64(28 + b%11),
			Humidity: float64(45 + (b>>5)%45),
		}
		day.MinTemp = day.MaxTemp - float64(10+(b>>2)%4)
		if (b>>9)%4 == 0 {
			day.Rainfall = float64(1 + (b>>11)%25)
		}
		day.Description = describe(day.MaxTemp, day.Humidity, day.Rainfall)
		r.Forecast = append(r.Forecast, day)
	}
	return r, nil
}

func describe(temp, humidity, rain float64) string {
	switch {
	case rain > 10:
		return "Rain"
	case rain > 0:
		return "Light Rain"
	case temp > 35:
		return "Hot and Sunny"
	case humidity >= 70:
		return "Humid"
	case temp >= 30:
		return "Sunny"
	default:
		return "Partly Cloudy"
	}
}
