package serviceImp

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/weather/provider"
	"cropadvisor/pkg/weather/service"
	"cropadvisor/pkg/weather/types"
)

type Recorder interface {
	RecordWeatherCache(hit bool)
}

type weatherSvc struct {
	p     provider.Provider
	cache *cache.Cache
	rec   Recorder
	now   func() time.Time
}

// New wraps a provider with a TTL cache keyed by normalized location. A
// non-positive ttl disables caching.
func New(p provider.Provider, ttl time.Duration, rec Recorder, now func() time.Time) service.WeatherService {
	s := &weatherSvc{p: p, rec: rec, now: now}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func cacheKey(location string) string { return strings.ToLower(location) }

func (s *weatherSvc) Report(ctx context.Context, location string) (types.Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return types.Report{}, agronomy.InvalidInput("location is required")
	}

	if s.cache != nil {
		if v, ok := s.cache.Get(cacheKey(location)); ok {
			s.rec.RecordWeatherCache(true)
			return cloneReport(v.(types.Report)), nil
		}
		s.rec.RecordWeatherCache(false)
	}

	r, err := s.p.Fetch(ctx, location)
	if err != nil {
		return types.Report{}, err
	}
	r.Alerts = Alerts(r)
	if s.cache != nil {
		s.cache.SetDefault(cacheKey(location), cloneReport(r))
	}
	return r, nil
}

func (s *weatherSvc) Advisory(ctx context.Context, location string) (types.Advisory, error) {
	r, err := s.Report(ctx, location)
	if err != nil {
		return types.Advisory{}, err
	}
	return Advise(r, agronomy.CurrentSeason(int(s.now().Month()))), nil
}

func cloneReport(r types.Report) types.Report {
	r.Forecast = slices.Clone(r.Forecast)
	r.Alerts = slices.Clone(r.Alerts)
	return r
}
