package serviceImp

import (
	"slices"
	"strings"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/market/service"
)

type marketSvc struct {
	tables *agronomy.Tables
	mandis []service.Mandi
}

func New(tables *agronomy.Tables) service.MarketService {
	return &marketSvc{tables: tables, mandis: defaultMandis}
}

// Prices returns every quote, or the quote of one crop when crop is set.
// A known crop without a quote yields an empty list.
func (s *marketSvc) Prices(crop string) ([]agronomy.PriceQuote, error) {
	if strings.TrimSpace(crop) == "" {
		return s.tables.Prices(), nil
	}
	c, err := s.tables.Crop(crop)
	if err != nil {
		return nil, err
	}
	if q, ok := s.tables.Price(c.Key); ok {
		return []agronomy.PriceQuote{q}, nil
	}
	return []agronomy.PriceQuote{}, nil
}

func (s *marketSvc) Trend(crop string) (agronomy.PriceTrend, error) {
	return s.tables.PriceTrend(crop)
}

func (s *marketSvc) Nearby(location string) service.NearbyResult {
	terms := locationTerms(location)
	var hits []service.Mandi
	for _, m := range s.mandis {
		if matches(m, terms) {
			hits = append(hits, cloneMandi(m))
		}
	}
	if len(hits) > 0 {
		return service.NearbyResult{Location: location, Matched: true, Markets: hits}
	}
	all := make([]service.Mandi, len(s.mandis))
	for i, m := range s.mandis {
		all[i] = cloneMandi(m)
	}
	return service.NearbyResult{Location: location, Matched: false, Markets: all}
}

func locationTerms(location string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(strings.ToLower(location), func(r rune) bool { return r == ',' || r == '/' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func matches(m service.Mandi, terms []string) bool {
	fields := []string{strings.ToLower(m.State), strings.ToLower(m.District), strings.ToLower(m.Name)}
	for _, t := range terms {
		if slices.Contains(fields, t) || strings.HasPrefix(strings.ToLower(m.Name), t+" ") {
			return true
		}
	}
	return false
}

func cloneMandi(m service.Mandi) service.Mandi {
	m.Specialties = slices.Clone(m.Specialties)
	return m
}
