package agronomy

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

type Season string

const (
	Kharif    Season = "Kharif"
	Rabi      Season = "Rabi"
	Both      Season = "Both"
	Perennial Season = "Perennial"
)

type WaterRequirement string

const (
	WaterLow      WaterRequirement = "Low"
	WaterMedium   WaterRequirement = "Medium"
	WaterHigh     WaterRequirement = "High"
	WaterVeryHigh WaterRequirement = "VeryHigh"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type CropProfile struct {
	Key             string           `json:"key" yaml:"key"`
	Name            string           `json:"name" yaml:"name"`
	Category        string           `json:"category" yaml:"category"`
	Season          Season           `json:"season" yaml:"season"`
	Water           WaterRequirement `json:"waterRequirement" yaml:"water"`
	MaturityMinDays int              `json:"maturityMinDays" yaml:"maturityMinDays"`
	MaturityMaxDays int              `json:"maturityMaxDays" yaml:"maturityMaxDays"`
}

type Treatment struct {
	Method    string `json:"method" yaml:"method"`
	Dosage    string `json:"dosage" yaml:"dosage"`
	Frequency string `json:"frequency" yaml:"frequency"`
}

type PestProfile struct {
	Key           string      `json:"key" yaml:"key"`
	Name          string      `json:"name" yaml:"name"`
	AffectedCrops []string    `json:"affectedCrops" yaml:"affectedCrops"`
	Symptoms      string      `json:"symptoms" yaml:"symptoms"`
	Treatment     []Treatment `json:"treatment" yaml:"treatment"`
	Prevention    []string    `json:"prevention" yaml:"prevention"`
}

type PricePoint struct {
	Date  string  `json:"date" yaml:"date"`
	Price float64 `json:"price" yaml:"price"`
}

type PriceQuote struct {
	Crop      string       `json:"crop" yaml:"crop"`
	Variety   string       `json:"variety" yaml:"variety"`
	Price     float64      `json:"price" yaml:"price"`
	Unit      string       `json:"unit" yaml:"unit"`
	Market    string       `json:"market" yaml:"market"`
	Date      string       `json:"date" yaml:"date"`
	Change    float64      `json:"change" yaml:"change"`
	ChangePct float64      `json:"changePct" yaml:"changePct"`
	Trend     Trend        `json:"trend" yaml:"trend"`
	History   []PricePoint `json:"history,omitempty" yaml:"history,omitempty"`
}

// Tables is the read-only reference data consulted by the rules. A Tables
// value is never mutated after NewTables returns; every accessor hands out
// copies.
type Tables struct {
	crops    map[string]CropProfile
	pests    map[string]PestProfile
	prices   map[string]PriceQuote
	pestKeys []string
}

func normKey(k string) string { return strings.ToLower(strings.TrimSpace(k)) }

// enumFold compares enum spellings ignoring case and inner spaces, so
// "very high" matches VeryHigh.
func enumFold(a, b string) bool {
	return strings.EqualFold(strings.ReplaceAll(strings.TrimSpace(a), " ", ""), b)
}

func canonSeason(s Season) (Season, bool) {
	for _, v := range []Season{Kharif, Rabi, Both, Perennial} {
		if enumFold(string(s), string(v)) {
			return v, true
		}
	}
	return s, false
}

func canonWater(w WaterRequirement) (WaterRequirement, bool) {
	for _, v := range []WaterRequirement{WaterLow, WaterMedium, WaterHigh, WaterVeryHigh} {
		if enumFold(string(w), string(v)) {
			return v, true
		}
	}
	return w, false
}

func canonTrend(t Trend) (Trend, bool) {
	for _, v := range []Trend{TrendUp, TrendDown, TrendStable} {
		if enumFold(string(t), string(v)) {
			return v, true
		}
	}
	return t, false
}

// NewTables validates and freezes the reference rows.
func NewTables(crops []CropProfile, pests []PestProfile, prices []PriceQuote) (*Tables, error) {
	t := &Tables{
		crops:  make(map[string]CropProfile, len(crops)),
		pests:  make(map[string]PestProfile, len(pests)),
		prices: make(map[string]PriceQuote, len(prices)),
	}
	for _, c := range crops {
		k := normKey(c.Key)
		if k == "" {
			return nil, fmt.Errorf("crop %q: empty key", c.Name)
		}
		if _, dup := t.crops[k]; dup {
			return nil, fmt.Errorf("crop %q: duplicate key", k)
		}
		var ok bool
		if c.Season, ok = canonSeason(c.Season); !ok {
			return nil, fmt.Errorf("crop %q: unknown season %q", k, c.Season)
		}
		if c.Water, ok = canonWater(c.Water); !ok {
			return nil, fmt.Errorf("crop %q: unknown water requirement %q", k, c.Water)
		}
		if c.MaturityMaxDays < c.MaturityMinDays {
			return nil, fmt.Errorf("crop %q: maturity range %d-%d", k, c.MaturityMinDays, c.MaturityMaxDays)
		}
		c.Key = k
		t.crops[k] = c
	}
	for _, p := range pests {
		k := normKey(p.Key)
		if k == "" {
			return nil, fmt.Errorf("pest %q: empty key", p.Name)
		}
		if _, dup := t.pests[k]; dup {
			return nil, fmt.Errorf("pest %q: duplicate key", k)
		}
		p.Key = k
		p.AffectedCrops = normKeys(p.AffectedCrops)
		p.Treatment = slices.Clone(p.Treatment)
		p.Prevention = slices.Clone(p.Prevention)
		t.pests[k] = p
		t.pestKeys = append(t.pestKeys, k)
	}
	sort.Strings(t.pestKeys)
	for _, q := range prices {
		k := normKey(q.Crop)
		if _, ok := t.crops[k]; !ok {
			return nil, fmt.Errorf("price for %q: crop not in crop table", q.Crop)
		}
		if _, dup := t.prices[k]; dup {
			return nil, fmt.Errorf("price for %q: duplicate", k)
		}
		var ok bool
		if q.Trend, ok = canonTrend(q.Trend); !ok {
			return nil, fmt.Errorf("price for %q: unknown trend %q", k, q.Trend)
		}
		q.Crop = k
		q.History = slices.Clone(q.History)
		t.prices[k] = q
	}
	return t, nil
}

func normKeys(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if k := normKey(s); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func (t *Tables) Crop(key string) (CropProfile, error) {
	c, ok := t.crops[normKey(key)]
	if !ok {
		return CropProfile{}, unknownCrop(key)
	}
	return c, nil
}

// Crops lists every crop ordered by key.
func (t *Tables) Crops() []CropProfile {
	out := make([]CropProfile, 0, len(t.crops))
	for _, c := range t.crops {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Tables) LookupPest(key string) (PestProfile, error) {
	p, ok := t.pests[normKey(key)]
	if !ok {
		return PestProfile{}, unknownPest(key)
	}
	return clonePest(p), nil
}

func (t *Tables) Pests() []PestProfile {
	out := make([]PestProfile, 0, len(t.pestKeys))
	for _, k := range t.pestKeys {
		out = append(out, clonePest(t.pests[k]))
	}
	return out
}

// PestsForCrop returns the pests registered against a known crop. An empty
// slice means the crop is known but has no pests on record.
func (t *Tables) PestsForCrop(crop string) ([]PestProfile, error) {
	k := normKey(crop)
	if _, ok := t.crops[k]; !ok {
		return nil, unknownCrop(crop)
	}
	out := []PestProfile{}
	for _, pk := range t.pestKeys {
		p := t.pests[pk]
		if slices.Contains(p.AffectedCrops, k) {
			out = append(out, clonePest(p))
		}
	}
	return out, nil
}

func clonePest(p PestProfile) PestProfile {
	p.AffectedCrops = slices.Clone(p.AffectedCrops)
	p.Treatment = slices.Clone(p.Treatment)
	p.Prevention = slices.Clone(p.Prevention)
	return p
}

// Price returns the quote for a crop; ok is false when the crop has none.
func (t *Tables) Price(crop string) (PriceQuote, bool) {
	q, ok := t.prices[normKey(crop)]
	if !ok {
		return PriceQuote{}, false
	}
	q.History = slices.Clone(q.History)
	return q, true
}

func (t *Tables) Prices() []PriceQuote {
	out := make([]PriceQuote, 0, len(t.prices))
	for _, q := range t.prices {
		q.History = slices.Clone(q.History)
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Crop < out[j].Crop })
	return out
}

// Counts reports table sizes, used by the health check.
func (t *Tables) Counts() map[string]int {
	return map[string]int{"crops": len(t.crops), "pests": len(t.pests), "prices": len(t.prices)}
}

// DefaultTables returns the built-in tables, constructed once.
var DefaultTables = sync.OnceValue(func() *Tables {
	t, err := NewTables(defaultCrops, defaultPests, defaultPrices)
	if err != nil {
		panic(fmt.Sprintf("agronomy: built-in tables: %v", err))
	}
	return t
})
