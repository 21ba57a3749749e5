package agronomy

import (
	"fmt"
	"math"
	"strings"
)

type PHStatus string

const (
	PHAcidic   PHStatus = "Acidic"
	PHOptimal  PHStatus = "Optimal"
	PHAlkaline PHStatus = "Alkaline"
)

type NutrientStatus string

const (
	NutrientLow    NutrientStatus = "Low"
	NutrientMedium NutrientStatus = "Medium"
	NutrientHigh   NutrientStatus = "High"
)

type OrganicMatterStatus string

const (
	OrganicPoor      OrganicMatterStatus = "Poor"
	OrganicFair      OrganicMatterStatus = "Fair"
	OrganicGood      OrganicMatterStatus = "Good"
	OrganicExcellent OrganicMatterStatus = "Excellent"
)

// SoilSample holds one lab reading. Nutrients are kg/ha, organic matter
// is a percentage.
type SoilSample struct {
	PH            float64 `json:"ph" yaml:"ph"`
	Nitrogen      float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium     float64 `json:"potassium" yaml:"potassium"`
	OrganicMatter float64 `json:"organicMatter" yaml:"organicMatter"`
}

// Validate rejects values that cannot be classified. No agronomic range is
// enforced: any finite number is accepted.
func (s SoilSample) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ph", s.PH},
		{"nitrogen", s.Nitrogen},
		{"phosphorus", s.Phosphorus},
		{"potassium", s.Potassium},
		{"organicMatter", s.OrganicMatter},
	}
	var bad []string
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad = append(bad, f.name)
		}
	}
	if len(bad) > 0 {
		return invalidInput("not a finite number: %s", strings.Join(bad, ", "))
	}
	return nil
}

type Reading struct {
	Value          float64 `json:"value"`
	Status         string  `json:"status"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// FertilizerPlan quantities are kg/acre.
type FertilizerPlan struct {
	UreaKgPerAcre   float64 `json:"ureaKgPerAcre"`
	DAPKgPerAcre    float64 `json:"dapKgPerAcre"`
	PotashKgPerAcre float64 `json:"potashKgPerAcre"`
}

type SoilAssessment struct {
	PH            Reading        `json:"ph"`
	Nitrogen      Reading        `json:"nitrogen"`
	Phosphorus    Reading        `json:"phosphorus"`
	Potassium     Reading        `json:"potassium"`
	OrganicMatter Reading        `json:"organicMatter"`
	Fertilizer    FertilizerPlan `json:"fertilizer"`
	Overall       string         `json:"overall"`
}

func ClassifyPH(ph float64) PHStatus {
	switch {
	case ph < 6.0:
		return PHAcidic
	case ph <= 7.5:
		return PHOptimal
	default:
		return PHAlkaline
	}
}

func classifyBand(v, medium, high float64) NutrientStatus {
	switch {
	case v > high:
		return NutrientHigh
	case v > medium:
		return NutrientMedium
	default:
		return NutrientLow
	}
}

func ClassifyNitrogen(n float64) NutrientStatus   { return classifyBand(n, 140, 280) }
func ClassifyPhosphorus(p float64) NutrientStatus { return classifyBand(p, 12, 25) }
func ClassifyPotassium(k float64) NutrientStatus  { return classifyBand(k, 140, 280) }

func ClassifyOrganicMatter(om float64) OrganicMatterStatus {
	switch {
	case om > 3.0:
		return OrganicExcellent
	case om > 2.0:
		return OrganicGood
	case om > 1.0:
		return OrganicFair
	default:
		return OrganicPoor
	}
}

var (
	ureaTiers   = map[NutrientStatus]float64{NutrientLow: 100, NutrientMedium: 50, NutrientHigh: 25}
	dapTiers    = map[NutrientStatus]float64{NutrientLow: 100, NutrientMedium: 50, NutrientHigh: 25}
	potashTiers = map[NutrientStatus]float64{NutrientLow: 50, NutrientMedium: 25, NutrientHigh: 0}
)

func UreaFor(s NutrientStatus) float64   { return ureaTiers[s] }
func DAPFor(s NutrientStatus) float64    { return dapTiers[s] }
func PotashFor(s NutrientStatus) float64 { return potashTiers[s] }

var phAdvice = map[PHStatus]string{
	PHAcidic:   "Apply agricultural lime to raise pH",
	PHOptimal:  "Maintain current soil management",
	PHAlkaline: "Add organic matter to reduce pH",
}

var organicAdvice = map[OrganicMatterStatus]string{
	OrganicPoor:      "Add compost or farmyard manure every season",
	OrganicFair:      "Add compost and retain crop residue",
	OrganicGood:      "Maintain with green manure or crop residue",
	OrganicExcellent: "No organic amendment needed",
}

// AssessSoil classifies a sample and derives the fertilizer quantities.
func AssessSoil(s SoilSample) (SoilAssessment, error) {
	if err := s.Validate(); err != nil {
		return SoilAssessment{}, err
	}

	ph := ClassifyPH(s.PH)
	n := ClassifyNitrogen(s.Nitrogen)
	p := ClassifyPhosphorus(s.Phosphorus)
	k := ClassifyPotassium(s.Potassium)
	om := ClassifyOrganicMatter(s.OrganicMatter)

	plan := FertilizerPlan{
		UreaKgPerAcre:   UreaFor(n),
		DAPKgPerAcre:    DAPFor(p),
		PotashKgPerAcre: PotashFor(k),
	}

	return SoilAssessment{
		PH:            Reading{Value: s.PH, Status: string(ph), Recommendation: phAdvice[ph]},
		Nitrogen:      Reading{Value: s.Nitrogen, Status: string(n), Recommendation: dose("urea", plan.UreaKgPerAcre)},
		Phosphorus:    Reading{Value: s.Phosphorus, Status: string(p), Recommendation: dose("DAP", plan.DAPKgPerAcre)},
		Potassium:     Reading{Value: s.Potassium, Status: string(k), Recommendation: dose("potash", plan.PotashKgPerAcre)},
		OrganicMatter: Reading{Value: s.OrganicMatter, Status: string(om), Recommendation: organicAdvice[om]},
		Fertilizer:    plan,
		Overall:       overall(ph, n, p, k, om),
	}, nil
}

func dose(name string, kg float64) string {
	if kg == 0 {
		return fmt.Sprintf("No %s needed", name)
	}
	return fmt.Sprintf("Apply %g kg/acre %s", kg, name)
}

func overall(ph PHStatus, n, p, k NutrientStatus, om OrganicMatterStatus) string {
	var issues []string
	if ph != PHOptimal {
		issues = append(issues, strings.ToLower(string(ph))+" pH")
	}
	for _, d := range []struct {
		name string
		s    NutrientStatus
	}{{"nitrogen", n}, {"phosphorus", p}, {"potassium", k}} {
		if d.s == NutrientLow {
			issues = append(issues, d.name+" deficiency")
		}
	}
	if om == OrganicPoor {
		issues = append(issues, "low organic matter")
	}
	switch len(issues) {
	case 0:
		return "Good soil health"
	case 1, 2:
		return "Fair soil health with " + strings.Join(issues, " and ")
	default:
		return "Poor soil health: " + strings.Join(issues, ", ")
	}
}

// FertilizerDose is one line of the fertilizer advisory.
type FertilizerDose struct {
	Type     string  `json:"type"`
	Quantity float64 `json:"quantityKgPerAcre"`
	Timing   string  `json:"timing"`
}

// FertilizerSchedule expands a plan into application lines. Zero-quantity
// fertilizers are kept so callers see the full recommendation.
func FertilizerSchedule(plan FertilizerPlan) []FertilizerDose {
	return []FertilizerDose{
		{Type: "Urea", Quantity: plan.UreaKgPerAcre, Timing: "Split application in 3 doses"},
		{Type: "DAP", Quantity: plan.DAPKgPerAcre, Timing: "Apply as basal dose at sowing"},
		{Type: "Potash", Quantity: plan.PotashKgPerAcre, Timing: "Apply as basal dose at sowing"},
	}
}
