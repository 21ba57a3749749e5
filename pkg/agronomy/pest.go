package agronomy

import "errors"

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// RandomSource is the subset of *rand.Rand the sampler needs.
type RandomSource interface {
	Intn(n int) int
}

type Diagnosis struct {
	Pest       PestProfile `json:"pest"`
	Confidence int         `json:"confidence"` // percent, 80..99
	Severity   Severity    `json:"severity"`
}

// SamplePestDiagnosis draws a placeholder diagnosis: a pest chosen
// uniformly in key order, an integer confidence in [80,99] and a uniform
// severity. Nothing about the crop or image is consulted.
func (t *Tables) SamplePestDiagnosis(rnd RandomSource) (Diagnosis, error) {
	if len(t.pestKeys) == 0 {
		return Diagnosis{}, errors.New("pest table is empty")
	}
	key := t.pestKeys[rnd.Intn(len(t.pestKeys))]
	return Diagnosis{
		Pest:       clonePest(t.pests[key]),
		Confidence: 80 + rnd.Intn(20),
		Severity:   severities[rnd.Intn(len(severities))],
	}, nil
}
