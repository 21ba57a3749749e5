package types

import (
	"strings"

	"cropadvisor/pkg/agronomy"
)

// SampleRequest is the JSON body carrying a soil reading. Pointers tell a
// missing field apart from an explicit zero.
type SampleRequest struct {
	PH            *float64 `json:"ph"`
	Nitrogen      *float64 `json:"nitrogen"`
	Phosphorus    *float64 `json:"phosphorus"`
	Potassium     *float64 `json:"potassium"`
	OrganicMatter *float64 `json:"organicMatter"`
}

// Sample rejects the request if any field is absent.
func (r SampleRequest) Sample() (agronomy.SoilSample, error) {
	var missing []string
	get := func(name string, v *float64) float64 {
		if v == nil {
			missing = append(missing, name)
			return 0
		}
		return *v
	}
	s := agronomy.SoilSample{
		PH:            get("ph", r.PH),
		Nitrogen:      get("nitrogen", r.Nitrogen),
		Phosphorus:    get("phosphorus", r.Phosphorus),
		Potassium:     get("potassium", r.Potassium),
		OrganicMatter: get("organicMatter", r.OrganicMatter),
	}
	if len(missing) > 0 {
		return agronomy.SoilSample{}, agronomy.InvalidInput("missing required fields: %s", strings.Join(missing, ", "))
	}
	return s, nil
}
