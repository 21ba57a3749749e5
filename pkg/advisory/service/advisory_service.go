package service

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
)

type RecommendInput struct {
	CropType string   `json:"cropType"`
	Month    *int     `json:"month"`
	Location string   `json:"location"`
	SoilType string   `json:"soilType"`
	FarmSize *float64 `json:"farmSize"`
}

// Inputs echoes the farm details that were received. They do not change
// the recommendation.
type Inputs struct {
	Location string   `json:"location,omitempty"`
	SoilType string   `json:"soilType,omitempty"`
	FarmSize *float64 `json:"farmSize,omitempty"`
}

type CropRecommendation struct {
	agronomy.Suitability
	References []entities.ArticleRef `json:"references,omitempty"`
}

type Recommendation struct {
	Month           int                  `json:"month"`
	CurrentSeason   agronomy.Season      `json:"currentSeason"`
	Recommendations []CropRecommendation `json:"recommendations"`
	Inputs          *Inputs              `json:"inputs,omitempty"`
	Note            string               `json:"note,omitempty"`
}

type FertilizerAdvice struct {
	Analysis    agronomy.SoilAssessment   `json:"analysis"`
	Fertilizers []agronomy.FertilizerDose `json:"fertilizers"`
}

type AdvisoryService interface {
	// Recommend evaluates one crop, or every crop when CropType is empty.
	Recommend(ctx context.Context, in RecommendInput) (*Recommendation, error)
	Fertilizer(sample agronomy.SoilSample) (*FertilizerAdvice, error)
}
