package service

import (
	"context"
	"mime/multipart"

	"cropadvisor/pkg/agronomy"
)

type DetectInput struct {
	CropType string
	Image    *multipart.FileHeader
}

// Detection is the placeholder diagnosis returned to the client together
// with the treatment profile of the drawn pest.
type Detection struct {
	UploadID           string               `json:"uploadId"`
	CropType           string               `json:"cropType,omitempty"`
	PestKey            string               `json:"pestKey"`
	PestName           string               `json:"pestName"`
	Confidence         int                  `json:"confidence"`
	Severity           agronomy.Severity    `json:"severity"`
	Symptoms           string               `json:"symptoms"`
	AffectsCrop        *bool                `json:"affectsCrop,omitempty"`
	Treatment          []agronomy.Treatment `json:"treatment"`
	PreventiveMeasures []string             `json:"preventiveMeasures"`
}

type PestService interface {
	Detect(ctx context.Context, in DetectInput) (*Detection, error)
	Get(key string) (agronomy.PestProfile, error)
	ForCrop(crop string) ([]agronomy.PestProfile, error)
}
