// pkg/ai/client.go

package ai

import (
	"context"

	"cropadvisor/pkg/agronomy"
)

// DiagnosisRequest is what a caller knows about a suspected infestation.
type DiagnosisRequest struct {
	CropType    string
	Filename    string
	ContentType string
	Image       []byte
}

// DiagnosisSampler produces a pest diagnosis for an uploaded image. A real
// classifier can replace the random implementation without touching callers.
type DiagnosisSampler interface {
	Diagnose(ctx context.Context, req DiagnosisRequest) (agronomy.Diagnosis, error)
}
