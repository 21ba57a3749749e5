// pkg/ai/random_sampler.go

package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"cropadvisor/pkg/agronomy"
)

type randomSampler struct {
	tables *agronomy.Tables

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSampler returns the placeholder detector. It never looks at the
// image. A zero seed seeds from the clock.
func NewRandomSampler(tables *agronomy.Tables, seed int64) DiagnosisSampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomSampler{tables: tables, rnd: rand.New(rand.NewSource(seed))}
}

func (s *randomSampler) Diagnose(ctx context.Context, _ DiagnosisRequest) (agronomy.Diagnosis, error) {
	if err := ctx.Err(); err != nil {
		return agronomy.Diagnosis{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.SamplePestDiagnosis(s.rnd)
}
