package serviceImp

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/advisory/service"
	"cropadvisor/pkg/agronomy"
)

const maxReferences = 3

const unusedInputsNote = "location, soil type and farm size are recorded but do not affect the suitability rating"

type Recorder interface {
	RecordSuitability(crop, label string)
	RecordSoilAssessment(phStatus string)
}

// ArticleSource supplies knowledge-base references for a crop.
type ArticleSource interface {
	ArticleRefs(ctx context.Context, crop string, limit int) ([]entities.ArticleRef, error)
}

type advisorySvc struct {
	tables   *agronomy.Tables
	articles ArticleSource
	rec      Recorder
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

// New wires the advisory service. articles may be nil. The default month is
// taken from now in loc.
func New(tables *agronomy.Tables, articles ArticleSource, rec Recorder, log *zap.Logger, loc *time.Location, now func() time.Time) service.AdvisoryService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &advisorySvc{tables: tables, articles: articles, rec: rec, log: log.Named("advisory"), loc: loc, now: now}
}

func (s *advisorySvc) Recommend(ctx context.Context, in service.RecommendInput) (*service.Recommendation, error) {
	month := int(s.now().In(s.loc).Month())
	if in.Month != nil {
		month = *in.Month
	}
	if month < 1 || month > 12 {
		return nil, agronomy.InvalidInput("month must be 1..12, got %d", month)
	}
	if in.FarmSize != nil && *in.FarmSize < 0 {
		return nil, agronomy.InvalidInput("farmSize must not be negative")
	}

	out := &service.Recommendation{Month: month, CurrentSeason: agronomy.CurrentSeason(month)}
	if in.Location != "" || in.SoilType != "" || in.FarmSize != nil {
		out.Inputs = &service.Inputs{
			Location: strings.TrimSpace(in.Location),
			SoilType: strings.TrimSpace(in.SoilType),
			FarmSize: in.FarmSize,
		}
		out.Note = unusedInputsNote
	}

	if crop := strings.TrimSpace(in.CropType); crop != "" {
		r, err := s.tables.EvaluateCropSuitability(crop, month)
		if err != nil {
			return nil, err
		}
		s.rec.RecordSuitability(r.Crop.Key, r.Suitability)
		out.Recommendations = []service.CropRecommendation{{Suitability: r, References: s.references(ctx, r.Crop.Key)}}
		return out, nil
	}

	for _, c := range s.tables.Crops() {
		r, err := s.tables.EvaluateCropSuitability(c.Key, month)
		if err != nil {
			return nil, err
		}
		s.rec.RecordSuitability(r.Crop.Key, r.Suitability)
		out.Recommendations = append(out.Recommendations, service.CropRecommendation{Suitability: r})
	}
	sort.SliceStable(out.Recommendations, func(i, j int) bool {
		a, b := out.Recommendations[i], out.Recommendations[j]
		return a.Suitability.Suitability == agronomy.HighlySuitable && b.Suitability.Suitability != agronomy.HighlySuitable
	})
	return out, nil
}

func (s *advisorySvc) references(ctx context.Context, crop string) []entities.ArticleRef {
	if s.articles == nil {
		return nil
	}
	refs, err := s.articles.ArticleRefs(ctx, crop, maxReferences)
	if err != nil {
		s.log.Warn("knowledge base lookup", zap.String("crop", crop), zap.Error(err))
		return nil
	}
	return refs
}

func (s *advisorySvc) Fertilizer(sample agronomy.SoilSample) (*service.FertilizerAdvice, error) {
	a, err := agronomy.AssessSoil(sample)
	if err != nil {
		return nil, err
	}
	s.rec.RecordSoilAssessment(a.PH.Status)
	return &service.FertilizerAdvice{Analysis: a, Fertilizers: agronomy.FertilizerSchedule(a.Fertilizer)}, nil
}
