package serviceImp

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/ai"
	"cropadvisor/pkg/pest/service"
	uploadSvc "cropadvisor/pkg/upload/service"
)

type Recorder interface {
	RecordDiagnosis(pest string)
}

type pestSvc struct {
	tables  *agronomy.Tables
	sampler ai.DiagnosisSampler
	uploads uploadSvc.UploadService
	rec     Recorder
	log     *zap.Logger
}

func New(tables *agronomy.Tables, sampler ai.DiagnosisSampler, uploads uploadSvc.UploadService, rec Recorder, log *zap.Logger) service.PestService {
	return &pestSvc{tables: tables, sampler: sampler, uploads: uploads, rec: rec, log: log.Named("pest")}
}

func (s *pestSvc) Detect(ctx context.Context, in service.DetectInput) (*service.Detection, error) {
	crop := strings.TrimSpace(in.CropType)
	if crop != "" {
		c, err := s.tables.Crop(crop)
		if err != nil {
			return nil, err
		}
		crop = c.Key
	}

	acc, err := s.uploads.Accept(ctx, entities.UploadPestDetection, in.Image, crop)
	if err != nil {
		return nil, err
	}

	d, err := s.sampler.Diagnose(ctx, ai.DiagnosisRequest{
		CropType:    crop,
		Filename:    acc.Record.Filename,
		ContentType: acc.Record.ContentType,
		Image:       acc.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("diagnose: %w", err)
	}
	if err := s.uploads.SetResult(ctx, acc.Record.ID, d.Pest.Key); err != nil {
		// the diagnosis stands even if the record could not be annotated
		s.log.Warn("annotate upload", zap.String("upload_id", acc.Record.ID), zap.Error(err))
	}
	s.rec.RecordDiagnosis(d.Pest.Key)

	out := &service.Detection{
		UploadID:           acc.Record.ID,
		CropType:           crop,
		PestKey:            d.Pest.Key,
		PestName:           d.Pest.Name,
		Confidence:         d.Confidence,
		Severity:           d.Severity,
		Symptoms:           d.Pest.Symptoms,
		Treatment:          d.Pest.Treatment,
		PreventiveMeasures: d.Pest.Prevention,
	}
	if crop != "" {
		affects := slices.Contains(d.Pest.AffectedCrops, crop)
		out.AffectsCrop = &affects
	}
	return out, nil
}

func (s *pestSvc) Get(key string) (agronomy.PestProfile, error) {
	return s.tables.LookupPest(key)
}

func (s *pestSvc) ForCrop(crop string) ([]agronomy.PestProfile, error) {
	return s.tables.PestsForCrop(crop)
}
