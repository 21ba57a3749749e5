package serviceImp

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	repo "cropadvisor/pkg/farmer/repository"
	"cropadvisor/pkg/farmer/service"
)

type farmerSvc struct {
	r      repo.FarmerRepository
	tables *agronomy.Tables
}

func New(r repo.FarmerRepository, tables *agronomy.Tables) service.FarmerService {
	return &farmerSvc{r: r, tables: tables}
}

func (s *farmerSvc) Register(ctx context.Context, in service.Registration) (*entities.Farmer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, agronomy.InvalidInput("name is required")
	}
	phone, err := normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if in.FarmSizeAcres < 0 || math.IsNaN(in.FarmSizeAcres) || math.IsInf(in.FarmSizeAcres, 0) {
		return nil, agronomy.InvalidInput("farmSize must be a non-negative number")
	}
	crops := make([]string, 0, len(in.Crops))
	seen := map[string]bool{}
	for _, k := range in.Crops {
		c, err := s.tables.Crop(k)
		if err != nil {
			return nil, agronomy.InvalidInput("unknown crop %q", k)
		}
		if !seen[c.Key] {
			seen[c.Key] = true
			crops = append(crops, c.Key)
		}
	}

	_, err = s.r.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return nil, service.ErrPhoneTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	f := &entities.Farmer{
		Name:          name,
		Phone:         phone,
		Location:      strings.TrimSpace(in.Location),
		State:         strings.TrimSpace(in.State),
		District:      strings.TrimSpace(in.District),
		SoilType:      strings.TrimSpace(in.SoilType),
		FarmSizeAcres: in.FarmSizeAcres,
		Crops:         crops,
		Language:      strings.ToLower(strings.TrimSpace(in.Language)),
	}
	if f.Language == "" {
		f.Language = "en"
	}
	// A concurrent registration can still win the unique index.
	if err := s.r.Create(ctx, f); errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, service.ErrPhoneTaken
	} else if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmerSvc) Get(ctx context.Context, id uint) (*entities.Farmer, error) {
	return s.r.FindByID(ctx, id)
}

// normalizePhone strips spaces and dashes and keeps an optional leading +.
// 10 to 15 digits are accepted.
func normalizePhone(raw string) (string, error) {
	var b strings.Builder
	digits := 0
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == ' ' || r == '-':
		default:
			return "", agronomy.InvalidInput("phone must contain only digits")
		}
	}
	if digits < 10 || digits > 15 {
		return "", agronomy.InvalidInput("phone must have 10 to 15 digits")
	}
	return b.String(), nil
}
