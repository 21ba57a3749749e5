package service

import (
	"context"

	"cropadvisor/pkg/weather/types"
)

type WeatherService interface {
	Report(ctx context.Context, location string) (types.Report, error)
	Advisory(ctx context.Context, location string) (types.Advisory, error)
}
