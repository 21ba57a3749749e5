package service

import (
	"context"
	"errors"

	"cropadvisor/entities"
)

var ErrPhoneTaken = errors.New("phone number already registered")

type Registration struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Location      string   `json:"location"`
	State         string   `json:"state"`
	District      string   `json:"district"`
	SoilType      string   `json:"soilType"`
	FarmSizeAcres float64  `json:"farmSize"`
	Crops         []string `json:"crops"`
	Language      string   `json:"language"`
}

type FarmerService interface {
	Register(ctx context.Context, r Registration) (*entities.Farmer, error)
	Get(ctx context.Context, id uint) (*entities.Farmer, error)
}
