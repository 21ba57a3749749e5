package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropadvisor/config"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/ai"
	"cropadvisor/pkg/metrics"
	"cropadvisor/router"

	advisoryCtrlImp "cropadvisor/pkg/advisory/controllerImp"
	advisorySvcImp "cropadvisor/pkg/advisory/serviceImp"
	cropCtrlImp "cropadvisor/pkg/crop/controllerImp"
	farmerCtrlImp "cropadvisor/pkg/farmer/controllerImp"
	farmerRepoImp "cropadvisor/pkg/farmer/repositoryImp"
	farmerSvcImp "cropadvisor/pkg/farmer/serviceImp"
	healthCtrlImp "cropadvisor/pkg/health/controllerImp"
	kbCtrlImp "cropadvisor/pkg/kb/controllerImp"
	kbRepoImp "cropadvisor/pkg/kb/repositoryImp"
	kbSvcImp "cropadvisor/pkg/kb/serviceImp"
	marketCtrlImp "cropadvisor/pkg/market/controllerImp"
	marketSvcImp "cropadvisor/pkg/market/serviceImp"
	pestCtrlImp "cropadvisor/pkg/pest/controllerImp"
	pestSvcImp "cropadvisor/pkg/pest/serviceImp"
	soilCtrlImp "cropadvisor/pkg/soil/controllerImp"
	uploadCtrlImp "cropadvisor/pkg/upload/controllerImp"
	uploadRepoImp "cropadvisor/pkg/upload/repositoryImp"
	uploadSvcImp "cropadvisor/pkg/upload/serviceImp"
	weatherCtrlImp "cropadvisor/pkg/weather/controllerImp"
	weatherProvider "cropadvisor/pkg/weather/provider"
	weatherSvcImp "cropadvisor/pkg/weather/serviceImp"
)

const forecastDays = 5

// loadTables returns the built-in tables unless a path is configured.
func loadTables(path string) (*agronomy.Tables, error) {
	if path == "" {
		return agronomy.DefaultTables(), nil
	}
	t, err := agronomy.LoadTables(path)
	if err != nil {
		return nil, fmt.Errorf("load tables %s: %w", path, err)
	}
	return t, nil
}

func buildHandlers(cfg config.AppConfig, log *zap.Logger, db *gorm.DB, tables *agronomy.Tables, m *metrics.Metrics) (router.Handlers, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return router.Handlers{}, fmt.Errorf("timezone: %w", err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	stores := healthCtrlImp.Stores{
		Farmers: farmerRepoImp.New(db),
		Uploads: uploadRepoImp.New(db),
		KB:      kbRepoImp.New(db),
	}

	// Uploads
	uploads := uploadSvcImp.New(stores.Uploads, cfg.UploadMaxBytes, m)

	// Knowledge base
	kb := kbSvcImp.New(stores.KB, nil, cfg.KBAllowedDomains, cfg.KBMaxBytesPerPage)

	// Pest detection
	sampler := ai.NewRandomSampler(tables, cfg.DiagnosisSeed)
	pests := pestSvcImp.New(tables, sampler, uploads, m, log)

	// Weather
	weather := weatherSvcImp.New(weatherProvider.NewStatic(forecastDays, now), cfg.WeatherCacheTTL, m, now)

	advisory := advisorySvcImp.New(tables, kb, m, log, loc, time.Now)
	farmers := farmerSvcImp.New(stores.Farmers, tables)

	return router.Handlers{
		Soil:     soilCtrlImp.New(m),
		Crop:     cropCtrlImp.New(tables),
		Advisory: advisoryCtrlImp.New(advisory),
		Pest:     pestCtrlImp.New(pests),
		Market:   marketCtrlImp.New(marketSvcImp.New(tables)),
		Weather:  weatherCtrlImp.New(weather),
		Upload:   uploadCtrlImp.New(uploads),
		Farmer:   farmerCtrlImp.New(farmers),
		KB:       kbCtrlImp.New(kb),
		Health:   healthCtrlImp.NewHealthCtrl(db, stores, tables, router.Version),
	}, nil
}
