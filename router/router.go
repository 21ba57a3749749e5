package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"cropadvisor/config"
	"cropadvisor/pkg/metrics"
	"cropadvisor/pkg/middleware"

	advisoryCtrl "cropadvisor/pkg/advisory/controller"
	cropCtrl "cropadvisor/pkg/crop/controller"
	farmerCtrl "cropadvisor/pkg/farmer/controller"
	kbCtrl "cropadvisor/pkg/kb/controller"
	marketCtrl "cropadvisor/pkg/market/controller"
	pestCtrl "cropadvisor/pkg/pest/controller"
	soilCtrl "cropadvisor/pkg/soil/controller"
	uploadCtrl "cropadvisor/pkg/upload/controller"
	weatherCtrl "cropadvisor/pkg/weather/controller"
)

const Version = "1.0.0"

type Handlers struct {
	Soil     soilCtrl.SoilController
	Crop     cropCtrl.CropController
	Advisory advisoryCtrl.AdvisoryController
	Pest     pestCtrl.PestController
	Market   marketCtrl.MarketController
	Weather  weatherCtrl.WeatherController
	Upload   uploadCtrl.UploadController
	Farmer   farmerCtrl.FarmerController
	KB       kbCtrl.KBController
	Health   interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, cfg config.AppConfig, log *zap.Logger, m *metrics.Metrics, h Handlers) *echo.Echo {
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log, cfg.IsProduction())

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics(m))
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	e.Use(echoMiddleware.GzipWithConfig(echoMiddleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))

	e.GET("/", root)
	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	api := e.Group("/api", rateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow))

	api.POST("/soil/analyze", h.Soil.Analyze)

	api.GET("/crops", h.Crop.List)
	api.GET("/crops/:key", h.Crop.Get)

	api.POST("/advisory/recommend", h.Advisory.Recommend)
	api.POST("/advisory/fertilizer", h.Advisory.Fertilizer)

	api.POST("/pests/detect", h.Pest.Detect)
	api.GET("/pests/crop/:crop", h.Pest.ByCrop)
	api.GET("/pests/:key", h.Pest.Get)

	api.GET("/market/prices", h.Market.Prices)
	api.GET("/market/trends/:crop", h.Market.Trends)
	api.GET("/market/nearby/:location", h.Market.Nearby)

	api.GET("/weather/advisory/:location", h.Weather.Advisory)
	api.GET("/weather/:location", h.Weather.Get)

	api.POST("/upload/image", h.Upload.Image)
	api.GET("/upload/:id", h.Upload.Get)

	api.POST("/users/register", h.Farmer.Register)
	api.GET("/users/:id", h.Farmer.Get)

	api.POST("/kb/ingest", h.KB.IngestText)
	api.POST("/kb/ingest/url", h.KB.IngestURL)
	api.GET("/kb/search", h.KB.Search)
	return e
}

func root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Welcome to Smart Crop Advisory System API",
		"version": Version,
		"health":  "/health",
	})
}

// rateLimiter allows n requests per window per client IP, with bursts of n.
func rateLimiter(n int, window time.Duration) echo.MiddlewareFunc {
	store := echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(n) / window.Seconds()),
		Burst:     n,
		ExpiresIn: window,
	})
	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
		},
	})
}
