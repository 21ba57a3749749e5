package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"cropadvisor/pkg/agronomy"
)

func newEcho(log *zap.Logger, production bool) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(log, production)
	return e
}

func serve(t *testing.T, e *echo.Echo, method, path string) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	var body ErrorBody
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestErrorHandlerMapping(t *testing.T) {
	e := newEcho(zap.NewNop(), false)
	_, err := agronomy.DefaultTables().Crop("quinoa")
	unknownCrop := err
	_, err = agronomy.DefaultTables().LookupPest("locust")
	unknownPest := err

	routes := map[string]error{
		"/invalid":  agronomy.InvalidInput("month must be 1..12, got %d", 13),
		"/crop":     unknownCrop,
		"/pest":     unknownPest,
		"/record":   fmt.Errorf("farmer 9: %w", gorm.ErrRecordNotFound),
		"/conflict": echo.NewHTTPError(http.StatusConflict, "phone already registered"),
		"/boom":     errors.New("database is locked"),
	}
	for path, rerr := range routes {
		rerr := rerr
		e.GET(path, func(echo.Context) error { return rerr })
	}

	tests := []struct {
		path   string
		status int
		code   string
		msg    string
	}{
		{"/invalid", http.StatusBadRequest, "INVALID_INPUT", "month must be 1..12, got 13"},
		{"/crop", http.StatusNotFound, "UNKNOWN_CROP", "crop 'quinoa' not found"},
		{"/pest", http.StatusNotFound, "UNKNOWN_PEST", "pest 'locust' not found"},
		{"/record", http.StatusNotFound, "NOT_FOUND", "record not found"},
		{"/conflict", http.StatusConflict, "CONFLICT", "phone already registered"},
		{"/boom", http.StatusInternalServerError, "INTERNAL_ERROR", "database is locked"},
		{"/nowhere", http.StatusNotFound, "NOT_FOUND", "Endpoint not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := serve(t, e, http.MethodGet, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestErrorHandlerHidesDetailsInProduction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newEcho(zap.New(core), true)
	e.GET("/boom", func(echo.Context) error { return errors.New("open /var/lib/secret.db: permission denied") })
	e.GET("/invalid", func(echo.Context) error { return agronomy.InvalidInput("ph is required") })

	rec, body := serve(t, e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body.Error)
	require.Equal(t, 1, logs.FilterMessage("request failed").Len())

	_, body = serve(t, e, http.MethodGet, "/invalid")
	assert.Equal(t, "ph is required", body.Error)
}

func TestErrorHandlerHead(t *testing.T) {
	e := newEcho(zap.NewNop(), false)
	rec, _ := serve(t, e, http.MethodHead, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := newEcho(zap.NewNop(), false)
	e.Use(echoMiddleware.RequestID())
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/api/crops/:key", func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{"key": c.Param("key")}) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(echo.Context) error { return errors.New("boom") })

	serve(t, e, http.MethodGet, "/api/crops/rice")
	serve(t, e, http.MethodGet, "/health")
	serve(t, e, http.MethodGet, "/api/crops")
	serve(t, e, http.MethodGet, "/fail")

	entries := logs.All()
	require.Len(t, entries, 3, "health is not logged")

	ok := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/api/crops/:key", ok["route"])
	assert.Equal(t, int64(200), ok["status"])
	assert.NotEmpty(t, ok["request_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, int64(500), entries[2].ContextMap()["status"])
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeRecorder struct{ got []recordedRequest }

func (f *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ float64) {
	f.got = append(f.got, recordedRequest{method, path, status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	e := newEcho(zap.NewNop(), false)
	e.Use(Metrics(rec))
	e.GET("/api/pests/:key", func(c echo.Context) error {
		if c.Param("key") == "locust" {
			_, err := agronomy.DefaultTables().LookupPest("locust")
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	serve(t, e, http.MethodGet, "/api/pests/aphids")
	serve(t, e, http.MethodGet, "/api/pests/locust")
	serve(t, e, http.MethodGet, "/missing")

	require.Len(t, rec.got, 3)
	assert.Equal(t, recordedRequest{"GET", "/api/pests/:key", 200}, rec.got[0])
	assert.Equal(t, recordedRequest{"GET", "/api/pests/:key", 404}, rec.got[1])
	assert.Equal(t, 404, rec.got[2].status)
}
