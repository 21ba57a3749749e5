package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder is the slice of metrics.Metrics the middleware needs.
type HTTPRecorder interface {
	RecordHTTPRequest(method, path string, status int, seconds float64)
}

// Metrics records request count and latency labelled by route template,
// so /api/crops/rice and /api/crops/wheat share one series.
func Metrics(rec HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" || route == "/*" {
				route = "unmatched"
			}
			rec.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start).Seconds())
			return nil
		}
	}
}
