package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropadvisor/pkg/agronomy"
)

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// ErrorHandler maps handler errors to status codes. When production is set,
// messages of unexpected errors are replaced with a generic one.
func ErrorHandler(log *zap.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := classify(err, production)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			log.Warn("write error response", zap.Error(werr))
		}
	}
}

func classify(err error, production bool) (int, ErrorBody) {
	var ae *agronomy.Error
	var he *echo.HTTPError

	switch {
	case agronomy.IsInvalidInput(err):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_INPUT", Error: userMessage(err, ae)}
	case agronomy.IsUnknownCrop(err):
		return http.StatusNotFound, ErrorBody{Code: "UNKNOWN_CROP", Error: userMessage(err, ae)}
	case agronomy.IsUnknownPest(err):
		return http.StatusNotFound, ErrorBody{Code: "UNKNOWN_PEST", Error: userMessage(err, ae)}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, ErrorBody{Code: "NOT_FOUND", Error: "record not found"}
	case errors.As(err, &he):
		return he.Code, ErrorBody{Code: httpCode(he.Code), Error: httpMessage(he)}
	}

	msg := err.Error()
	if production {
		msg = "Internal Server Error"
	}
	return http.StatusInternalServerError, ErrorBody{Code: "INTERNAL_ERROR", Error: msg}
}

func userMessage(err error, ae *agronomy.Error) string {
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

func httpCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func httpMessage(he *echo.HTTPError) string {
	if he.Code == http.StatusNotFound && he.Message == http.StatusText(http.StatusNotFound) {
		return "Endpoint not found"
	}
	if s, ok := he.Message.(string); ok && s != "" {
		return s
	}
	if he.Internal != nil {
		return he.Internal.Error()
	}
	return http.StatusText(he.Code)
}
