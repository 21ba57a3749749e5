package agronomy

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownCrop  = errors.New("unknown crop")
	ErrUnknownPest  = errors.New("unknown pest")
)

// Error carries a stable code and a caller-safe message on top of one of
// the sentinel errors above.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInput(format string, args ...any) error {
	return &Error{Code: "INVALID_INPUT", Message: fmt.Sprintf(format, args...), Err: ErrInvalidInput}
}

// InvalidInput is exported for transports that reject a request before it
// reaches the rules (missing JSON fields, bad multipart parts).
func InvalidInput(format string, args ...any) error { return invalidInput(format, args...) }

func unknownCrop(key string) error {
	return &Error{Code: "UNKNOWN_CROP", Message: fmt.Sprintf("crop '%s' not found", key), Err: ErrUnknownCrop}
}

func unknownPest(key string) error {
	return &Error{Code: "UNKNOWN_PEST", Message: fmt.Sprintf("pest '%s' not found", key), Err: ErrUnknownPest}
}

func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsUnknownCrop(err error) bool  { return errors.Is(err, ErrUnknownCrop) }
func IsUnknownPest(err error) bool  { return errors.Is(err, ErrUnknownPest) }
