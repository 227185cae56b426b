package scene

import (
	"errors"
	"fmt"

	"github.com/caveman250/PlumbusEngine/internal/core/models"
)

var (
	// Lookup errors

	ErrUnsupportedComponentKind = errors.New("unsupported component kind")
	ErrComponentNotFound        = errors.New("component not found")

	// Handle errors

	ErrStaleHandle = errors.New("stale handle")
)

// ErrorCode classifies lookup failures for callers that log or count them.
type ErrorCode int

const (
	ErrorCodeUnknown           ErrorCode = 0
	ErrorCodeUnsupportedKind   ErrorCode = 1001
	ErrorCodeComponentNotFound ErrorCode = 1002
	ErrorCodeStaleHandle       ErrorCode = 1003
)

// LookupError carries the entity and kind a failed lookup was made for.
type LookupError struct {
	Code   ErrorCode
	Entity models.Handle
	Kind   Kind
	Err    error
}

func newLookupError(entity models.Handle, kind Kind, err error) *LookupError {
	return &LookupError{Code: codeOf(err), Entity: entity, Kind: kind, Err: err}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("scene: %s on entity %s: %v", e.Kind, e.Entity, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func codeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUnsupportedComponentKind):
		return ErrorCodeUnsupportedKind
	case errors.Is(err, ErrComponentNotFound):
		return ErrorCodeComponentNotFound
	case errors.Is(err, ErrStaleHandle):
		return ErrorCodeStaleHandle
	default:
		return ErrorCodeUnknown
	}
}

// CodeOf returns the ErrorCode of a lookup error, or ErrorCodeUnknown.
func CodeOf(err error) ErrorCode {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code
	}
	return codeOf(err)
}
