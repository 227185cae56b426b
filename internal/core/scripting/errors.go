package scripting

import "errors"

var (
	ErrScriptNotRegistered     = errors.New("script not registered")
	ErrScriptAlreadyRegistered = errors.New("script already registered")
	ErrInstanceNotFound        = errors.New("script instance not found")
	ErrNilFactory              = errors.New("nil script factory")
)
