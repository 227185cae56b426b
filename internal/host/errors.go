package host

import "errors"

var (
	ErrNotSimulated = errors.New("host is not simulated")
	ErrNotNative    = errors.New("host is not attached to an engine library")
	ErrNoRunLoop    = errors.New("engine library does not export RunApplication")
	ErrNoLibrary    = errors.New("no engine library configured")
)
