package native

import "errors"

var (
	ErrLibraryOpen         = errors.New("failed to open native library")
	ErrSymbolNotFound      = errors.New("native symbol not found")
	ErrLibraryClosed       = errors.New("native library is closed")
	ErrUnbindable          = errors.New("native symbol cannot be bound")
	ErrUnsupportedPlatform = errors.New("native loading is not supported on this platform")
)
