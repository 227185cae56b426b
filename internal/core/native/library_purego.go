//go:build darwin && (amd64 || arm64)

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

var (
	_ Resolver = (*Library)(nil)
	_ Binder   = (*Library)(nil)
)

// Library is an engine shared object opened with dlopen.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the engine library at path.
func Open(path string) (*Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryOpen, path, err)
	}
	return &Library{path: path, handle: h}, nil
}

func (l *Library) Path() string { return l.path }

func (l *Library) Resolve(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, ErrLibraryClosed
	}
	sym, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return sym, nil
}

// Bind registers fptr against symbol. purego reports unsupported signatures
// by panicking; those come back as ErrUnbindable.
func (l *Library) Bind(fptr any, symbol uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnbindable, r)
		}
	}()
	purego.RegisterFunc(fptr, symbol)
	return nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

// NewCallback exposes a Go func to native code as a C function pointer.
// Callbacks are never freed; install them once per process.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}
