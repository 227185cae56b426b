//go:build !(darwin && (amd64 || arm64))

package native

var (
	_ Resolver = (*Library)(nil)
	_ Binder   = (*Library)(nil)
)

// Library is unavailable on this platform; Open always fails. purego only
// passes Vec2, Vec3 and Mat4 by value on darwin.
type Library struct{}

func Open(path string) (*Library, error) {
	return nil, ErrUnsupportedPlatform
}

func (l *Library) Path() string { return "" }

func (l *Library) Resolve(name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func (l *Library) Bind(fptr any, symbol uintptr) error { return ErrUnsupportedPlatform }

func (l *Library) Close() error { return nil }

func NewCallback(fn any) uintptr { return 0 }
