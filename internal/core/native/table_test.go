package native

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLib resolves names to small integers and binds them to Go funcs.
type fakeLib struct {
	exports map[string]uintptr
	funcs   map[uintptr]any
	broken  map[string]bool
	next    uintptr
}

func newFakeLib() *fakeLib {
	return &fakeLib{exports: map[string]uintptr{}, funcs: map[uintptr]any{}, broken: map[string]bool{}, next: 1}
}

func (l *fakeLib) export(name string, fn any) {
	l.exports[name] = l.next
	l.funcs[l.next] = fn
	l.next++
}

func (l *fakeLib) Resolve(name string) (uintptr, error) {
	if a, ok := l.exports[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
}

func (l *fakeLib) Bind(fptr any, symbol uintptr) error {
	for name, addr := range l.exports {
		if addr == symbol && l.broken[name] {
			return fmt.Errorf("%w: struct return values unsupported", ErrUnbindable)
		}
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(l.funcs[symbol]))
	return nil
}

// exportAll registers a no-op for every required symbol under the given
// naming generation (0 = primary names, 1 = first alias when present).
func exportAll(l *fakeLib, generation int) {
	tt := reflect.TypeOf(Table{})
	for _, sym := range Symbols() {
		if sym.Optional {
			continue
		}
		name := sym.Names[0]
		if generation > 0 && len(sym.Names) > generation {
			name = sym.Names[generation]
		}
		f, _ := tt.FieldByName(sym.Field)
		fn := reflect.MakeFunc(f.Type, func(args []reflect.Value) []reflect.Value {
			out := make([]reflect.Value, f.Type.NumOut())
			for i := range out {
				out[i] = reflect.Zero(f.Type.Out(i))
			}
			return out
		})
		l.export(name, fn.Interface())
	}
}

func TestSymbolsParsesTags(t *testing.T) {
	syms := map[string]Symbol{}
	for _, s := range Symbols() {
		syms[s.Field] = s
	}

	tr := syms["TransformGetTranslation"]
	assert.Equal(t, []string{"TranslationComponent_GetTranslation", "GetTranslation"}, tr.Names)
	assert.False(t, tr.Optional)

	valid := syms["IsValidHandle"]
	assert.Equal(t, []string{"Engine_IsValidHandle"}, valid.Names)
	assert.True(t, valid.Optional)

	_, hasResolved := syms["resolved"]
	assert.False(t, hasResolved)
}

func TestBindUsesPrimaryNames(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 0)
	lib.export("GetComponent", func(entity uint64, kind int32) uint64 {
		if entity == 7 && kind == 0 {
			return 42
		}
		return 0
	})

	table, err := Bind(lib, lib, nil)
	require.NoError(t, err)
	assert.Equal(t, "GetComponent", table.Resolved()["GetComponent"])
	assert.Nil(t, table.IsValidHandle)

	s := NewSurface(table)
	assert.Equal(t, models.Handle(42), s.GetComponent(7, 0))
	assert.Equal(t, models.NullHandle, s.GetComponent(7, 2))
	assert.True(t, s.IsValidHandle(123), "no validity probe means every handle is accepted")
}

func TestBindFallsBackToAliases(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 1)

	var rotated Vec3
	lib.export("Rotate", func(component uint64, d Vec3) { rotated = d })

	table, err := Bind(lib, lib, nil)
	require.NoError(t, err)
	assert.Equal(t, "Rotate", table.Resolved()["TransformRotate"])
	assert.Equal(t, "IsKeyDown", table.Resolved()["InputIsKeyDown"])

	NewSurface(table).TransformRotate(1, Vec3{Y: 0.001})
	assert.Equal(t, Vec3{Y: 0.001}, rotated)
}

func TestBindOverridesWin(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 0)
	lib.export("Engine_GetFrameDelta", func() float64 { return 0.25 })

	table, err := Bind(lib, lib, map[string][]string{
		"Application_GetDeltaTime": {"Engine_GetFrameDelta"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Engine_GetFrameDelta", table.Resolved()["ApplicationGetDeltaTime"])
	assert.Equal(t, 0.25, NewSurface(table).ApplicationGetDeltaTime())
}

func TestBindReportsEveryMissingSymbol(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 0)
	delete(lib.exports, "Camera_GetPosition")
	delete(lib.exports, "Application_GetDeltaTime")

	table, err := Bind(lib, lib, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymbolNotFound))
	assert.Equal(t, "GetComponent", table.Resolved()["GetComponent"], "partial table reports what resolved")
	assert.True(t, IsMissing(err, "Camera_GetPosition"))
	assert.True(t, IsMissing(err, "Application_GetDeltaTime"))
	assert.False(t, IsMissing(err, "GetComponent"))
}

func TestBindReportsUnbindableExports(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 0)
	lib.broken["Camera_GetPosition"] = true

	var (
		table *Table
		err   error
	)
	require.NotPanics(t, func() { table, err = Bind(lib, lib, nil) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnbindable))
	assert.False(t, errors.Is(err, ErrSymbolNotFound))
	assert.Contains(t, err.Error(), "Camera_GetPosition")
	assert.Nil(t, table.CameraGetPosition)
	assert.NotContains(t, table.Resolved(), "CameraGetPosition")
	assert.Equal(t, "GetComponent", table.Resolved()["GetComponent"])
}

func TestForwardFallsBackToViewMatrix(t *testing.T) {
	lib := newFakeLib()
	exportAll(lib, 0)
	lib.export("Camera_GetViewMatrix", func() Mat4 {
		return Mat4{Z0: 0.5, Z1: -0.5, Z2: 0.7}
	})

	table, err := Bind(lib, lib, nil)
	require.NoError(t, err)
	assert.Equal(t, Vec3{X: 0.5, Y: -0.5, Z: 0.7}, NewSurface(table).CameraGetForward())
}
