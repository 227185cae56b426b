package native

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Table is the engine's export table. Each field is bound to the first symbol
// of its ffi tag that the library exports; later names are aliases used by
// older engine builds. A trailing "optional" marks entries that may be missing.
type Table struct {
	GetComponent  func(entity uint64, kind int32) uint64 `ffi:"GetComponent,GameObject_GetComponent"`
	IsValidHandle func(handle uint64) bool               `ffi:"Engine_IsValidHandle,optional"`

	TransformGetTranslation func(component uint64) Vec3    `ffi:"TranslationComponent_GetTranslation,GetTranslation"`
	TransformSetTranslation func(component uint64, v Vec3) `ffi:"TranslationComponent_SetTranslation,SetTranslation"`
	TransformGetRotation    func(component uint64) Vec3    `ffi:"TranslationComponent_GetRotation,GetRotation"`
	TransformSetRotation    func(component uint64, v Vec3) `ffi:"TranslationComponent_SetRotation,SetRotation"`
	TransformGetScale       func(component uint64) Vec3    `ffi:"TranslationComponent_GetScale,GetScale"`
	TransformSetScale       func(component uint64, v Vec3) `ffi:"TranslationComponent_SetScale,SetScale"`
	TransformTranslate      func(component uint64, d Vec3) `ffi:"TranslationComponent_Translate,Translate"`
	TransformRotate         func(component uint64, d Vec3) `ffi:"TranslationComponent_Rotate,Rotate"`
	TransformScale          func(component uint64, d Vec3) `ffi:"TranslationComponent_Scale,Scale"`

	PointLightGetColour func(component uint64) Vec3       `ffi:"PointLightComponent_GetColour,optional"`
	PointLightSetColour func(component uint64, c Vec3)    `ffi:"PointLightComponent_SetColour,optional"`
	PointLightGetRadius func(component uint64) float32    `ffi:"PointLightComponent_GetRadius,optional"`
	PointLightSetRadius func(component uint64, r float32) `ffi:"PointLightComponent_SetRadius,optional"`

	CameraGetViewMatrix       func() Mat4  `ffi:"Camera_GetViewMatrix"`
	CameraSetViewMatrix       func(m Mat4) `ffi:"Camera_SetViewMatrix"`
	CameraGetProjectionMatrix func() Mat4  `ffi:"Camera_GetProjectionMatrix"`
	CameraSetProjectionMatrix func(m Mat4) `ffi:"Camera_SetProjectionMatrix"`
	CameraGetPosition         func() Vec3  `ffi:"Camera_GetPosition"`
	CameraSetPosition         func(v Vec3) `ffi:"Camera_SetPosition"`
	CameraGetRotation         func() Vec3  `ffi:"Camera_GetRotation"`
	CameraSetRotation         func(v Vec3) `ffi:"Camera_SetRotation"`
	CameraGetForward          func() Vec3  `ffi:"Camera_GetForward,optional"`

	InputIsKeyDown         func(code int32) bool   `ffi:"Input_IsKeyDown,IsKeyDown"`
	InputIsKeyUp           func(code int32) bool   `ffi:"Input_IsKeyUp,IsKeyUp"`
	InputIsMouseButtonDown func(button int32) bool `ffi:"Input_IsMouseButtonDown,IsMouseButtonDown"`
	InputIsMouseButtonUp   func(button int32) bool `ffi:"Input_IsMouseButtonUp,IsMouseButtonUp"`
	InputGetMousePos       func() Vec2             `ffi:"Input_GetMousePos,GetMousePos"`

	ApplicationGetDeltaTime func() float64 `ffi:"Application_GetDeltaTime"`

	RunApplication   func()                         `ffi:"RunApplication,optional"`
	ScriptingInstall func(callbacks *HostCallbacks) `ffi:"Scripting_Install,optional"`

	resolved map[string]string
}

// Symbol describes one entry of the Table.
type Symbol struct {
	Field    string
	Names    []string // primary name first, then aliases
	Optional bool
}

// Resolver looks a symbol up in a loaded library.
type Resolver interface {
	Resolve(name string) (uintptr, error)
}

// Binder turns a resolved symbol address into a callable Go func stored at fptr.
type Binder interface {
	Bind(fptr any, symbol uintptr) error
}

// Symbols lists the table entries in declaration order.
func Symbols() []Symbol {
	t := reflect.TypeOf(Table{})
	out := make([]Symbol, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		tag := field.Tag.Get("ffi")
		if tag == "" {
			continue
		}
		sym := Symbol{Field: field.Name}
		for _, part := range strings.Split(tag, ",") {
			part = strings.TrimSpace(part)
			switch part {
			case "":
			case "optional":
				sym.Optional = true
			default:
				sym.Names = append(sym.Names, part)
			}
		}
		out = append(out, sym)
	}
	return out
}

// Bind resolves every table entry. overrides maps a primary symbol name to
// names tried before the built-in ones, which is how a new engine build that
// renamed an export is supported without touching code.
//
// On a *BindError the returned table is only partially bound: it is useful
// for reporting what resolved, never for calls.
func Bind(r Resolver, b Binder, overrides map[string][]string) (*Table, error) {
	t := &Table{resolved: make(map[string]string)}
	v := reflect.ValueOf(t).Elem()

	var (
		missing []string
		failed  []error
	)
	for _, sym := range Symbols() {
		names := append(append([]string{}, overrides[sym.Names[0]]...), sym.Names...)

		var (
			addr  uintptr
			found string
		)
		for _, name := range names {
			a, err := r.Resolve(name)
			if err != nil || a == 0 {
				continue
			}
			addr, found = a, name
			break
		}

		if found == "" {
			if !sym.Optional {
				missing = append(missing, sym.Names[0])
			}
			continue
		}

		if err := b.Bind(v.FieldByName(sym.Field).Addr().Interface(), addr); err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", found, err))
			continue
		}
		t.resolved[sym.Field] = found
	}

	if len(missing) > 0 || len(failed) > 0 {
		return t, &BindError{Missing: missing, Failed: failed}
	}
	return t, nil
}

// Resolved reports which exported name each bound field ended up using.
func (t *Table) Resolved() map[string]string {
	out := make(map[string]string, len(t.resolved))
	for k, v := range t.resolved {
		out[k] = v
	}
	return out
}

// BindError lists every required symbol the library does not export, and
// every export that resolved but could not be bound.
type BindError struct {
	Missing []string
	Failed  []error
}

func (e *BindError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", ErrSymbolNotFound.Error(), strings.Join(e.Missing, ", ")))
	}
	for _, err := range e.Failed {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *BindError) Unwrap() []error {
	out := make([]error, 0, len(e.Failed)+1)
	if len(e.Missing) > 0 {
		out = append(out, ErrSymbolNotFound)
	}
	return append(out, e.Failed...)
}

// IsMissing reports whether err is a BindError naming symbol.
func IsMissing(err error, symbol string) bool {
	var be *BindError
	if !errors.As(err, &be) {
		return false
	}
	for _, m := range be.Missing {
		if m == symbol {
			return true
		}
	}
	return false
}
