package native

import "github.com/caveman250/PlumbusEngine/internal/core/models"

// Surface is the engine's exported call table seen from Go. Every method is a
// single synchronous native call. Unknown or stale handles yield whatever the
// engine returns for them, usually zero values.
type Surface interface {
	// GetComponent returns the handle of the entity's component of the given
	// kind code, or models.NullHandle if it has none.
	GetComponent(entity models.Handle, kind int32) models.Handle
	// IsValidHandle reports whether the engine still knows the handle. Engines
	// that do not export a validity probe report true for every handle.
	IsValidHandle(handle models.Handle) bool

	TransformGetTranslation(component models.Handle) Vec3
	TransformSetTranslation(component models.Handle, v Vec3)
	TransformGetRotation(component models.Handle) Vec3
	TransformSetRotation(component models.Handle, v Vec3)
	TransformGetScale(component models.Handle) Vec3
	TransformSetScale(component models.Handle, v Vec3)
	TransformTranslate(component models.Handle, delta Vec3)
	TransformRotate(component models.Handle, delta Vec3)
	TransformScale(component models.Handle, delta Vec3)

	PointLightGetColour(component models.Handle) Vec3
	PointLightSetColour(component models.Handle, colour Vec3)
	PointLightGetRadius(component models.Handle) float32
	PointLightSetRadius(component models.Handle, radius float32)

	CameraGetViewMatrix() Mat4
	CameraSetViewMatrix(m Mat4)
	CameraGetProjectionMatrix() Mat4
	CameraSetProjectionMatrix(m Mat4)
	CameraGetPosition() Vec3
	CameraSetPosition(v Vec3)
	CameraGetRotation() Vec3
	CameraSetRotation(v Vec3)
	CameraGetForward() Vec3

	InputIsKeyDown(code int32) bool
	InputIsKeyUp(code int32) bool
	InputIsMouseButtonDown(button int32) bool
	InputIsMouseButtonUp(button int32) bool
	InputGetMousePos() Vec2

	ApplicationGetDeltaTime() float64
}

var _ Surface = (*boundSurface)(nil)

// boundSurface calls through a Table resolved from a native library.
type boundSurface struct {
	t *Table
}

// NewSurface adapts a bound table. Optional entries that the library did not
// export degrade to the documented defaults.
func NewSurface(t *Table) Surface {
	return &boundSurface{t: t}
}

func (s *boundSurface) GetComponent(entity models.Handle, kind int32) models.Handle {
	return models.Handle(s.t.GetComponent(uint64(entity), kind))
}

func (s *boundSurface) IsValidHandle(handle models.Handle) bool {
	if s.t.IsValidHandle == nil {
		return true
	}
	return s.t.IsValidHandle(uint64(handle))
}

func (s *boundSurface) TransformGetTranslation(c models.Handle) Vec3 {
	return s.t.TransformGetTranslation(uint64(c))
}

func (s *boundSurface) TransformSetTranslation(c models.Handle, v Vec3) {
	s.t.TransformSetTranslation(uint64(c), v)
}

func (s *boundSurface) TransformGetRotation(c models.Handle) Vec3 {
	return s.t.TransformGetRotation(uint64(c))
}

func (s *boundSurface) TransformSetRotation(c models.Handle, v Vec3) {
	s.t.TransformSetRotation(uint64(c), v)
}

func (s *boundSurface) TransformGetScale(c models.Handle) Vec3 {
	return s.t.TransformGetScale(uint64(c))
}

func (s *boundSurface) TransformSetScale(c models.Handle, v Vec3) {
	s.t.TransformSetScale(uint64(c), v)
}

func (s *boundSurface) TransformTranslate(c models.Handle, delta Vec3) {
	s.t.TransformTranslate(uint64(c), delta)
}

func (s *boundSurface) TransformRotate(c models.Handle, delta Vec3) {
	s.t.TransformRotate(uint64(c), delta)
}

func (s *boundSurface) TransformScale(c models.Handle, delta Vec3) {
	s.t.TransformScale(uint64(c), delta)
}

func (s *boundSurface) PointLightGetColour(c models.Handle) Vec3 {
	if s.t.PointLightGetColour == nil {
		return Vec3{}
	}
	return s.t.PointLightGetColour(uint64(c))
}

func (s *boundSurface) PointLightSetColour(c models.Handle, colour Vec3) {
	if s.t.PointLightSetColour != nil {
		s.t.PointLightSetColour(uint64(c), colour)
	}
}

func (s *boundSurface) PointLightGetRadius(c models.Handle) float32 {
	if s.t.PointLightGetRadius == nil {
		return 0
	}
	return s.t.PointLightGetRadius(uint64(c))
}

func (s *boundSurface) PointLightSetRadius(c models.Handle, radius float32) {
	if s.t.PointLightSetRadius != nil {
		s.t.PointLightSetRadius(uint64(c), radius)
	}
}

func (s *boundSurface) CameraGetViewMatrix() Mat4 { return s.t.CameraGetViewMatrix() }

func (s *boundSurface) CameraSetViewMatrix(m Mat4) { s.t.CameraSetViewMatrix(m) }

func (s *boundSurface) CameraGetProjectionMatrix() Mat4 { return s.t.CameraGetProjectionMatrix() }

func (s *boundSurface) CameraSetProjectionMatrix(m Mat4) { s.t.CameraSetProjectionMatrix(m) }

func (s *boundSurface) CameraGetPosition() Vec3 { return s.t.CameraGetPosition() }

func (s *boundSurface) CameraSetPosition(v Vec3) { s.t.CameraSetPosition(v) }

func (s *boundSurface) CameraGetRotation() Vec3 { return s.t.CameraGetRotation() }

func (s *boundSurface) CameraSetRotation(v Vec3) { s.t.CameraSetRotation(v) }

// CameraGetForward falls back to the third row of the view matrix for engines
// built before Camera_GetForward was exported.
func (s *boundSurface) CameraGetForward() Vec3 {
	if s.t.CameraGetForward != nil {
		return s.t.CameraGetForward()
	}
	return ForwardFromView(s.t.CameraGetViewMatrix())
}

func (s *boundSurface) InputIsKeyDown(code int32) bool { return s.t.InputIsKeyDown(code) }

func (s *boundSurface) InputIsKeyUp(code int32) bool { return s.t.InputIsKeyUp(code) }

func (s *boundSurface) InputIsMouseButtonDown(button int32) bool {
	return s.t.InputIsMouseButtonDown(button)
}

func (s *boundSurface) InputIsMouseButtonUp(button int32) bool {
	return s.t.InputIsMouseButtonUp(button)
}

func (s *boundSurface) InputGetMousePos() Vec2 { return s.t.InputGetMousePos() }

func (s *boundSurface) ApplicationGetDeltaTime() float64 { return s.t.ApplicationGetDeltaTime() }

// ForwardFromView extracts the camera forward axis the way the engine does:
// (view[0][2], view[1][2], view[2][2]).
func ForwardFromView(m Mat4) Vec3 {
	return Vec3{X: m.Z0, Y: m.Z1, Z: m.Z2}
}
