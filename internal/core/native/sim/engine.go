// Package sim is an in-process stand-in for the native engine. It implements
// native.Surface with plain Go state so bindings and scripts can run without
// the shared library.
package sim

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/marshal"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

var _ native.Surface = (*Engine)(nil)

type entity struct {
	name       string
	components map[int32]models.Handle
}

type transform struct {
	owner       models.Handle
	translation native.Vec3
	rotation    native.Vec3
	scale       native.Vec3
}

type light struct {
	owner  models.Handle
	colour native.Vec3
	radius float32
}

type camera struct {
	view, projection   mgl32.Mat4
	position, rotation mgl32.Vec3
}

type Option func(*Engine)

// WithoutValidityProbe makes IsValidHandle accept every handle, like an
// engine build that does not export Engine_IsValidHandle.
func WithoutValidityProbe() Option {
	return func(e *Engine) { e.probe = false }
}

// WithFirstHandle sets the first handle value minted.
func WithFirstHandle(h models.Handle) Option {
	return func(e *Engine) {
		if h != models.NullHandle {
			e.next = h
		}
	}
}

// WithAspect sets the projection aspect ratio used by the default camera.
// Non-positive ratios are ignored.
func WithAspect(aspect float32) Option {
	return func(e *Engine) {
		if aspect > 0 {
			e.aspect = aspect
		}
	}
}

type Engine struct {
	mu sync.Mutex

	next   models.Handle
	order  []models.Handle
	probe  bool
	aspect float32

	entities   map[models.Handle]*entity
	transforms map[models.Handle]*transform
	lights     map[models.Handle]*light
	scripts    map[models.Handle]models.Handle

	camera    camera
	keys      map[int32]bool
	buttons   map[int32]bool
	mouse     native.Vec2
	deltaTime float64

	calls map[string]int
}

func New(opts ...Option) *Engine {
	e := &Engine{
		next:       1,
		probe:      true,
		aspect:     16.0 / 9.0,
		entities:   make(map[models.Handle]*entity),
		transforms: make(map[models.Handle]*transform),
		lights:     make(map[models.Handle]*light),
		scripts:    make(map[models.Handle]models.Handle),
		keys:       make(map[int32]bool),
		buttons:    make(map[int32]bool),
		mouse:      native.Vec2{X: 400, Y: 300},
		calls:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.camera.position = mgl32.Vec3{23, 14.5, 0}
	e.camera.rotation = mgl32.Vec3{-18, 0, 90}
	e.camera.projection = mgl32.Perspective(mgl32.DegToRad(30), e.aspect, 0.1, 256)
	e.updateViewLocked()

	return e
}

func (e *Engine) mint() models.Handle {
	h := e.next
	e.next++
	return h
}

func (e *Engine) count(name string) {
	e.calls[name]++
}

// Calls returns how many times the named Surface method was invoked.
func (e *Engine) Calls(method string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[method]
}

// SpawnEntity creates an entity with no components.
func (e *Engine) SpawnEntity(name string) models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.mint()
	e.entities[h] = &entity{name: name, components: make(map[int32]models.Handle)}
	e.order = append(e.order, h)
	return h
}

// AddTransform attaches a transform to the entity and returns its handle.
func (e *Engine) AddTransform(owner models.Handle, translation, rotation, scale native.Vec3) models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entities[owner]
	if !ok {
		return models.NullHandle
	}
	h := e.mint()
	e.transforms[h] = &transform{owner: owner, translation: translation, rotation: rotation, scale: scale}
	ent.components[native.ComponentTranslation] = h
	return h
}

// AddPointLight attaches a point light to the entity and returns its handle.
func (e *Engine) AddPointLight(owner models.Handle, colour native.Vec3, radius float32) models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entities[owner]
	if !ok {
		return models.NullHandle
	}
	h := e.mint()
	e.lights[h] = &light{owner: owner, colour: colour, radius: radius}
	ent.components[native.ComponentPointLight] = h
	return h
}

// AddScript mints the handle of a script component attached to the entity.
// Script components are not reachable through GetComponent.
func (e *Engine) AddScript(owner models.Handle) models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.entities[owner]; !ok {
		return models.NullHandle
	}
	h := e.mint()
	e.scripts[h] = owner
	return h
}

// Destroy removes the entity and its components. Handles that referred to
// them become stale: reads return zero values and writes are dropped.
func (e *Engine) Destroy(h models.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entities[h]
	if !ok {
		return
	}
	for _, c := range ent.components {
		delete(e.transforms, c)
		delete(e.lights, c)
	}
	for s, owner := range e.scripts {
		if owner == h {
			delete(e.scripts, s)
		}
	}
	delete(e.entities, h)
	for i, o := range e.order {
		if o == h {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Entities lists live entities in spawn order.
func (e *Engine) Entities() []models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Handle(nil), e.order...)
}

func (e *Engine) Name(h models.Handle) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ent, ok := e.entities[h]; ok {
		return ent.name
	}
	return ""
}

func (e *Engine) PressKey(code int32) {
	e.mu.Lock()
	e.keys[code] = true
	e.mu.Unlock()
}

func (e *Engine) ReleaseKey(code int32) {
	e.mu.Lock()
	delete(e.keys, code)
	e.mu.Unlock()
}

func (e *Engine) PressMouse(button int32) {
	e.mu.Lock()
	e.buttons[button] = true
	e.mu.Unlock()
}

func (e *Engine) ReleaseMouse(button int32) {
	e.mu.Lock()
	delete(e.buttons, button)
	e.mu.Unlock()
}

func (e *Engine) MoveMouse(pos native.Vec2) {
	e.mu.Lock()
	e.mouse = pos
	e.mu.Unlock()
}

// Tick advances one engine frame: it records the frame time and rebuilds the
// camera view matrix from position and rotation, overwriting any view matrix
// set since the last frame.
func (e *Engine) Tick(deltaTime float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deltaTime = deltaTime
	e.updateViewLocked()
}

func (e *Engine) updateViewLocked() {
	rot := e.camera.rotation
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rot[0]))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rot[1]))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rot[2]))
	pos := e.camera.position
	e.camera.view = rotX.Mul4(rotZ).Mul4(rotY).Mul4(mgl32.Translate3D(pos[0], pos[1], pos[2]))
}

// Surface

func (e *Engine) GetComponent(owner models.Handle, kind int32) models.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("GetComponent")

	ent, ok := e.entities[owner]
	if !ok {
		return models.NullHandle
	}
	return ent.components[kind]
}

func (e *Engine) IsValidHandle(h models.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("IsValidHandle")

	if !e.probe {
		return true
	}
	if _, ok := e.entities[h]; ok {
		return true
	}
	if _, ok := e.transforms[h]; ok {
		return true
	}
	if _, ok := e.scripts[h]; ok {
		return true
	}
	_, ok := e.lights[h]
	return ok
}

func (e *Engine) withTransform(name string, h models.Handle, fn func(t *transform)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count(name)
	if t, ok := e.transforms[h]; ok {
		fn(t)
	}
}

func add(a, b native.Vec3) native.Vec3 {
	return native.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func (e *Engine) TransformGetTranslation(h models.Handle) (v native.Vec3) {
	e.withTransform("TransformGetTranslation", h, func(t *transform) { v = t.translation })
	return v
}

func (e *Engine) TransformSetTranslation(h models.Handle, v native.Vec3) {
	e.withTransform("TransformSetTranslation", h, func(t *transform) { t.translation = v })
}

func (e *Engine) TransformGetRotation(h models.Handle) (v native.Vec3) {
	e.withTransform("TransformGetRotation", h, func(t *transform) { v = t.rotation })
	return v
}

func (e *Engine) TransformSetRotation(h models.Handle, v native.Vec3) {
	e.withTransform("TransformSetRotation", h, func(t *transform) { t.rotation = v })
}

func (e *Engine) TransformGetScale(h models.Handle) (v native.Vec3) {
	e.withTransform("TransformGetScale", h, func(t *transform) { v = t.scale })
	return v
}

func (e *Engine) TransformSetScale(h models.Handle, v native.Vec3) {
	e.withTransform("TransformSetScale", h, func(t *transform) { t.scale = v })
}

func (e *Engine) TransformTranslate(h models.Handle, d native.Vec3) {
	e.withTransform("TransformTranslate", h, func(t *transform) { t.translation = add(t.translation, d) })
}

func (e *Engine) TransformRotate(h models.Handle, d native.Vec3) {
	e.withTransform("TransformRotate", h, func(t *transform) { t.rotation = add(t.rotation, d) })
}

func (e *Engine) TransformScale(h models.Handle, d native.Vec3) {
	e.withTransform("TransformScale", h, func(t *transform) { t.scale = add(t.scale, d) })
}

func (e *Engine) withLight(name string, h models.Handle, fn func(l *light)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count(name)
	if l, ok := e.lights[h]; ok {
		fn(l)
	}
}

func (e *Engine) PointLightGetColour(h models.Handle) (c native.Vec3) {
	e.withLight("PointLightGetColour", h, func(l *light) { c = l.colour })
	return c
}

func (e *Engine) PointLightSetColour(h models.Handle, c native.Vec3) {
	e.withLight("PointLightSetColour", h, func(l *light) { l.colour = c })
}

func (e *Engine) PointLightGetRadius(h models.Handle) (r float32) {
	e.withLight("PointLightGetRadius", h, func(l *light) { r = l.radius })
	return r
}

func (e *Engine) PointLightSetRadius(h models.Handle, r float32) {
	e.withLight("PointLightSetRadius", h, func(l *light) { l.radius = r })
}

func (e *Engine) CameraGetViewMatrix() native.Mat4 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraGetViewMatrix")
	return marshal.Mat4ToNative(e.camera.view)
}

func (e *Engine) CameraSetViewMatrix(m native.Mat4) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraSetViewMatrix")
	e.camera.view = marshal.Mat4FromNative(m)
}

func (e *Engine) CameraGetProjectionMatrix() native.Mat4 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraGetProjectionMatrix")
	return marshal.Mat4ToNative(e.camera.projection)
}

func (e *Engine) CameraSetProjectionMatrix(m native.Mat4) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraSetProjectionMatrix")
	e.camera.projection = marshal.Mat4FromNative(m)
}

func (e *Engine) CameraGetPosition() native.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraGetPosition")
	return marshal.Vec3ToNative(e.camera.position)
}

func (e *Engine) CameraSetPosition(v native.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraSetPosition")
	e.camera.position = marshal.Vec3FromNative(v)
}

func (e *Engine) CameraGetRotation() native.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraGetRotation")
	return marshal.Vec3ToNative(e.camera.rotation)
}

func (e *Engine) CameraSetRotation(v native.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraSetRotation")
	e.camera.rotation = marshal.Vec3FromNative(v)
}

func (e *Engine) CameraGetForward() native.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("CameraGetForward")
	return native.ForwardFromView(marshal.Mat4ToNative(e.camera.view))
}

func (e *Engine) InputIsKeyDown(code int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("InputIsKeyDown")
	return e.keys[code]
}

func (e *Engine) InputIsKeyUp(code int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("InputIsKeyUp")
	return !e.keys[code]
}

func (e *Engine) InputIsMouseButtonDown(button int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("InputIsMouseButtonDown")
	return e.buttons[button]
}

func (e *Engine) InputIsMouseButtonUp(button int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("InputIsMouseButtonUp")
	return !e.buttons[button]
}

func (e *Engine) InputGetMousePos() native.Vec2 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("InputGetMousePos")
	return e.mouse
}

func (e *Engine) ApplicationGetDeltaTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count("ApplicationGetDeltaTime")
	return e.deltaTime
}
