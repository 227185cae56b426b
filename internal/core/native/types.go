package native

import "unsafe"

// Vec2 mirrors the engine's mono_vec2: two packed float32.
type Vec2 struct {
	X, Y float32
}

// Vec3 mirrors the engine's mono_vec3.
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 mirrors the engine's mono_mat4. Xi, Yi, Zi, Wi are the components of
// column i, grouped by component rather than by column.
type Mat4 struct {
	X0, X1, X2, X3 float32
	Y0, Y1, Y2, Y3 float32
	Z0, Z1, Z2, Z3 float32
	W0, W1, W2, W3 float32
}

// Layout checks: a size mismatch fails to compile.
var (
	_ [8]byte  = [unsafe.Sizeof(Vec2{})]byte{}
	_ [12]byte = [unsafe.Sizeof(Vec3{})]byte{}
	_ [64]byte = [unsafe.Sizeof(Mat4{})]byte{}
)

// HostCallbacks is handed to Scripting_Install so the engine can push entity
// registrations and drive script updates. Every field is a C function pointer.
type HostCallbacks struct {
	RegisterEntity uintptr // void (*)(uint64_t handle, const char* name)
	CreateScript   uintptr // uint64_t (*)(const char* name, uint64_t self, uint64_t owner)
	DestroyScript  uintptr // void (*)(uint64_t instance)
	Update         uintptr // void (*)(double deltaTime)
}

// Component type codes understood by the engine's GetComponent export.
const (
	ComponentTranslation int32 = 0
	ComponentNone        int32 = 1
	ComponentPointLight  int32 = 2
)
