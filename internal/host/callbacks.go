//go:build unix

package host

import (
	"golang.org/x/sys/unix"

	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

// nativeCallbacks exposes the host handlers as C function pointers.
func (h *Host) nativeCallbacks() *native.HostCallbacks {
	return &native.HostCallbacks{
		RegisterEntity: native.NewCallback(func(handle uint64, name *byte) {
			h.onRegisterEntity(handle, goString(name))
		}),
		CreateScript: native.NewCallback(func(name *byte, self, owner uint64) uint64 {
			return h.onCreateScript(goString(name), self, owner)
		}),
		DestroyScript: native.NewCallback(func(instance uint64) {
			h.onDestroyScript(instance)
		}),
		Update: native.NewCallback(func(deltaTime float64) {
			h.onUpdate(deltaTime)
		}),
	}
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}
