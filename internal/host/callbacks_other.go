//go:build !unix

package host

import "github.com/caveman250/PlumbusEngine/internal/core/native"

// nativeCallbacks is never reached here: native.Open fails first.
func (h *Host) nativeCallbacks() *native.HostCallbacks {
	return &native.HostCallbacks{}
}
