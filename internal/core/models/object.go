package models

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Handle is an opaque identifier minted by the native engine. It is never
// dereferenced on the Go side, only passed back into native calls.
type Handle uint64

// NullHandle is what the engine returns when there is no such object.
const NullHandle Handle = 0

func (h Handle) IsNull() bool { return h == NullHandle }

func (h Handle) String() string { return fmt.Sprintf("0x%x", uint64(h)) }

// Hash returns a stable 64-bit hash of the handle value.
func (h Handle) Hash() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(h))
	return xxhash.Sum64(b[:])
}

// Object is a disposable Go-side view of an engine-owned object. Two Objects
// built from the same handle are interchangeable: == , Equal and Hash only
// look at the handle.
type Object struct {
	handle Handle
}

// New wraps a handle. It performs no native call and never fails.
func New(handle Handle) Object {
	return Object{handle: handle}
}

func (o Object) Handle() Handle { return o.handle }

func (o Object) IsNull() bool { return o.handle.IsNull() }

func (o Object) Equal(other Object) bool { return o.handle == other.handle }

func (o Object) Hash() uint64 { return o.handle.Hash() }

func (o Object) String() string { return "object(" + o.handle.String() + ")" }
