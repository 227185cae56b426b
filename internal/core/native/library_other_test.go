//go:build !(darwin && (amd64 || arm64))

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryUnsupported(t *testing.T) {
	_, err := Open("libc.so.6")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	var lib Library
	var fn func(int32) int32
	require.NotPanics(t, func() { err = lib.Bind(&fn, 1) })
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Nil(t, fn)

	table, err := Bind(&lib, &lib, nil)
	assert.ErrorIs(t, err, ErrSymbolNotFound)
	assert.Empty(t, table.Resolved())
	assert.Zero(t, NewCallback(func() {}))
}
