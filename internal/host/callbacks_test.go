//go:build unix

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	b := []byte("Knight\x00garbage")
	assert.Equal(t, "Knight", goString(&b[0]))
	assert.Equal(t, "", goString(nil))

	empty := []byte{0}
	assert.Equal(t, "", goString(&empty[0]))
}
