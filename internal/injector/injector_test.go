package injector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/host"
)

func TestInitializeSimulatedHost(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
log:
  level: error
simulation:
  entities:
    - name: Cube
      transform:
        scale: [1, 1, 1]
      scripts: [Rotator]
`))
	require.NoError(t, err)

	h, err := InitializeSimulatedHost(cfg)
	require.NoError(t, err)
	defer h.Close()

	assert.NotNil(t, h.Engine())
	assert.Equal(t, 1, h.Registry().Len())
	assert.Equal(t, 1, h.Runtime().Stats().Instances)
}

func TestInitializeNativeHostWithoutLibrary(t *testing.T) {
	_, err := InitializeNativeHost(config.Default())
	assert.ErrorIs(t, err, host.ErrNoLibrary)
}
