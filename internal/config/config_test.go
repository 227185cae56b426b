package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
)

const sample = `
library: /opt/plumbus/libPlumbusEngine.so
log:
  level: debug
  encoding: json
symbols:
  Application_GetDeltaTime: [Engine_GetFrameDelta]
simulation:
  frame_rate: 30
  frames: 90
  aspect: 1.25
  entities:
    - name: Knight
      transform:
        translation: [0, -2.4, 0]
        scale: [1, 1, 1]
      scripts: [TestClass.cs]
    - name: Lamp
      point_light:
        colour: [1, 1, 0.8]
        radius: 12
  keys_down: [One]
`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "/opt/plumbus/libPlumbusEngine.so", c.Library)
	assert.Equal(t, log.Config{Level: log.LevelDebug, Encoding: "json"}, c.LogConfig())
	assert.Equal(t, []string{"Engine_GetFrameDelta"}, c.Symbols["Application_GetDeltaTime"])

	sim := c.Simulation
	assert.Equal(t, 90, sim.Frames)
	assert.Equal(t, float32(1.25), sim.Aspect)
	assert.InDelta(t, 1.0/30, sim.FrameDelta(), 1e-12)
	assert.Equal(t, []facade.KeyCode{facade.KeyOne}, sim.Keys())

	require.Len(t, sim.Entities, 2)
	knight := sim.Entities[0]
	assert.Equal(t, [3]float32{0, -2.4, 0}, knight.Transform.Translation)
	assert.Equal(t, []string{"TestClass.cs"}, knight.Scripts)
	assert.Equal(t, []scene.Kind{scene.KindTransform}, knight.ComponentKinds())
	assert.Equal(t, []scene.Kind{scene.KindPointLight}, sim.Entities[1].ComponentKinds())
}

func TestDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.InDelta(t, 1.0/60, c.Simulation.FrameDelta(), 1e-12)

	c.Simulation.DeltaTime = 0.25
	assert.Equal(t, 0.25, c.Simulation.FrameDelta())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("libary: typo.so\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad encoding", func(c *Config) { c.Log.Encoding = "xml" }, "log.encoding"},
		{"unknown symbol", func(c *Config) { c.Symbols = map[string][]string{"Nope": {"X"}} }, `"Nope" is not an engine export`},
		{"empty override", func(c *Config) { c.Symbols = map[string][]string{"GetComponent": nil} }, "no replacement names"},
		{"zero frame rate", func(c *Config) { c.Simulation.FrameRate = 0 }, "frame_rate"},
		{"negative frames", func(c *Config) { c.Simulation.Frames = -1 }, "frames"},
		{"negative delta", func(c *Config) { c.Simulation.DeltaTime = -1 }, "delta_time"},
		{"zero aspect", func(c *Config) { c.Simulation.Aspect = 0 }, "simulation.aspect"},
		{"unnamed entity", func(c *Config) { c.Simulation.Entities = []EntitySpec{{}} }, "name is required"},
		{"empty script", func(c *Config) {
			c.Simulation.Entities = []EntitySpec{{Name: "A", Scripts: []string{""}}}
		}, "empty script name"},
		{"unknown key", func(c *Config) { c.Simulation.KeysDown = []string{"Hyper"} }, `unknown key "Hyper"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestLoadAppliesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plumbus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	t.Setenv("PLUMBUS_LIBRARY", "/tmp/libOther.so")
	t.Setenv("PLUMBUS_LOG_LEVEL", "warn")
	t.Setenv("PLUMBUS_FRAMES", "5")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/libOther.so", c.Library)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "json", c.Log.Encoding)
	assert.Equal(t, 5, c.Simulation.Frames)
}

func TestLoadValidatesEnvironment(t *testing.T) {
	t.Setenv("PLUMBUS_LOG_LEVEL", "shout")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
