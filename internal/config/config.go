// Package config loads plumbus settings: a YAML file, then PLUMBUS_*
// environment overrides, then validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	jlconfig "github.com/JeremyLoy/config"
	"gopkg.in/yaml.v3"

	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Library is the path of the engine shared library used by "run".
	Library string `yaml:"library"`
	Log     Log    `yaml:"log"`
	// Symbols maps a primary export name to replacement names tried first.
	Symbols    map[string][]string `yaml:"symbols"`
	Simulation Simulation          `yaml:"simulation"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type Simulation struct {
	FrameRate float64 `yaml:"frame_rate"`
	Frames    int     `yaml:"frames"`
	// DeltaTime overrides the frame time reported to scripts; zero means
	// 1/FrameRate.
	DeltaTime float64 `yaml:"delta_time"`
	// Aspect is the width/height ratio of the simulated camera projection.
	Aspect float32 `yaml:"aspect"`
	// Realtime paces frames by the wall clock instead of running flat out.
	Realtime bool         `yaml:"realtime"`
	Entities []EntitySpec `yaml:"entities"`
	KeysDown []string     `yaml:"keys_down"`
}

type EntitySpec struct {
	Name       string          `yaml:"name"`
	Transform  *TransformSpec  `yaml:"transform,omitempty"`
	PointLight *PointLightSpec `yaml:"point_light,omitempty"`
	Scripts    []string        `yaml:"scripts,omitempty"`
}

type TransformSpec struct {
	Translation [3]float32 `yaml:"translation"`
	Rotation    [3]float32 `yaml:"rotation"`
	Scale       [3]float32 `yaml:"scale"`
}

type PointLightSpec struct {
	Colour [3]float32 `yaml:"colour"`
	Radius float32    `yaml:"radius"`
}

// env holds the variables that override file settings.
type env struct {
	Library     string `config:"PLUMBUS_LIBRARY"`
	LogLevel    string `config:"PLUMBUS_LOG_LEVEL"`
	LogEncoding string `config:"PLUMBUS_LOG_ENCODING"`
	Frames      int    `config:"PLUMBUS_FRAMES"`
}

func Default() *Config {
	return &Config{
		Log: Log{Level: "info", Encoding: "console"},
		Simulation: Simulation{
			FrameRate: 60,
			Frames:    600,
			Aspect:    16.0 / 9.0,
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err = c.decode(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes YAML over the defaults and validates it. The environment is
// not consulted.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	if err := c.decode(r); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from PLUMBUS_* variables that are set.
func (c *Config) ApplyEnv() error {
	var e env
	if err := jlconfig.FromEnv().To(&e); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if e.Library != "" {
		c.Library = e.Library
	}
	if e.LogLevel != "" {
		c.Log.Level = e.LogLevel
	}
	if e.LogEncoding != "" {
		c.Log.Encoding = e.LogEncoding
	}
	if e.Frames > 0 {
		c.Simulation.Frames = e.Frames
	}
	return nil
}

// Validate reports every problem found, joined, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		add("log.level: %w", err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		add("log.encoding: %q is not json or console", c.Log.Encoding)
	}

	known := make(map[string]bool)
	for _, s := range native.Symbols() {
		known[s.Names[0]] = true
	}
	for name, alts := range c.Symbols {
		if !known[name] {
			add("symbols: %q is not an engine export", name)
		}
		if len(alts) == 0 {
			add("symbols.%s: no replacement names", name)
		}
	}

	sim := c.Simulation
	if sim.FrameRate <= 0 {
		add("simulation.frame_rate: must be positive, got %v", sim.FrameRate)
	}
	if sim.Frames < 0 {
		add("simulation.frames: must not be negative, got %d", sim.Frames)
	}
	if sim.DeltaTime < 0 {
		add("simulation.delta_time: must not be negative, got %v", sim.DeltaTime)
	}
	if sim.Aspect <= 0 {
		add("simulation.aspect: must be positive, got %v", sim.Aspect)
	}
	for i, ent := range sim.Entities {
		if ent.Name == "" {
			add("simulation.entities[%d]: name is required", i)
		}
		if ent.PointLight != nil && ent.PointLight.Radius < 0 {
			add("simulation.entities[%d]: point light radius must not be negative", i)
		}
		for j, s := range ent.Scripts {
			if s == "" {
				add("simulation.entities[%d].scripts[%d]: empty script name", i, j)
			}
		}
	}
	for _, k := range sim.KeysDown {
		if _, ok := facade.KeyCodeByName(k); !ok {
			add("simulation.keys_down: unknown key %q", k)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) LogConfig() log.Config {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.LevelInfo
	}
	return log.Config{Level: level, Encoding: c.Log.Encoding}
}

// FrameDelta is the frame time, in seconds, reported to scripts.
func (s Simulation) FrameDelta() float64 {
	if s.DeltaTime > 0 {
		return s.DeltaTime
	}
	return 1 / s.FrameRate
}

// Keys resolves KeysDown. Unknown names are skipped; Validate reports them.
func (s Simulation) Keys() []facade.KeyCode {
	out := make([]facade.KeyCode, 0, len(s.KeysDown))
	for _, k := range s.KeysDown {
		if code, ok := facade.KeyCodeByName(k); ok {
			out = append(out, code)
		}
	}
	return out
}

// ComponentKinds lists the component kinds the entity declares, in kind order.
func (e EntitySpec) ComponentKinds() []scene.Kind {
	var out []scene.Kind
	if e.Transform != nil {
		out = append(out, scene.KindTransform)
	}
	if e.PointLight != nil {
		out = append(out, scene.KindPointLight)
	}
	return out
}
