package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/native/sim"
)

// nothing claims the None kind.
type nothing struct{ Base }

func (nothing) Kind() Kind { return KindNone }

// unknown claims a kind code the engine never defined.
type unknown struct{ Base }

func (unknown) Kind() Kind { return Kind(99) }

// impostor claims the transform kind but is not what the table builds.
type impostor struct{ Base }

func (impostor) Kind() Kind { return KindTransform }

func spawnCube(t *testing.T, opts ...sim.Option) (*sim.Engine, Entity) {
	t.Helper()
	engine := sim.New(opts...)
	h := engine.SpawnEntity("Cube")
	engine.AddTransform(h, native.Vec3{}, native.Vec3{}, native.Vec3{X: 1, Y: 1, Z: 1})
	return engine, NewEntity(h, engine)
}

func TestKindTable(t *testing.T) {
	assert.Equal(t, []Kind{KindTransform, KindPointLight}, Kinds())

	for _, k := range Kinds() {
		d := kinds[k]
		c := d.wrap(Base{})
		assert.Equal(t, k, c.Kind(), "descriptor for %s builds a value of another kind", d.name)

		byName, ok := KindByName(d.name)
		require.True(t, ok)
		assert.Equal(t, k, byName)
		assert.Equal(t, d.name, k.String())
	}

	_, ok := kinds[KindNone]
	assert.False(t, ok)
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())

	_, ok = KindByName("Camera")
	assert.False(t, ok)
}

func TestGetTransform(t *testing.T) {
	engine, cube := spawnCube(t, sim.WithFirstHandle(41))

	tr, err := Get[Transform](cube)
	require.NoError(t, err)
	assert.Equal(t, models.Handle(42), tr.Handle())
	assert.Equal(t, KindTransform, tr.Kind())
	assert.True(t, tr.Owner().Equal(cube))
	assert.Equal(t, 1, engine.Calls("GetComponent"))
}

func TestGetMissingComponent(t *testing.T) {
	engine, cube := spawnCube(t)

	light, err := Get[PointLight](cube)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComponentNotFound))
	assert.True(t, light.IsNull(), "no wrapper on absence")
	assert.Equal(t, ErrorCodeComponentNotFound, CodeOf(err))

	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, cube.Handle(), le.Entity)
	assert.Equal(t, KindPointLight, le.Kind)
	assert.Equal(t, 1, engine.Calls("GetComponent"))
}

func TestGetUnsupportedKindMakesNoNativeCall(t *testing.T) {
	engine, cube := spawnCube(t)

	cases := []struct {
		name string
		get  func() error
	}{
		{"none kind", func() error { _, err := Get[nothing](cube); return err }},
		{"unknown code", func() error { _, err := Get[unknown](cube); return err }},
		{"interface type", func() error { _, err := Get[Component](cube); return err }},
		{"nil pointer type", func() error { _, err := Get[*Transform](cube); return err }},
		{"unknown name", func() error { _, err := GetByName(cube, "Camera"); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.get()
			assert.True(t, errors.Is(err, ErrUnsupportedComponentKind))
			assert.Equal(t, ErrorCodeUnsupportedKind, CodeOf(err))
		})
	}
	assert.Zero(t, engine.Calls("GetComponent"))
}

func TestGetConstructorMismatchPanics(t *testing.T) {
	_, cube := spawnCube(t)
	assert.Panics(t, func() { _, _ = Get[impostor](cube) })
}

func TestGetByName(t *testing.T) {
	engine, cube := spawnCube(t)
	engine.AddPointLight(cube.Handle(), native.Vec3{X: 1}, 4)

	c, err := GetByName(cube, "PointLight")
	require.NoError(t, err)
	light, ok := c.(PointLight)
	require.True(t, ok)
	assert.Equal(t, float32(4), light.Radius())

	light.SetRadius(9)
	light.SetColour(mgl32.Vec3{0, 0, 1})
	assert.Equal(t, float32(9), light.Radius())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, light.Colour())
}

func TestRotateScenario(t *testing.T) {
	engine, cube := spawnCube(t)
	engine.PressKey(8)

	tr, err := Get[Transform](cube)
	require.NoError(t, err)

	require.Equal(t, mgl32.Vec3{0, 0, 0}, tr.Rotation())
	tr.Rotate(mgl32.Vec3{0, 0.001, 0})
	assert.Equal(t, mgl32.Vec3{0, 0.001, 0}, tr.Rotation(), "one step is exact")

	for range 2 {
		tr.Rotate(mgl32.Vec3{0, 0.001, 0})
	}
	got := tr.Rotation()
	assert.InDelta(t, 0.003, got.Y(), 1e-6)
	assert.Zero(t, got.X())
	assert.Zero(t, got.Z())
	assert.Equal(t, 3, engine.Calls("TransformRotate"))
}

func TestTransformAccessors(t *testing.T) {
	_, cube := spawnCube(t)
	tr, err := Get[Transform](cube)
	require.NoError(t, err)

	tr.SetTranslation(mgl32.Vec3{1, 2, 3})
	tr.Translate(mgl32.Vec3{1, 0, 0})
	assert.Equal(t, mgl32.Vec3{2, 2, 3}, tr.Translation())

	tr.SetRotation(mgl32.Vec3{0, 90, 0})
	assert.Equal(t, mgl32.Vec3{0, 90, 0}, tr.Rotation())

	tr.SetScale(mgl32.Vec3{1, 1, 1})
	tr.ScaleBy(mgl32.Vec3{1, 0, 0})
	assert.Equal(t, mgl32.Vec3{2, 1, 1}, tr.Scale())
}

func TestComponentsCompareByHandle(t *testing.T) {
	_, cube := spawnCube(t)

	a, err := Get[Transform](cube)
	require.NoError(t, err)
	b, err := Get[Transform](cube)
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.Equal(t, a.Hash(), b.Hash())

	seen := map[Transform]bool{a: true}
	assert.True(t, seen[b])
}

func TestEqualIgnoresConstructionPath(t *testing.T) {
	engine, cube := spawnCube(t)
	tr, err := Get[Transform](cube)
	require.NoError(t, err)

	// same component handle reached through another owner and surface
	other := Transform{newBase(tr.Handle(), NewEntity(cube.Handle()+100, sim.New()))}
	assert.False(t, tr == other)
	assert.True(t, tr.Equal(other))
	assert.True(t, other.Equal(tr))

	lamp := engine.AddPointLight(cube.Handle(), native.Vec3{X: 1}, 4)
	light, err := Get[PointLight](cube)
	require.NoError(t, err)
	assert.Equal(t, lamp, light.Handle())
	assert.False(t, tr.Equal(light))
	assert.False(t, tr.Equal(nil))
}

func TestValidateReportsStaleHandles(t *testing.T) {
	engine, cube := spawnCube(t)
	tr, err := Get[Transform](cube)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.True(t, cube.Valid())

	engine.Destroy(cube.Handle())
	assert.True(t, errors.Is(tr.Validate(), ErrStaleHandle))
	assert.False(t, cube.Valid())
}

func TestValidateWithoutProbe(t *testing.T) {
	engine, cube := spawnCube(t, sim.WithoutValidityProbe())
	tr, err := Get[Transform](cube)
	require.NoError(t, err)

	engine.Destroy(cube.Handle())
	assert.NoError(t, tr.Validate(), "staleness is undetectable without the probe")
	assert.Equal(t, mgl32.Vec3{}, tr.Translation())
}
