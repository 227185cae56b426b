package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
)

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(1, "Cube"))
	require.NoError(t, r.Register(2, "Lamp"))

	e, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Cube", e.Name)
	assert.Equal(t, 2, r.Len())

	_, ok = r.Lookup(3)
	assert.False(t, ok)

	assert.ErrorIs(t, r.Register(models.NullHandle, "Nothing"), ErrNullHandle)
	assert.Equal(t, 2, r.Len())
}

func TestFindReturnsLatestMatch(t *testing.T) {
	r := New(WithShards(4))
	require.NoError(t, r.Register(10, "Cube"))
	require.NoError(t, r.Register(11, "Lamp"))
	require.NoError(t, r.Register(12, "Cube"))

	e, ok := r.Find("Cube")
	require.True(t, ok)
	assert.Equal(t, models.Handle(12), e.Handle)

	_, ok = r.Find("Camera")
	assert.False(t, ok)

	// re-registration moves the handle to the back
	require.NoError(t, r.Register(10, "Cube"))
	e, _ = r.Find("Cube")
	assert.Equal(t, models.Handle(10), e.Handle)
	assert.Equal(t, 3, r.Len())
}

func TestAllIsInRegistrationOrder(t *testing.T) {
	r := New()
	handles := []models.Handle{50, 3, 17, 8, 1000}
	for i, h := range handles {
		require.NoError(t, r.Register(h, fmt.Sprintf("e%d", i)))
	}

	var got []models.Handle
	for _, e := range r.All() {
		got = append(got, e.Handle)
	}
	assert.Equal(t, handles, got)
}

func TestUnregisterAndClear(t *testing.T) {
	b := bus.New()
	var events []string
	_, _ = b.SubscribeAll(func(e bus.Event) error {
		events = append(events, e.Type())
		return nil
	})

	r := New(WithBus(b))
	require.NoError(t, r.Register(1, "Cube"))
	require.NoError(t, r.Register(2, "Lamp"))

	assert.True(t, r.Unregister(1))
	assert.False(t, r.Unregister(1))
	assert.Equal(t, 1, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.All())

	assert.Equal(t, []string{
		bus.EntityRegistered,
		bus.EntityRegistered,
		bus.EntityUnregistered,
		bus.RegistryCleared,
	}, events)
}

func TestRegisteredEventCarriesEntity(t *testing.T) {
	b := bus.New()
	var got bus.EntityEvent
	_, _ = b.Subscribe(bus.EntityRegistered, func(e bus.Event) error {
		got = e.Data().(bus.EntityEvent)
		return nil
	})

	r := New(WithBus(b))
	require.NoError(t, r.Register(42, "Cube"))
	assert.Equal(t, bus.EntityEvent{Handle: 42, Name: "Cube"}, got)
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				h := models.Handle(w*1000 + i + 1)
				_ = r.Register(h, "n")
				_, _ = r.Lookup(h)
				_, _ = r.Find("n")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, r.Len())
	assert.Len(t, r.All(), 800)
}
