package bus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ time.Duration) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestPublishSubscribe(t *testing.T) {
	b := New()

	var got []EntityEvent
	sub, err := b.Subscribe(EntityRegistered, func(e Event) error {
		got = append(got, e.Data().(EntityEvent))
		return nil
	})
	require.NoError(t, err)
	_, err = uuid.Parse(sub.ID())
	require.NoError(t, err, "subscription ids are uuids")

	require.NoError(t, b.Publish(NewEvent(EntityRegistered, "test", EntityEvent{Handle: 7, Name: "Cube"})))
	require.NoError(t, b.Publish(NewEvent(EntityUnregistered, "test", EntityEvent{Handle: 7})))

	require.Len(t, got, 1)
	assert.Equal(t, "Cube", got[0].Name)
}

func TestDeliveryOrderAndWildcard(t *testing.T) {
	b := New()
	var order []string

	_, _ = b.SubscribeAll(func(e Event) error { order = append(order, "all:"+e.Type()); return nil })
	_, _ = b.Subscribe(FrameCompleted, func(Event) error { order = append(order, "first"); return nil })
	_, _ = b.Subscribe(FrameCompleted, func(Event) error { order = append(order, "second"); return nil })

	require.NoError(t, b.Publish(NewEvent(FrameCompleted, "test", FrameEvent{Frame: 1})))
	assert.Equal(t, []string{"first", "second", "all:" + FrameCompleted}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	calls := 0

	_, _ = b.Subscribe(ScriptFailed, func(Event) error { calls++; return errA })
	_, _ = b.Subscribe(ScriptFailed, func(Event) error { calls++; return errB })

	err := b.Publish(NewEvent(ScriptFailed, "test", ScriptEvent{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
	assert.Equal(t, 2, calls, "an error does not stop delivery")
}

func TestCancel(t *testing.T) {
	b := New()
	calls := 0
	sub, err := b.Subscribe(ScriptCreated, func(Event) error { calls++; return nil })
	require.NoError(t, err)

	_ = b.Publish(NewEvent(ScriptCreated, "test", nil))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	assert.False(t, sub.IsActive())
	_ = b.Publish(NewEvent(ScriptCreated, "test", nil))

	assert.Equal(t, 1, calls)
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestSubscribeValidation(t *testing.T) {
	b := New()
	_, err := b.Subscribe("", func(Event) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyEventType)
	_, err = b.Subscribe(FrameCompleted, nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestFilters(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)
	calls := 0
	_, _ = b.Subscribe(EntityRegistered, func(Event) error { calls++; return nil })

	onlyNamed := func(e Event) bool { return e.Data().(EntityEvent).Name != "" }
	_ = b.PublishWithFilters(NewEvent(EntityRegistered, "test", EntityEvent{Handle: 1}), onlyNamed)
	_ = b.PublishWithFilters(NewEvent(EntityRegistered, "test", EntityEvent{Handle: 2, Name: "Lamp"}), onlyNamed)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), b.GetMetrics().DroppedByFilters)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Zero(t, b.GetMetrics().Published, "no metrics without observers")

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	assert.Equal(t, uint64(1), m.Published)
	assert.Equal(t, uint64(1), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.SubscribersActive)
	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Equal(t, 1, obs.publishCount)
}

func TestConcurrentPublish(t *testing.T) {
	b := New()
	var mu sync.Mutex
	count := 0
	_, _ = b.Subscribe(FrameCompleted, func(Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = b.Publish(NewEvent(FrameCompleted, "test", nil))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, count)
}
