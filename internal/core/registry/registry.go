// Package registry keeps the entities the engine has announced, so scripts
// can find game objects by name.
package registry

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
)

const (
	defaultShardCount = 16
	eventSource       = "registry"
)

var ErrNullHandle = errors.New("cannot register the null handle")

// Entry is one registered entity. Seq orders entries by registration time.
type Entry struct {
	Handle models.Handle
	Name   string
	Seq    uint64
}

type shard struct {
	mx      sync.RWMutex
	entries map[models.Handle]Entry
}

type Option func(*Registry)

func WithShards(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.count = n
		}
	}
}

// WithBus publishes entity events on b.
func WithBus(b bus.EventBus) Option {
	return func(r *Registry) { r.bus = b }
}

func WithLogger(l log.Log) Option {
	return func(r *Registry) { r.logger = l }
}

// Registry maps handles to entity names, sharded by the handle's xxhash.
// The engine only ever adds entries; Unregister and Clear exist for hosts
// that tear down and rebuild scenes.
type Registry struct {
	shards []shard
	count  int
	seq    atomic.Uint64
	size   atomic.Int64

	bus    bus.EventBus
	logger log.Log
}

func New(opts ...Option) *Registry {
	r := &Registry{count: defaultShardCount, logger: log.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.shards = make([]shard, r.count)
	for i := range r.shards {
		r.shards[i].entries = make(map[models.Handle]Entry)
	}
	return r
}

func (r *Registry) shardFor(h models.Handle) *shard {
	return &r.shards[h.Hash()%uint64(r.count)]
}

// Register records an entity. Registering a known handle again renames it
// and moves it to the back of the registration order.
func (r *Registry) Register(h models.Handle, name string) error {
	if h.IsNull() {
		return ErrNullHandle
	}

	sh := r.shardFor(h)
	e := Entry{Handle: h, Name: name, Seq: r.seq.Add(1)}

	sh.mx.Lock()
	_, existed := sh.entries[h]
	sh.entries[h] = e
	sh.mx.Unlock()

	if !existed {
		r.size.Add(1)
	}
	r.logger.Debug("entity registered",
		log.Handle("handle", uint64(h)),
		log.String("name", name),
		log.Bool("replaced", existed),
	)
	r.publish(bus.EntityRegistered, bus.EntityEvent{Handle: h, Name: name})
	return nil
}

// Unregister forgets an entity and reports whether it was known.
func (r *Registry) Unregister(h models.Handle) bool {
	sh := r.shardFor(h)

	sh.mx.Lock()
	e, ok := sh.entries[h]
	delete(sh.entries, h)
	sh.mx.Unlock()

	if !ok {
		return false
	}
	r.size.Add(-1)
	r.logger.Debug("entity unregistered", log.Handle("handle", uint64(h)))
	r.publish(bus.EntityUnregistered, bus.EntityEvent{Handle: h, Name: e.Name})
	return true
}

func (r *Registry) Clear() {
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mx.Lock()
		r.size.Add(-int64(len(sh.entries)))
		sh.entries = make(map[models.Handle]Entry)
		sh.mx.Unlock()
	}
	r.publish(bus.RegistryCleared, nil)
}

func (r *Registry) Lookup(h models.Handle) (Entry, bool) {
	sh := r.shardFor(h)
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	e, ok := sh.entries[h]
	return e, ok
}

// Find returns the most recently registered entity with the given name.
func (r *Registry) Find(name string) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	r.forEach(func(e Entry) {
		if e.Name == name && (!found || e.Seq > best.Seq) {
			best, found = e, true
		}
	})
	return best, found
}

// All returns every entry in registration order.
func (r *Registry) All() []Entry {
	out := make([]Entry, 0, r.Len())
	r.forEach(func(e Entry) { out = append(out, e) })
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func (r *Registry) Len() int {
	return int(r.size.Load())
}

func (r *Registry) forEach(fn func(Entry)) {
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mx.RLock()
		for _, e := range sh.entries {
			fn(e)
		}
		sh.mx.RUnlock()
	}
}

func (r *Registry) publish(eventType string, data any) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(bus.NewEvent(eventType, eventSource, data)); err != nil {
		r.logger.Warn("entity event handler failed", log.String("event", eventType), log.Error(err))
	}
}
