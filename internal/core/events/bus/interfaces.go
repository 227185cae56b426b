package bus

import "time"

// EventBus is an in-process pub/sub bus for engine-side notifications: entity
// registrations, script lifecycle, frame ticks.
//
// Delivery is synchronous, in the publisher's goroutine, in subscription
// order. Handler errors do not stop delivery; they are joined and returned
// from Publish. All methods are safe for concurrent use.
type EventBus interface {
	// Publish delivers the event to every active subscriber of event.Type().
	Publish(event Event) error
	// Subscribe registers a handler for one event type.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// SubscribeAll registers a handler that sees every event.
	SubscribeAll(handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	// PublishWithFilters drops the event without error if any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	// GetMetrics is only populated while at least one observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is an immutable notification.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type (
	EventHandler func(event Event) error
	EventFilter  func(event Event) bool
)

type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel stops delivery. Repeated calls are safe.
	Cancel() error
}

// EventBusObserver is told about every publish and its outcome.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, duration time.Duration)
}

type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
