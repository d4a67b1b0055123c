package event

import "github.com/dshills/plotdoc/internal/event/events"

// Data is the payload delivered to handlers.
type Data map[string]any

// Clone returns a shallow copy. A nil Data yields an empty map.
func (d Data) Clone() Data {
	out := make(Data, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// EventType returns the hierarchy level this payload was delivered for.
func (d Data) EventType() string {
	s, _ := d[events.KeyEventType].(string)
	return s
}

// OriginalEvent returns the name that was emitted.
func (d Data) OriginalEvent() string {
	s, _ := d[events.KeyOriginalEvent].(string)
	return s
}

// String returns the string value at key, or "".
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes one delivery.
	Handle(data Data) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(data Data) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(data Data) error {
	return f(data)
}

// FilterFunc is a predicate for filtering deliveries.
// Return true to allow the delivery, false to skip it.
type FilterFunc func(data Data) bool

// Stats contains event bus statistics.
type Stats struct {
	// EventsEmitted is the number of Emit calls.
	EventsEmitted uint64

	// LevelsDelivered is the number of hierarchy levels processed.
	LevelsDelivered uint64

	// HandlersExecuted is the total number of handler invocations.
	HandlersExecuted uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// ActiveSubscriptions is the current number of subscriptions.
	ActiveSubscriptions int
}
