package event

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/logging"
)

// Bus is a synchronous publish/subscribe channel with hierarchical fan-out.
// Its tables are safe for concurrent use, but handlers run on the caller's
// goroutine with no lock held.
type Bus struct {
	mu sync.Mutex

	// exact holds subscriptions to a single name, in registration order.
	exact map[topic.Topic][]*Subscription

	// patterns holds glob subscriptions grouped by pattern, groups ordered
	// by first registration.
	patterns []*patternGroup

	config busConfig
	log    *logrus.Entry

	eventsEmitted    atomic.Uint64
	levelsDelivered  atomic.Uint64
	handlersExecuted atomic.Uint64
	handlerErrors    atomic.Uint64
	handlerPanics    atomic.Uint64
}

type patternGroup struct {
	glob topic.Glob
	subs []*Subscription
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) *Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Bus{
		exact:  make(map[topic.Topic][]*Subscription),
		config: config,
		log:    logging.Component(config.logger, "event"),
	}
}

// Hierarchy returns the hierarchy used to expand emitted names.
func (b *Bus) Hierarchy() *topic.Hierarchy {
	return b.config.hierarchy
}

// Levels returns name followed by its ancestors.
func (b *Bus) Levels(name topic.Topic) []topic.Topic {
	return b.config.hierarchy.Levels(name)
}

// Subscribe registers handler for a name or, when it contains "*", a glob
// pattern.
func (b *Bus) Subscribe(name topic.Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !name.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, name)
	}

	sub := newSubscription(uuid.NewString(), name, handler, opts...)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !name.IsPattern() {
		b.exact[name] = append(b.exact[name], sub)
		return sub, nil
	}
	for _, g := range b.patterns {
		if g.glob.Pattern() == name {
			g.subs = append(g.subs, sub)
			return sub, nil
		}
	}
	b.patterns = append(b.patterns, &patternGroup{
		glob: topic.Compile(name),
		subs: []*Subscription{sub},
	})
	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function handler.
func (b *Bus) SubscribeFunc(name topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(name, fn, opts...)
}

// Unsubscribe removes sub. It returns false if sub is nil or not registered.
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.remove(sub) {
		return false
	}
	sub.cancel()
	return true
}

// remove deletes sub from its table. Caller holds b.mu.
func (b *Bus) remove(sub *Subscription) bool {
	if !sub.IsPattern() {
		list := b.exact[sub.topic]
		i := indexOf(list, sub)
		if i < 0 {
			return false
		}
		list = append(list[:i:i], list[i+1:]...)
		if len(list) == 0 {
			delete(b.exact, sub.topic)
		} else {
			b.exact[sub.topic] = list
		}
		return true
	}

	for gi, g := range b.patterns {
		if g.glob.Pattern() != sub.topic {
			continue
		}
		i := indexOf(g.subs, sub)
		if i < 0 {
			return false
		}
		g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
		if len(g.subs) == 0 {
			b.patterns = append(b.patterns[:gi:gi], b.patterns[gi+1:]...)
		}
		return true
	}
	return false
}

func indexOf(list []*Subscription, sub *Subscription) int {
	for i, s := range list {
		if s == sub {
			return i
		}
	}
	return -1
}

// Emit delivers data at every level of name's hierarchy chain.
// Each level gets a shallow copy of data with eventType and originalEvent set.
func (b *Bus) Emit(name topic.Topic, data Data) {
	b.eventsEmitted.Add(1)
	for _, level := range b.Levels(name) {
		payload := data.Clone()
		payload[events.KeyEventType] = string(level)
		payload[events.KeyOriginalEvent] = string(name)

		b.levelsDelivered.Add(1)
		for _, sub := range b.matching(level) {
			b.deliver(sub, name, level, payload)
		}
	}
}

// matching snapshots the subscriptions for level: exact ones first, then
// matching patterns.
func (b *Bus) matching(level topic.Topic) []*Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	exact := b.exact[level]
	out := make([]*Subscription, 0, len(exact))
	out = append(out, exact...)
	for _, g := range b.patterns {
		if g.glob.Match(level) {
			out = append(out, g.subs...)
		}
	}
	return out
}

func (b *Bus) deliver(sub *Subscription, name, level topic.Topic, data Data) {
	if !sub.shouldDeliver(data) {
		return
	}
	if sub.config.Once {
		// Claim the single delivery before running the handler so a nested
		// Emit cannot deliver it a second time.
		b.mu.Lock()
		removed := b.remove(sub)
		b.mu.Unlock()
		if !removed || !sub.cancel() {
			return
		}
	}

	b.handlersExecuted.Add(1)
	err := b.call(sub, level, data)
	if err == nil {
		return
	}

	fields := logrus.Fields{
		"event":        string(name),
		"level":        string(level),
		"subscription": sub.id,
	}
	if pe, ok := err.(*PanicError); ok {
		b.handlerPanics.Add(1)
		b.log.WithFields(fields).WithField("stack", pe.Stack).Errorf("event handler panicked: %v", pe.Value)
		return
	}
	b.handlerErrors.Add(1)
	b.log.WithFields(fields).WithError(err).Warn("event handler failed")
}

func (b *Bus) call(sub *Subscription, level topic.Topic, data Data) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				SubscriptionID: sub.id,
				Level:          string(level),
				Value:          r,
				Stack:          string(debug.Stack()),
			}
		}
	}()
	if herr := sub.handler.Handle(data); herr != nil {
		return &HandlerError{SubscriptionID: sub.id, Level: string(level), Err: herr}
	}
	return nil
}

// Clear removes every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, list := range b.exact {
		for _, s := range list {
			s.cancel()
		}
	}
	for _, g := range b.patterns {
		for _, s := range g.subs {
			s.cancel()
		}
	}
	b.exact = make(map[topic.Topic][]*Subscription)
	b.patterns = nil
}

// SubscriberCount returns the number of subscriptions registered under the
// exact name or pattern.
func (b *Bus) SubscriberCount(name topic.Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !name.IsPattern() {
		return len(b.exact[name])
	}
	for _, g := range b.patterns {
		if g.glob.Pattern() == name {
			return len(g.subs)
		}
	}
	return 0
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	active := 0
	for _, list := range b.exact {
		active += len(list)
	}
	for _, g := range b.patterns {
		active += len(g.subs)
	}
	b.mu.Unlock()

	return Stats{
		EventsEmitted:       b.eventsEmitted.Load(),
		LevelsDelivered:     b.levelsDelivered.Load(),
		HandlersExecuted:    b.handlersExecuted.Load(),
		HandlerErrors:       b.handlerErrors.Load(),
		HandlerPanics:       b.handlerPanics.Load(),
		ActiveSubscriptions: active,
	}
}
