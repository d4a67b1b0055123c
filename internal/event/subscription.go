package event

import (
	"sync/atomic"

	"github.com/dshills/plotdoc/internal/event/topic"
)

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Filter is an optional predicate to filter deliveries.
	// If set, a delivery happens only if Filter returns true.
	Filter FilterFunc

	// Once indicates the subscription should be removed after its first
	// delivery.
	Once bool
}

// SubscriptionOption is a function that configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce sets the subscription to auto-cancel after the first delivery.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

// Subscription is the handle returned by Subscribe. Pass it to Unsubscribe
// to stop deliveries.
type Subscription struct {
	id        string
	topic     topic.Topic
	handler   Handler
	config    SubscriptionConfig
	cancelled atomic.Bool
}

func newSubscription(id string, t topic.Topic, h Handler, opts ...SubscriptionOption) *Subscription {
	s := &Subscription{
		id:      id,
		topic:   t,
		handler: h,
	}
	for _, opt := range opts {
		opt(&s.config)
	}
	return s
}

// ID returns the subscription ID.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the subscribed name or pattern.
func (s *Subscription) Topic() topic.Topic {
	return s.topic
}

// IsPattern reports whether the subscription is a glob pattern.
func (s *Subscription) IsPattern() bool {
	return s.topic.IsPattern()
}

// IsActive returns true until the subscription is removed.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

func (s *Subscription) cancel() bool {
	return s.cancelled.CompareAndSwap(false, true)
}

// shouldDeliver returns true if data should be delivered to this subscription.
func (s *Subscription) shouldDeliver(data Data) bool {
	if !s.IsActive() {
		return false
	}
	if s.config.Filter != nil && !s.config.Filter(data) {
		return false
	}
	return true
}
