package event

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
)

// BusOption configures an event Bus.
type BusOption func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// hierarchy resolves an emitted name to its levels.
	hierarchy *topic.Hierarchy

	// logger receives handler failures.
	logger *logrus.Entry
}

// defaultBusConfig returns the static event hierarchy and a silent logger.
func defaultBusConfig() busConfig {
	return busConfig{
		hierarchy: events.Hierarchy,
	}
}

// WithHierarchy replaces the event hierarchy.
func WithHierarchy(h *topic.Hierarchy) BusOption {
	return func(c *busConfig) {
		if h != nil {
			c.hierarchy = h
		}
	}
}

// WithLogger sets the logger for handler failures.
func WithLogger(l *logrus.Entry) BusOption {
	return func(c *busConfig) {
		c.logger = l
	}
}
