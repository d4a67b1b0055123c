package topic

import "strings"

// Topic is an event name using dot notation, or a pattern when it contains
// the wildcard.
type Topic string

const (
	// Wildcard matches any character sequence.
	Wildcard = "*"

	// Separator is the character used to separate topic segments.
	Separator = "."
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// IsPattern returns true if the topic contains the wildcard.
func (t Topic) IsPattern() bool {
	return strings.Contains(string(t), Wildcard)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// Domain returns the first segment.
//
// Example: "project.item_added" -> "project"
func (t Topic) Domain() string {
	s := string(t)
	if idx := strings.Index(s, Separator); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Action returns the last segment.
//
// Example: "project.item_added" -> "item_added"
func (t Topic) Action() string {
	s := string(t)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// IsValid returns true if the topic is valid.
// A valid topic:
//   - Is not empty
//   - Does not start or end with a separator
//   - Does not contain empty segments
func (t Topic) IsValid() bool {
	s := string(t)
	if s == "" {
		return false
	}
	for _, seg := range t.Segments() {
		if seg == "" {
			return false
		}
	}
	return true
}

// Join joins multiple segments into a topic.
func Join(segments ...string) Topic {
	return Topic(strings.Join(segments, Separator))
}
