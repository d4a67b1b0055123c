package topic

import (
	"errors"
	"fmt"
	"sort"
)

// ErrHierarchyCycle is returned when parent links loop back on themselves.
var ErrHierarchyCycle = errors.New("event hierarchy contains a cycle")

// Hierarchy maps topics to their ancestor chains. It is immutable once built.
type Hierarchy struct {
	parents map[Topic]Topic
	levels  map[Topic][]Topic
}

// NewHierarchy builds a hierarchy from child -> parent links.
// Every chain must terminate; a cycle returns ErrHierarchyCycle.
func NewHierarchy(parents map[Topic]Topic) (*Hierarchy, error) {
	h := &Hierarchy{
		parents: make(map[Topic]Topic, len(parents)),
		levels:  make(map[Topic][]Topic),
	}
	for child, parent := range parents {
		if child == "" || parent == "" {
			return nil, fmt.Errorf("event hierarchy: empty link %q -> %q", child, parent)
		}
		h.parents[child] = parent
	}

	for child := range h.parents {
		chain := []Topic{child}
		seen := map[Topic]bool{child: true}
		for cur := child; ; {
			parent, ok := h.parents[cur]
			if !ok {
				break
			}
			if seen[parent] {
				return nil, fmt.Errorf("%w: %s reaches %s again", ErrHierarchyCycle, child, parent)
			}
			seen[parent] = true
			chain = append(chain, parent)
			cur = parent
		}
		h.levels[child] = chain
	}
	for _, parent := range h.parents {
		if _, ok := h.levels[parent]; !ok {
			h.levels[parent] = []Topic{parent}
		}
	}
	return h, nil
}

// MustHierarchy is like NewHierarchy but panics on error.
func MustHierarchy(parents map[Topic]Topic) *Hierarchy {
	h, err := NewHierarchy(parents)
	if err != nil {
		panic(err)
	}
	return h
}

// Levels returns t followed by its ancestors, most specific first.
// An unknown topic yields a single level.
func (h *Hierarchy) Levels(t Topic) []Topic {
	if h != nil {
		if chain, ok := h.levels[t]; ok {
			out := make([]Topic, len(chain))
			copy(out, chain)
			return out
		}
	}
	return []Topic{t}
}

// Parent returns the direct parent of t.
func (h *Hierarchy) Parent(t Topic) (Topic, bool) {
	if h == nil {
		return "", false
	}
	p, ok := h.parents[t]
	return p, ok
}

// Known reports whether t appears in the hierarchy as a child or a parent.
func (h *Hierarchy) Known(t Topic) bool {
	if h == nil {
		return false
	}
	_, ok := h.levels[t]
	return ok
}

// Topics returns every topic in the hierarchy in sorted order.
func (h *Hierarchy) Topics() []Topic {
	if h == nil {
		return nil
	}
	out := make([]Topic, 0, len(h.levels))
	for t := range h.levels {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
