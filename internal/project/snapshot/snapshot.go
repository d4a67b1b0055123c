// Package snapshot captures items as immutable serialized trees.
//
// Destructive commands keep a Snapshot instead of a live reference so that
// undo can rebuild the exact subtree later, with the original ids and
// timestamps, regardless of what happened to the original objects.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/dshills/plotdoc/internal/project"
)

// ErrEmpty is returned when restoring a zero Snapshot.
var ErrEmpty = errors.New("empty snapshot")

// Snapshot is the frozen serialized form of an item and its children.
// Values keep their Go types, so integers stay integers and NaN or infinite
// fit data survives a capture.
type Snapshot struct {
	doc project.Dict
}

// Capture serializes item. The result shares no state with item.
func Capture(item project.Item) Snapshot {
	return Snapshot{doc: item.ToDict().Clone()}
}

// IsZero reports whether the snapshot holds nothing.
func (s Snapshot) IsZero() bool { return s.doc == nil }

// ID returns the captured item id.
func (s Snapshot) ID() string { return s.doc.String(project.KeyID, "") }

// Name returns the captured item name.
func (s Snapshot) Name() string { return s.doc.String(project.KeyName, "") }

// Kind returns the captured item kind.
func (s Snapshot) Kind() project.Kind { return project.Kind(s.doc.String(project.KeyKind, "")) }

// Restore builds a fresh item tree from the snapshot. Each call yields a new
// tree; the snapshot itself is never handed out.
func (s Snapshot) Restore() (project.Item, error) {
	if s.IsZero() {
		return nil, ErrEmpty
	}
	item, err := project.FromDict(s.doc.Clone())
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.ID(), err)
	}
	return item, nil
}

// Dict returns a copy of the captured document.
func (s Snapshot) Dict() project.Dict { return s.doc.Clone() }

// String implements fmt.Stringer.
func (s Snapshot) String() string {
	return fmt.Sprintf("Snapshot(%s %s %q)", s.Kind(), s.ID(), s.Name())
}
