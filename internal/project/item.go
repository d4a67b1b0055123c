package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the concrete variant of an item.
type Kind string

// Item kinds.
const (
	KindCollection Kind = "collection"
	KindFolder     Kind = "folder"
	KindNote       Kind = "note"
	KindDataset    Kind = "dataset"
	KindChart      Kind = "chart"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// now is the clock used for timestamps.
var now = func() time.Time {
	return time.Now().UTC()
}

// NewID returns a fresh globally unique item id.
func NewID() string {
	return uuid.NewString()
}

// Item is the capability set shared by every document node.
// The set is closed: only types embedding Base satisfy it.
type Item interface {
	ID() string
	Name() string
	SetName(name string)
	ParentID() string
	Kind() Kind
	CreatedAt() time.Time
	ModifiedAt() time.Time
	Touch()
	Metadata() map[string]any
	SetMetadata(key string, value any)
	ToDict() Dict

	base() *Base
}

// Base holds the identity and bookkeeping fields of an item.
type Base struct {
	id         string
	name       string
	parentID   string
	createdAt  time.Time
	modifiedAt time.Time
	metadata   map[string]any
}

func newBase(id, name string) Base {
	if id == "" {
		id = NewID()
	}
	t := now()
	return Base{
		id:         id,
		name:       name,
		createdAt:  t,
		modifiedAt: t,
		metadata:   make(map[string]any),
	}
}

func (b *Base) base() *Base { return b }

// ID returns the item id.
func (b *Base) ID() string { return b.id }

// Name returns the display name.
func (b *Base) Name() string { return b.name }

// SetName renames the item and updates the modification time.
func (b *Base) SetName(name string) {
	b.name = name
	b.Touch()
}

// ParentID returns the owning collection id, or "" when detached.
func (b *Base) ParentID() string { return b.parentID }

// CreatedAt returns the creation time.
func (b *Base) CreatedAt() time.Time { return b.createdAt }

// ModifiedAt returns the last modification time.
func (b *Base) ModifiedAt() time.Time { return b.modifiedAt }

// Touch advances the modification time. It never moves backwards.
func (b *Base) Touch() {
	t := now()
	if t.Before(b.modifiedAt) {
		t = b.modifiedAt
	}
	b.modifiedAt = t
}

// Metadata returns the open metadata map. Mutating it does not touch the item;
// use SetMetadata for tracked changes.
func (b *Base) Metadata() map[string]any {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	return b.metadata
}

// SetMetadata stores a metadata value and updates the modification time.
func (b *Base) SetMetadata(key string, value any) {
	b.Metadata()[key] = value
	b.Touch()
}

// String implements fmt.Stringer.
func (b *Base) String() string {
	return fmt.Sprintf("Item(id=%q, name=%q)", b.id, b.name)
}

func (b *Base) dict(kind Kind) Dict {
	return Dict{
		KeyKind:       string(kind),
		KeyID:         b.id,
		KeyName:       b.name,
		KeyParentID:   b.parentID,
		KeyCreatedAt:  formatTime(b.createdAt),
		KeyModifiedAt: formatTime(b.modifiedAt),
		KeyMetadata:   copyMap(b.metadata),
	}
}

// baseFromDict restores the common fields. A missing id is generated, a
// missing createdAt defaults to now, and modifiedAt is clamped to createdAt.
func baseFromDict(d Dict, defaultName string) Base {
	b := newBase(d.String(KeyID, ""), d.String(KeyName, defaultName))
	b.parentID = d.String(KeyParentID, "")
	if t, ok := d.Time(KeyCreatedAt); ok {
		b.createdAt = t
	}
	b.modifiedAt = b.createdAt
	if t, ok := d.Time(KeyModifiedAt); ok && !t.Before(b.createdAt) {
		b.modifiedAt = t
	}
	if md := d.Map(KeyMetadata); md != nil {
		b.metadata = copyMap(md)
	}
	return b
}
