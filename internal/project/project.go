package project

import (
	"fmt"
)

// RootToken may be passed wherever a parent id is expected to mean the root.
const RootToken = "root"

// Version is written into serialized projects.
const Version = "1.0"

// Project is a document: a root collection plus a flat index of every item
// below it. The root itself is not indexed.
type Project struct {
	Name        string
	Description string
	Metadata    map[string]any

	root  *ItemCollection
	index map[string]Item
}

// New creates an empty project.
func New(name, description string) *Project {
	if name == "" {
		name = "Untitled Project"
	}
	return &Project{
		Name:        name,
		Description: description,
		Metadata:    make(map[string]any),
		root:        NewItemCollection("", name+" Root"),
		index:       make(map[string]Item),
	}
}

// Root returns the root collection.
func (p *Project) Root() *ItemCollection { return p.root }

// IsRoot reports whether id addresses the root collection.
func (p *Project) IsRoot(id string) bool {
	return id == RootToken || id == p.root.ID()
}

// Len returns the number of indexed items.
func (p *Project) Len() int { return len(p.index) }

// Collection resolves parentID to a collection. Empty, RootToken, unknown and
// non-collection ids all resolve to the root; ok is false in the last two cases.
func (p *Project) Collection(parentID string) (c Collection, ok bool) {
	if parentID == "" || p.IsRoot(parentID) {
		return p.root, true
	}
	item, found := p.index[parentID]
	if !found {
		return p.root, false
	}
	c, isColl := item.(Collection)
	if !isColl {
		return p.root, false
	}
	return c, true
}

// AddItem appends item under parentID and indexes it with its descendants.
func (p *Project) AddItem(item Item, parentID string) {
	p.AddItemAt(item, parentID, -1)
}

// AddItemAt inserts item at index under parentID. A negative or out-of-range
// index appends.
func (p *Project) AddItemAt(item Item, parentID string, index int) {
	parent, _ := p.Collection(parentID)
	parent.InsertItem(item, index)
	p.indexTree(item)
}

func (p *Project) indexTree(item Item) {
	p.index[item.ID()] = item
	if c, ok := item.(Collection); ok {
		for _, child := range c.Items() {
			p.indexTree(child)
		}
	}
}

// RemoveItem removes item and its subtree. Removing the root panics with
// ErrRemoveRoot. An item that is not the indexed instance is ignored.
func (p *Project) RemoveItem(item Item) []string {
	if item == nil {
		return nil
	}
	if Item(p.root) == item {
		panic(ErrRemoveRoot)
	}
	if indexed, ok := p.index[item.ID()]; !ok || indexed != item {
		return nil
	}
	return p.RemoveItemByID(item.ID())
}

// RemoveItemByID removes the item with id and its subtree, returning the
// removed ids with descendants ahead of their ancestors. Unknown ids are a
// no-op. The root cannot be removed.
func (p *Project) RemoveItemByID(id string) []string {
	if p.IsRoot(id) {
		panic(ErrRemoveRoot)
	}
	item, ok := p.index[id]
	if !ok {
		return nil
	}

	var ids []string
	collectPostOrder(item, &ids)

	for _, rid := range ids {
		it, ok := p.index[rid]
		if !ok {
			continue
		}
		if parent, ok := p.parentOf(it); ok {
			parent.RemoveItemByID(rid)
		}
		delete(p.index, rid)
	}
	return ids
}

func collectPostOrder(item Item, ids *[]string) {
	if c, ok := item.(Collection); ok {
		for _, child := range c.Items() {
			collectPostOrder(child, ids)
		}
	}
	*ids = append(*ids, item.ID())
}

func (p *Project) parentOf(item Item) (Collection, bool) {
	pid := item.ParentID()
	if pid == "" {
		return nil, false
	}
	if pid == p.root.ID() {
		return p.root, true
	}
	parent, ok := p.index[pid].(Collection)
	return parent, ok
}

// Parent returns the collection that directly holds id.
func (p *Project) Parent(id string) (Collection, bool) {
	item, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.parentOf(item)
}

// MoveItem reparents id under targetParentID at index (negative appends).
// The index is not modified since the moved subtree stays in the project.
func (p *Project) MoveItem(id, targetParentID string, index int) error {
	if p.IsRoot(id) {
		return ErrRemoveRoot
	}
	item, ok := p.index[id]
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrNotFound)
	}

	var target Collection
	if targetParentID == "" || p.IsRoot(targetParentID) {
		target = p.root
	} else {
		t, ok := p.index[targetParentID]
		if !ok {
			return fmt.Errorf("move %s to %s: %w", id, targetParentID, ErrNotFound)
		}
		if t.ID() == id {
			return fmt.Errorf("move %s: %w", id, ErrMoveIntoSelf)
		}
		target, ok = t.(Collection)
		if !ok {
			return fmt.Errorf("move %s to %s: %w", id, targetParentID, ErrNotCollection)
		}
		if c, ok := item.(Collection); ok && c.Contains(target.ID()) {
			return fmt.Errorf("move %s: %w", id, ErrMoveIntoSelf)
		}
	}

	if source, ok := p.parentOf(item); ok {
		source.RemoveItemByID(id)
	}
	target.InsertItem(item, index)
	return nil
}

// FindItem looks up id, treating RootToken and the root id as the root.
func (p *Project) FindItem(id string) (Item, bool) {
	if p.IsRoot(id) {
		return p.root, true
	}
	item, ok := p.index[id]
	return item, ok
}

// AllItems returns every indexed item in tree pre-order.
func (p *Project) AllItems() []Item {
	out := make([]Item, 0, len(p.index))
	_ = p.Walk(func(item Item, _ int) error {
		out = append(out, item)
		return nil
	})
	return out
}

// RootItems returns the direct children of the root.
func (p *Project) RootItems() []Item {
	return p.root.Items()
}

// ToDict serializes the project with its whole tree.
func (p *Project) ToDict() Dict {
	return Dict{
		"name":        p.Name,
		"description": p.Description,
		"version":     Version,
		KeyMetadata:   copyMap(p.Metadata),
		"root":        p.root.ToDict(),
	}
}

// ProjectFromDict rebuilds a project and its index.
func ProjectFromDict(d Dict) (*Project, error) {
	p := New(d.String("name", ""), d.String("description", ""))
	if md := d.Map(KeyMetadata); md != nil {
		p.Metadata = copyMap(md)
	}
	if rd := d.Map("root"); rd != nil {
		root, err := ItemCollectionFromDict(rd)
		if err != nil {
			return nil, fmt.Errorf("decode project %q: %w", p.Name, err)
		}
		root.parentID = ""
		p.root = root
	}
	for _, child := range p.root.Items() {
		p.indexTree(child)
	}
	return p, nil
}
