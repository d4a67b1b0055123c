package project

// Collection is an item that owns other items.
type Collection interface {
	Item
	Items() []Item
	Get(id string) (Item, bool)
	IndexOf(id string) int
	Count() int
	Len() int
	Contains(id string) bool
	AddItem(item Item)
	InsertItem(item Item, index int)
	RemoveItem(item Item)
	RemoveItemByID(id string) (Item, bool)

	collection() *ItemCollection
}

// ItemCollection keeps child items in insertion order.
// For every child c, c.ParentID() equals the collection id.
type ItemCollection struct {
	Base
	order    []string
	children map[string]Item
}

// NewItemCollection creates an empty collection. An empty id is generated.
func NewItemCollection(id, name string) *ItemCollection {
	if name == "" {
		name = "Collection"
	}
	return &ItemCollection{
		Base:     newBase(id, name),
		children: make(map[string]Item),
	}
}

func (c *ItemCollection) collection() *ItemCollection { return c }

// Kind implements Item.
func (c *ItemCollection) Kind() Kind { return KindCollection }

// Items returns the children in insertion order. The slice is a snapshot.
func (c *ItemCollection) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.children[id])
	}
	return out
}

// Get returns the direct child with the given id.
func (c *ItemCollection) Get(id string) (Item, bool) {
	it, ok := c.children[id]
	return it, ok
}

// IndexOf returns the position of a direct child, or -1.
func (c *ItemCollection) IndexOf(id string) int {
	for i, cid := range c.order {
		if cid == id {
			return i
		}
	}
	return -1
}

// Count returns the number of direct children.
func (c *ItemCollection) Count() int {
	return len(c.order)
}

// Len returns the number of leaf items below the collection. A nested
// collection is not counted itself; it contributes its own Len, so a folder
// holding a note and a subfolder with one dataset has Len 2.
func (c *ItemCollection) Len() int {
	n := 0
	for _, id := range c.order {
		if sub, ok := c.children[id].(Collection); ok {
			n += sub.Len()
		} else {
			n++
		}
	}
	return n
}

// Contains reports whether id is a transitive descendant.
func (c *ItemCollection) Contains(id string) bool {
	if _, ok := c.children[id]; ok {
		return true
	}
	for _, cid := range c.order {
		if sub, ok := c.children[cid].(Collection); ok && sub.Contains(id) {
			return true
		}
	}
	return false
}

// AddItem appends item, replacing any child with the same id in place.
func (c *ItemCollection) AddItem(item Item) {
	c.InsertItem(item, -1)
}

// InsertItem places item at index. A negative or out-of-range index appends.
// A child with the same id keeps its position and is replaced.
func (c *ItemCollection) InsertItem(item Item, index int) {
	if c.children == nil {
		c.children = make(map[string]Item)
	}
	id := item.ID()
	if _, exists := c.children[id]; !exists {
		if index < 0 || index >= len(c.order) {
			c.order = append(c.order, id)
		} else {
			c.order = append(c.order, "")
			copy(c.order[index+1:], c.order[index:])
			c.order[index] = id
		}
	}
	c.children[id] = item
	item.base().parentID = c.id
	c.Touch()
}

// RemoveItem detaches item if it is a direct child.
func (c *ItemCollection) RemoveItem(item Item) {
	c.RemoveItemByID(item.ID())
}

// RemoveItemByID detaches the direct child with id and clears its parent.
func (c *ItemCollection) RemoveItemByID(id string) (Item, bool) {
	item, ok := c.children[id]
	if !ok {
		return nil, false
	}
	delete(c.children, id)
	if i := c.IndexOf(id); i >= 0 {
		c.order = append(c.order[:i], c.order[i+1:]...)
	}
	item.base().parentID = ""
	c.Touch()
	return item, true
}

// ToDict implements Item. Children are serialized recursively in order.
func (c *ItemCollection) ToDict() Dict {
	return c.collectionDict(KindCollection)
}

func (c *ItemCollection) collectionDict(kind Kind) Dict {
	d := c.dict(kind)
	items := make([]any, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.children[id].ToDict())
	}
	d[KeyItems] = items
	return d
}

// fill decodes the children listed under "items" into c.
// Children keep their serialized timestamps; c's own modifiedAt is restored
// afterwards so that decoding is not a modification.
func (c *ItemCollection) fill(d Dict) error {
	modified := c.modifiedAt
	for _, raw := range d.List(KeyItems) {
		child, err := FromDict(toDict(raw))
		if err != nil {
			return err
		}
		c.InsertItem(child, -1)
	}
	c.modifiedAt = modified
	return nil
}

// ItemCollectionFromDict decodes a generic collection.
func ItemCollectionFromDict(d Dict) (*ItemCollection, error) {
	c := &ItemCollection{
		Base:     baseFromDict(d, "Collection"),
		children: make(map[string]Item),
	}
	if err := c.fill(d); err != nil {
		return nil, err
	}
	return c, nil
}
