package project

import "errors"

// SkipChildren may be returned by a WalkFunc to skip a collection's children.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every item below the root. depth is 0 for root items.
type WalkFunc func(item Item, depth int) error

// Walk visits the tree in pre-order. The root itself is not visited.
// Returning an error other than SkipChildren stops the walk.
func (p *Project) Walk(fn WalkFunc) error {
	return walkChildren(p.root, 0, fn)
}

// WalkItem visits item and its descendants in pre-order.
func WalkItem(item Item, fn WalkFunc) error {
	return walk(item, 0, fn)
}

func walk(item Item, depth int, fn WalkFunc) error {
	if err := fn(item, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	if c, ok := item.(Collection); ok {
		return walkChildren(c, depth+1, fn)
	}
	return nil
}

func walkChildren(c Collection, depth int, fn WalkFunc) error {
	for _, child := range c.Items() {
		if err := walk(child, depth, fn); err != nil {
			return err
		}
	}
	return nil
}
