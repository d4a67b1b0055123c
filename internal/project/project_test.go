package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree returns a project with:
//
//	F1/
//	  N1
//	  F2/
//	    N2
//	N3
func buildTree(t *testing.T) *Project {
	t.Helper()
	p := New("Demo", "")
	p.AddItem(NewFolder("F1", "F1"), RootToken)
	p.AddItem(NewNote("N1", "N1", ""), "F1")
	p.AddItem(NewFolder("F2", "F2"), "F1")
	p.AddItem(NewNote("N2", "N2", ""), "F2")
	p.AddItem(NewNote("N3", "N3", ""), "")
	return p
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func TestNewProject(t *testing.T) {
	p := New("Demo", "desc")
	assert.Equal(t, "Demo Root", p.Root().Name())
	assert.Zero(t, p.Len())
	assert.Empty(t, p.AllItems())

	root, ok := p.FindItem(RootToken)
	require.True(t, ok)
	assert.Same(t, p.Root(), root)

	root, ok = p.FindItem(p.Root().ID())
	require.True(t, ok)
	assert.Same(t, p.Root(), root)
}

func TestAddItemParentResolution(t *testing.T) {
	p := New("Demo", "")
	n := NewNote("n", "N", "")
	p.AddItem(n, "")
	assert.Equal(t, p.Root().ID(), n.ParentID())

	unknown := NewNote("u", "U", "")
	p.AddItem(unknown, "missing")
	assert.Equal(t, p.Root().ID(), unknown.ParentID())

	leafParent := NewNote("l", "L", "")
	p.AddItem(leafParent, "n")
	assert.Equal(t, p.Root().ID(), leafParent.ParentID())
	assert.Equal(t, 3, p.Len())
}

func TestAddItemIndexesDescendants(t *testing.T) {
	p := New("Demo", "")
	f := NewFolder("f", "F")
	sub := NewFolder("s", "S")
	sub.AddItem(NewNote("deep", "Deep", ""))
	f.AddItem(sub)

	p.AddItem(f, RootToken)

	for _, id := range []string{"f", "s", "deep"} {
		_, ok := p.FindItem(id)
		assert.True(t, ok, id)
	}
	assert.Equal(t, 3, p.Len())
}

func TestAddItemAtPosition(t *testing.T) {
	p := buildTree(t)
	p.AddItemAt(NewNote("X", "X", ""), "F1", 0)
	f1, _ := p.FindItem("F1")
	assert.Equal(t, []string{"X", "N1", "F2"}, ids(f1.(Collection).Items()))
}

func TestAllItemsPreOrder(t *testing.T) {
	p := buildTree(t)
	assert.Equal(t, []string{"F1", "N1", "F2", "N2", "N3"}, ids(p.AllItems()))
	assert.Equal(t, []string{"F1", "N3"}, ids(p.RootItems()))
	assert.Equal(t, 5, p.Len())
}

func TestRemoveCascades(t *testing.T) {
	p := buildTree(t)
	removed := p.RemoveItemByID("F1")

	assert.Equal(t, []string{"N1", "N2", "F2", "F1"}, removed)
	for _, id := range removed {
		_, ok := p.FindItem(id)
		assert.False(t, ok, id)
	}
	assert.Equal(t, []string{"N3"}, ids(p.AllItems()))
	assert.Equal(t, 1, p.Len())
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	p := buildTree(t)
	assert.Nil(t, p.RemoveItemByID("missing"))
	assert.Nil(t, p.RemoveItem(NewNote("N1", "impostor", "")))
	assert.Equal(t, 5, p.Len())
}

func TestRemoveRootPanics(t *testing.T) {
	p := buildTree(t)
	assert.PanicsWithValue(t, ErrRemoveRoot, func() { p.RemoveItemByID(RootToken) })
	assert.PanicsWithValue(t, ErrRemoveRoot, func() { p.RemoveItem(p.Root()) })
}

func TestMoveItem(t *testing.T) {
	p := buildTree(t)
	require.NoError(t, p.MoveItem("F2", RootToken, 0))

	assert.Equal(t, []string{"F2", "N2", "F1", "N1", "N3"}, ids(p.AllItems()))
	n2, ok := p.FindItem("N2")
	require.True(t, ok)
	assert.Equal(t, "F2", n2.ParentID())
	assert.Equal(t, 5, p.Len())

	parent, ok := p.Parent("F2")
	require.True(t, ok)
	assert.Same(t, p.Root(), parent)
}

func TestMoveItemErrors(t *testing.T) {
	p := buildTree(t)
	tests := []struct {
		name   string
		id     string
		target string
		want   error
	}{
		{"root", RootToken, "F1", ErrRemoveRoot},
		{"unknown item", "missing", "F1", ErrNotFound},
		{"unknown target", "N3", "missing", ErrNotFound},
		{"into self", "F1", "F1", ErrMoveIntoSelf},
		{"into descendant", "F1", "F2", ErrMoveIntoSelf},
		{"into leaf", "N3", "N1", ErrNotCollection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.MoveItem(tt.id, tt.target, -1)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
	assert.Equal(t, []string{"F1", "N1", "F2", "N2", "N3"}, ids(p.AllItems()))
}

func TestWalkDepthAndSkip(t *testing.T) {
	p := buildTree(t)
	var visited []string
	var depths []int
	err := p.Walk(func(item Item, depth int) error {
		visited = append(visited, item.ID())
		depths = append(depths, depth)
		if item.ID() == "F2" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "N1", "F2", "N3"}, visited)
	assert.Equal(t, []int{0, 1, 1, 0}, depths)

	stop := errors.New("stop")
	err = p.Walk(func(item Item, _ int) error {
		if item.ID() == "N1" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
}

func TestProjectDictRoundTrip(t *testing.T) {
	p := buildTree(t)
	p.Metadata["owner"] = "lab"

	back, err := ProjectFromDict(p.ToDict())
	require.NoError(t, err)

	assert.Equal(t, "Demo", back.Name)
	assert.Equal(t, "lab", back.Metadata["owner"])
	assert.Equal(t, p.Root().ID(), back.Root().ID())
	assert.Equal(t, ids(p.AllItems()), ids(back.AllItems()))
	assert.Equal(t, 5, back.Len())

	n2, ok := back.FindItem("N2")
	require.True(t, ok)
	assert.Equal(t, "F2", n2.ParentID())
}
