package project

import "slices"

// Note is a text item with tags.
type Note struct {
	Base
	content string
	tags    []string
}

// NewNote creates a note. An empty id is generated.
func NewNote(id, name, content string) *Note {
	return &Note{
		Base:    newBase(id, name),
		content: content,
		tags:    []string{},
	}
}

// Kind implements Item.
func (n *Note) Kind() Kind { return KindNote }

// Content returns the note text.
func (n *Note) Content() string { return n.content }

// SetContent replaces the note text.
func (n *Note) SetContent(content string) {
	n.content = content
	n.Touch()
}

// Tags returns a copy of the tags.
func (n *Note) Tags() []string {
	return slices.Clone(n.tags)
}

// SetTags replaces the tags.
func (n *Note) SetTags(tags []string) {
	n.tags = slices.Clone(tags)
	if n.tags == nil {
		n.tags = []string{}
	}
	n.Touch()
}

// AddTag appends tag unless it is already present.
func (n *Note) AddTag(tag string) bool {
	if slices.Contains(n.tags, tag) {
		return false
	}
	n.tags = append(n.tags, tag)
	n.Touch()
	return true
}

// RemoveTag removes tag if present.
func (n *Note) RemoveTag(tag string) bool {
	i := slices.Index(n.tags, tag)
	if i < 0 {
		return false
	}
	n.tags = slices.Delete(n.tags, i, i+1)
	n.Touch()
	return true
}

// ToDict implements Item.
func (n *Note) ToDict() Dict {
	d := n.dict(KindNote)
	d["content"] = n.content
	d["tags"] = slices.Clone(n.tags)
	return d
}

// NoteFromDict decodes a note.
func NoteFromDict(d Dict) (*Note, error) {
	tags := d.Strings("tags")
	if tags == nil {
		tags = []string{}
	}
	return &Note{
		Base:    baseFromDict(d, ""),
		content: d.String("content", ""),
		tags:    tags,
	}, nil
}
