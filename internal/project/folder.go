package project

// Folder is a pure container in the project tree.
type Folder struct {
	ItemCollection
}

// NewFolder creates an empty folder. An empty id is generated.
func NewFolder(id, name string) *Folder {
	if name == "" {
		name = "New Folder"
	}
	return &Folder{ItemCollection: *NewItemCollection(id, name)}
}

// Kind implements Item.
func (f *Folder) Kind() Kind { return KindFolder }

// ToDict implements Item.
func (f *Folder) ToDict() Dict {
	return f.collectionDict(KindFolder)
}

// FolderFromDict decodes a folder and its children.
func FolderFromDict(d Dict) (*Folder, error) {
	f := &Folder{ItemCollection: ItemCollection{
		Base:     baseFromDict(d, "New Folder"),
		children: make(map[string]Item),
	}}
	if err := f.fill(d); err != nil {
		return nil, err
	}
	return f, nil
}
