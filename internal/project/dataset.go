package project

// Dataset references a tabular payload owned by an external data engine.
//
// The payload is opaque: it is never interpreted and never serialized.
// ToDict records only whether one was attached; an external loader
// reattaches it after FromDict.
type Dataset struct {
	Base
	payload    any
	sourceFile string
	columnInfo map[string]any
}

// NewDataset creates a dataset without a payload.
func NewDataset(id, name, sourceFile string) *Dataset {
	return &Dataset{
		Base:       newBase(id, name),
		sourceFile: sourceFile,
		columnInfo: make(map[string]any),
	}
}

// Kind implements Item.
func (d *Dataset) Kind() Kind { return KindDataset }

// Payload returns the attached tabular payload, or nil.
func (d *Dataset) Payload() any { return d.payload }

// HasData reports whether a payload is attached.
func (d *Dataset) HasData() bool { return d.payload != nil }

// SetPayload attaches payload and records its column names.
func (d *Dataset) SetPayload(payload any, columns []string) {
	d.payload = payload
	d.setColumns(columns)
	d.Touch()
}

// Reattach restores a payload dropped by serialization. It does not count
// as a modification.
func (d *Dataset) Reattach(payload any) { d.payload = payload }

// SetColumns records column names without attaching a payload.
func (d *Dataset) SetColumns(columns []string) {
	d.setColumns(columns)
	d.Touch()
}

func (d *Dataset) setColumns(columns []string) {
	if d.columnInfo == nil {
		d.columnInfo = make(map[string]any)
	}
	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = c
	}
	d.columnInfo["columns"] = cols
}

// Columns returns the recorded column names.
func (d *Dataset) Columns() []string {
	return Dict(d.columnInfo).Strings("columns")
}

// SourceFile returns the path the data was imported from, if any.
func (d *Dataset) SourceFile() string { return d.sourceFile }

// ColumnInfo returns a copy of the column metadata.
func (d *Dataset) ColumnInfo() map[string]any {
	return copyMap(d.columnInfo)
}

// ToDict implements Item.
func (d *Dataset) ToDict() Dict {
	out := d.dict(KindDataset)
	out["sourceFile"] = d.sourceFile
	out["columnInfo"] = copyMap(d.columnInfo)
	out["hasData"] = d.payload != nil
	return out
}

// DatasetFromDict decodes a dataset. The payload is left unset.
func DatasetFromDict(data Dict) (*Dataset, error) {
	ds := &Dataset{
		Base:       baseFromDict(data, ""),
		sourceFile: data.String("sourceFile", ""),
		columnInfo: make(map[string]any),
	}
	if info := data.Map("columnInfo"); info != nil {
		ds.columnInfo = copyMap(info)
	}
	return ds, nil
}
