package project

import (
	"fmt"
	"reflect"
	"time"
)

// Dict is the serialized form of an item or project.
type Dict map[string]any

// Dict keys shared by every item.
const (
	KeyKind       = "kind"
	KeyID         = "id"
	KeyName       = "name"
	KeyParentID   = "parentId"
	KeyCreatedAt  = "createdAt"
	KeyModifiedAt = "modifiedAt"
	KeyMetadata   = "metadata"
	KeyItems      = "items"
)

// String returns the string at key, or def when absent or not a string.
func (d Dict) String(key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the bool at key, or def.
func (d Dict) Bool(key string, def bool) bool {
	if b, ok := d[key].(bool); ok {
		return b
	}
	return def
}

// Map returns the nested map at key as a fresh Dict, or nil.
func (d Dict) Map(key string) Dict {
	return toDict(d[key])
}

// List returns the list at key, or nil.
func (d Dict) List(key string) []any {
	switch v := d[key].(type) {
	case []any:
		return v
	case []Dict:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	default:
		return nil
	}
}

// Strings returns the list at key converted to strings.
// Non-string elements are formatted with %v.
func (d Dict) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out
	default:
		return nil
	}
}

// Time returns the timestamp at key. Strings are parsed as RFC3339.
func (d Dict) Time(key string) (time.Time, bool) {
	switch v := d[key].(type) {
	case time.Time:
		return v.UTC(), true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}

// Clone returns a deep copy of d. Maps and slices are copied at every depth;
// other values, including NaN and infinite floats, are kept as they are.
func (d Dict) Clone() Dict {
	if d == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(d)).Interface().(Dict)
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	default:
		return v
	}
}

func toDict(v any) Dict {
	switch m := v.(type) {
	case Dict:
		return m
	case map[string]any:
		return Dict(m)
	case map[any]any:
		out := make(Dict, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return nil
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// copyMap returns a shallow copy of m; never nil.
func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
