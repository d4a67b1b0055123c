package project

import (
	"fmt"
	"sort"
	"sync"
)

// Decoder rebuilds an item from its serialized form.
type Decoder func(d Dict) (Item, error)

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Decoder{}
)

// The built-in decoders recurse into FromDict, so they cannot appear in the
// registry's initializer.
func init() {
	registry[KindCollection] = decoder(ItemCollectionFromDict)
	registry[KindFolder] = decoder(FolderFromDict)
	registry[KindNote] = decoder(NoteFromDict)
	registry[KindDataset] = decoder(DatasetFromDict)
	registry[KindChart] = decoder(ChartFromDict)
}

// decoder adapts a typed constructor so that a failed decode yields a nil Item.
func decoder[T Item](fn func(Dict) (T, error)) Decoder {
	return func(d Dict) (Item, error) {
		item, err := fn(d)
		if err != nil {
			return nil, err
		}
		return item, nil
	}
}

// Register installs the decoder for kind, replacing any previous one.
func Register(kind Kind, dec Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = dec
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FromDict decodes an item using the decoder registered for its "kind" field.
func FromDict(d Dict) (Item, error) {
	kind := Kind(d.String(KeyKind, ""))
	registryMu.RLock()
	dec, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return dec(d)
}
