package analytics

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a string-keyed map that serializes its keys in insertion
// order. Department and status breakdowns are reported in first-seen order,
// which encoding/json does not preserve for Go maps.
type OrderedMap[V any] struct {
	m *orderedmap.OrderedMap[string, V]
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{m: orderedmap.New[string, V]()}
}

// Set stores v under key. A new key is appended; an existing key keeps its
// original position.
func (o *OrderedMap[V]) Set(key string, v V) {
	o.m.Set(key, v)
}

func (o *OrderedMap[V]) Get(key string) (V, bool) {
	return o.m.Get(key)
}

func (o *OrderedMap[V]) Has(key string) bool {
	return o.m.GetPair(key) != nil
}

func (o *OrderedMap[V]) Keys() []string {
	out := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (o *OrderedMap[V]) Len() int { return o.m.Len() }

// MarshalJSON writes {} for a nil or zero map so empty breakdowns never
// serialize as null.
func (o *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if o == nil || o.m == nil {
		return []byte("{}"), nil
	}
	return o.m.MarshalJSON()
}
