package structural

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair used to seed a Record.
type Entry[V any] struct {
	Key   string
	Value V
}

// Record is an insertion-ordered mapping from string keys to values. Records
// are treated as immutable once built: With returns a copy and never touches
// the receiver, so two records sharing storage stay safe to hand out.
type Record[V any] struct {
	keys   []string
	values map[string]V
}

// NewRecord builds a record from entries in order. A repeated key keeps its
// first position and takes the later value.
func NewRecord[V any](entries ...Entry[V]) Record[V] {
	rec := Record[V]{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]V, len(entries)),
	}
	for _, entry := range entries {
		rec.put(entry.Key, entry.Value)
	}
	return rec
}

// Len reports the number of keys.
func (r Record[V]) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r Record[V]) Keys() []string {
	if len(r.keys) == 0 {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Get returns the value stored under key.
func (r Record[V]) Get(key string) (V, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Value returns the value stored under key or the zero value when absent.
func (r Record[V]) Value(key string) V {
	return r.values[key]
}

// Has reports whether key is present.
func (r Record[V]) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// All iterates the record in insertion order.
func (r Record[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// With returns a copy of the record where key holds value. Existing keys keep
// their position; new keys are appended.
func (r Record[V]) With(key string, value V) Record[V] {
	out := Record[V]{
		keys:   make([]string, len(r.keys), len(r.keys)+1),
		values: make(map[string]V, len(r.values)+1),
	}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = v
	}
	out.put(key, value)
	return out
}

func (r *Record[V]) put(key string, value V) {
	if r.values == nil {
		r.values = make(map[string]V)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// UnmarshalYAML decodes a YAML mapping keeping the document's key order.
func (r *Record[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("structural: expected mapping at line %d, got %s", node.Line, kindName(node.Kind))
	}

	decoded := Record[V]{
		keys:   make([]string, 0, len(node.Content)/2),
		values: make(map[string]V, len(node.Content)/2),
	}
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		keyNode, valueNode := node.Content[idx], node.Content[idx+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("structural: decode key at line %d: %w", keyNode.Line, err)
		}
		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("structural: decode %q: %w", key, err)
		}
		decoded.put(key, value)
	}
	*r = decoded
	return nil
}

// MarshalYAML encodes the record as a mapping in insertion order.
func (r Record[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("structural: encode %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}
	return node, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
