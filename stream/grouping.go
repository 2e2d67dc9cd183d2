package stream

import (
	"fmt"
	"iter"
	"strings"
)

// Grouping is a map that remembers the order in which keys were first added.
type Grouping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newGrouping[K comparable, V any]() *Grouping[K, V] {
	return &Grouping[K, V]{values: make(map[K]V)}
}

func (g *Grouping[K, V]) put(k K, v V) {
	if _, exists := g.values[k]; !exists {
		g.keys = append(g.keys, k)
	}
	g.values[k] = v
}

// Keys returns the keys in first-seen order.
func (g *Grouping[K, V]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the value stored for k.
func (g *Grouping[K, V]) Get(k K) (V, bool) {
	v, ok := g.values[k]
	return v, ok
}

// Len returns the number of keys.
func (g *Grouping[K, V]) Len() int { return len(g.keys) }

// All iterates key/value pairs in first-seen key order.
func (g *Grouping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map.
func (g *Grouping[K, V]) Map() map[K]V {
	out := make(map[K]V, len(g.values))
	for k, v := range g.values {
		out[k] = v
	}
	return out
}

// String formats the grouping like a map, keys in first-seen order.
func (g *Grouping[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, k := range g.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, g.values[k])
	}
	b.WriteByte(']')
	return b.String()
}
