package core

import (
	"fmt"
	"strings"
)

// Entry pairs a discriminator key with the constructor for its creator.
type Entry[T any] struct {
	Key string
	New func() T
}

// Registry maps discriminator values to creator constructors.
// It is built once at package init and never mutated afterwards.
type Registry[T any] struct {
	kind    string
	keys    []string
	entries map[string]func() T
}

// NewRegistry builds a registry for the given selection kind
// (e.g. "platform", "notification type").
// Panics if a key is empty, not normalized, or registered twice.
func NewRegistry[T any](kind string, entries ...Entry[T]) *Registry[T] {
	r := &Registry[T]{
		kind:    kind,
		keys:    make([]string, 0, len(entries)),
		entries: make(map[string]func() T, len(entries)),
	}

	for _, e := range entries {
		if e.Key == "" || e.Key != Normalize(e.Key) {
			panic(fmt.Sprintf("%s key must be non-empty and normalized: %q", kind, e.Key))
		}
		if e.New == nil {
			panic(fmt.Sprintf("%s %q registered without a constructor", kind, e.Key))
		}
		if _, exists := r.entries[e.Key]; exists {
			panic(fmt.Sprintf("%s already registered: %s", kind, e.Key))
		}
		r.entries[e.Key] = e.New
		r.keys = append(r.keys, e.Key)
	}

	return r
}

// Lookup returns a fresh creator for the selection.
// The selection is trimmed and matched case-insensitively.
// Returns an *UnsupportedSelectionError if nothing matches.
func (r *Registry[T]) Lookup(selection string) (T, error) {
	if ctor, ok := r.entries[Normalize(selection)]; ok {
		return ctor(), nil
	}

	var zero T
	return zero, &UnsupportedSelectionError{
		Kind:     r.kind,
		Value:    selection,
		Accepted: r.Keys(),
	}
}

// Keys returns the accepted discriminators in registration order.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Kind returns the selection kind used in prompts and errors.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Normalize trims surrounding whitespace and lower-cases a discriminator.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
