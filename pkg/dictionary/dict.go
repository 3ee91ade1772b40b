package dictionary

import (
	"fmt"
	"strings"
)

// Dict is an ordered mapping from dot-separated key paths to string values.
// Keys keep the position of their first insertion; overwriting an existing
// key does not move it. The zero value is not usable, use New.
//
// Dict is not safe for concurrent use. An editing session owns exactly one
// Dict per language and mutates it from a single goroutine.
type Dict struct {
	values map[string]string
	order  []string
}

// New creates an empty Dict.
func New() *Dict {
	return &Dict{values: make(map[string]string)}
}

// ValidateKey checks that key is a non-empty dot-separated path without
// empty segments.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidKey, key)
		}
	}
	return nil
}

// Get returns the value stored under key and whether the key exists.
func (d *Dict) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key exists.
func (d *Dict) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set stores value under key, overwriting any previous value. New keys are
// appended to the iteration order; existing keys keep their position.
// Returns ErrInvalidKey for malformed keys without mutating the Dict.
func (d *Dict) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if _, ok := d.values[key]; !ok {
		d.order = append(d.order, key)
	}
	d.values[key] = value
	return nil
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteSubtree removes key and every key nested beneath it (key itself
// plus all "key.*" descendants). Returns the number of keys removed.
func (d *Dict) DeleteSubtree(key string) int {
	prefix := key + "."
	removed := 0
	kept := d.order[:0]
	for _, k := range d.order {
		if k == key || strings.HasPrefix(k, prefix) {
			delete(d.values, k)
			removed++
			continue
		}
		kept = append(kept, k)
	}
	d.order = kept
	return removed
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of keys.
func (d *Dict) Len() int {
	return len(d.values)
}

// Clone returns a deep copy of the Dict, order included.
func (d *Dict) Clone() *Dict {
	c := &Dict{
		values: make(map[string]string, len(d.values)),
		order:  make([]string, len(d.order)),
	}
	for k, v := range d.values {
		c.values[k] = v
	}
	copy(c.order, d.order)
	return c
}

// Equal reports whether two Dicts hold the same keys and values,
// regardless of insertion order.
func (d *Dict) Equal(other *Dict) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
