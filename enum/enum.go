// Package enum provides human-readable descriptions for enumeration
// values.
//
// Descriptions come from three places, in order: a table registered with
// Register, the value's own Descriptor implementation, and finally
// fmt.Stringer. A value with none of these falls back to fmt.Sprint.
package enum

import (
	"fmt"
	"sync"
)

// Descriptor allows a value to carry its own description.
type Descriptor interface {
	Description() string
}

var (
	descriptions = make(map[any]string)
	mu           sync.RWMutex
)

// Register records a description table for values of E. Later
// registrations for the same value overwrite earlier ones.
func Register[E comparable](table map[E]string) {
	mu.Lock()
	defer mu.Unlock()
	for value, desc := range table {
		descriptions[value] = desc
	}
}

// Describe returns the description for v.
func Describe(v any) string {
	mu.RLock()
	desc, ok := descriptions[v]
	mu.RUnlock()
	if ok {
		return desc
	}

	if d, ok := v.(Descriptor); ok {
		return d.Description()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Reset clears the registered description tables.
// This is primarily useful for test isolation.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	descriptions = make(map[any]string)
}
