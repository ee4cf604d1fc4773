// Package collection provides the two ordered list kinds used in
// data-binding scenarios: ObservableList, which notifies subscribers of
// content changes, and List, a plain bindable list.
//
// Both kinds support in-place merging via Mergeable, which is how the
// mirror package refreshes a bound list's contents without replacing the
// list instance that observers hold.
//
// Lists are not safe for concurrent mutation; callers that share an
// instance across goroutines must serialize access.
package collection

import "errors"

// ErrIncompatible indicates an AdoptElements source of a different list
// kind or element type than the receiver.
var ErrIncompatible = errors.New("incompatible collection")

// Mergeable is implemented by list kinds whose contents can be replaced
// in place, preserving the receiver instance's identity. Only the list
// kinds in this package qualify; the unexported marker method keeps
// foreign containers out.
type Mergeable interface {
	// AdoptElements replaces the receiver's elements with src's elements,
	// in src's order. The receiver instance is unchanged; only its
	// contents are. src must be the same list kind and element type.
	//
	// Adopting from the receiver itself is a safe no-op rewrite: the
	// source elements are snapshotted before the receiver is cleared.
	AdoptElements(src Mergeable) error

	bindableList()
}

// ChangeKind identifies the kind of mutation an ObservableList reports.
type ChangeKind uint8

const (
	// ChangeAdd reports an element appended or inserted at Index.
	ChangeAdd ChangeKind = iota

	// ChangeRemove reports an element removed from Index.
	ChangeRemove

	// ChangeReplace reports the element at Index being overwritten.
	ChangeReplace

	// ChangeReset reports a wholesale content change; Index is -1.
	ChangeReset
)

// Change describes one mutation of an ObservableList.
type Change[E any] struct {
	Kind  ChangeKind
	Index int
	Value E // the added or replacing element; zero for remove and reset
}
