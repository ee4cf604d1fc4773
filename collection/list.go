package collection

// List is an ordered, mutable list without change notification. It is the
// classic bindable list kind: code that holds a *List observes content
// changes by re-reading it.
type List[E any] struct {
	items []E
}

// NewList returns a List seeded with items.
func NewList[E any](items ...E) *List[E] {
	l := &List[E]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l *List[E]) At(i int) E {
	return l.items[i]
}

// Items returns a copy of the elements in order. Mutating the returned
// slice does not affect the list.
func (l *List[E]) Items() []E {
	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds items to the end of the list.
func (l *List[E]) Append(items ...E) {
	l.items = append(l.items, items...)
}

// Insert places item at index i, shifting later elements right.
// It panics if i is out of range (i == Len appends).
func (l *List[E]) Insert(i int, item E) {
	var zero E
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
}

// RemoveAt deletes the element at index i. It panics if i is out of range.
func (l *List[E]) RemoveAt(i int) {
	var zero E
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// Set overwrites the element at index i. It panics if i is out of range.
func (l *List[E]) Set(i int, item E) {
	l.items[i] = item
}

// Clear removes all elements.
func (l *List[E]) Clear() {
	l.items = l.items[:0]
}

// Replace swaps the list's contents for items.
func (l *List[E]) Replace(items []E) {
	l.items = l.items[:0]
	l.items = append(l.items, items...)
}

// AdoptElements implements Mergeable.
func (l *List[E]) AdoptElements(src Mergeable) error {
	other, ok := src.(*List[E])
	if !ok {
		return ErrIncompatible
	}
	// Snapshot first so adopting from an aliased source stays correct.
	snapshot := other.Items()
	l.Replace(snapshot)
	return nil
}

func (l *List[E]) bindableList() {}
