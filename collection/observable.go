package collection

// ObservableList is an ordered, mutable list that reports every content
// change to subscribers. Subscribers attach to the list instance, so code
// that refreshes a bound list should mutate it (or merge into it via
// AdoptElements) rather than replace it.
type ObservableList[E any] struct {
	items    []E
	handlers map[int]func(Change[E])
	nextID   int
}

// NewObservableList returns an ObservableList seeded with items.
func NewObservableList[E any](items ...E) *ObservableList[E] {
	l := &ObservableList[E]{}
	l.items = append(l.items, items...)
	return l
}

// OnChange registers fn to be called synchronously after every mutation.
// The returned function unsubscribes it.
func (l *ObservableList[E]) OnChange(fn func(Change[E])) func() {
	if l.handlers == nil {
		l.handlers = make(map[int]func(Change[E]))
	}
	id := l.nextID
	l.nextID++
	l.handlers[id] = fn
	return func() {
		delete(l.handlers, id)
	}
}

func (l *ObservableList[E]) emit(c Change[E]) {
	for _, fn := range l.handlers {
		fn(c)
	}
}

// Len returns the number of elements.
func (l *ObservableList[E]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l *ObservableList[E]) At(i int) E {
	return l.items[i]
}

// Items returns a copy of the elements in order. Mutating the returned
// slice does not affect the list.
func (l *ObservableList[E]) Items() []E {
	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds items to the end of the list, emitting one ChangeAdd per item.
func (l *ObservableList[E]) Append(items ...E) {
	for _, item := range items {
		l.items = append(l.items, item)
		l.emit(Change[E]{Kind: ChangeAdd, Index: len(l.items) - 1, Value: item})
	}
}

// Insert places item at index i, shifting later elements right.
// It panics if i is out of range (i == Len appends).
func (l *ObservableList[E]) Insert(i int, item E) {
	var zero E
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.emit(Change[E]{Kind: ChangeAdd, Index: i, Value: item})
}

// RemoveAt deletes the element at index i. It panics if i is out of range.
func (l *ObservableList[E]) RemoveAt(i int) {
	var zero E
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	l.emit(Change[E]{Kind: ChangeRemove, Index: i})
}

// Set overwrites the element at index i. It panics if i is out of range.
func (l *ObservableList[E]) Set(i int, item E) {
	l.items[i] = item
	l.emit(Change[E]{Kind: ChangeReplace, Index: i, Value: item})
}

// Clear removes all elements, emitting a single ChangeReset.
func (l *ObservableList[E]) Clear() {
	l.items = l.items[:0]
	l.emit(Change[E]{Kind: ChangeReset, Index: -1})
}

// Replace swaps the list's contents for items, emitting a single ChangeReset.
func (l *ObservableList[E]) Replace(items []E) {
	l.items = l.items[:0]
	l.items = append(l.items, items...)
	l.emit(Change[E]{Kind: ChangeReset, Index: -1})
}

// AdoptElements implements Mergeable. Subscribers observe the merge as a
// single ChangeReset.
func (l *ObservableList[E]) AdoptElements(src Mergeable) error {
	other, ok := src.(*ObservableList[E])
	if !ok {
		return ErrIncompatible
	}
	// Snapshot first so adopting from an aliased source stays correct.
	snapshot := other.Items()
	l.Replace(snapshot)
	return nil
}

func (l *ObservableList[E]) bindableList() {}
