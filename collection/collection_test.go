package collection_test

import (
	"errors"
	"testing"

	"github.com/mirrorkit/mirror/collection"
)

func TestList_Ordering(t *testing.T) {
	l := collection.NewList(1, 2, 3)

	l.Append(4)
	l.Insert(0, 0)
	l.RemoveAt(2)
	l.Set(0, 9)

	got := l.Items()
	want := []int{9, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestList_ItemsIsSnapshot(t *testing.T) {
	l := collection.NewList("a", "b")

	snap := l.Items()
	snap[0] = "mutated"

	if l.At(0) != "a" {
		t.Error("mutating the Items() slice should not affect the list")
	}
}

func TestList_AdoptElements(t *testing.T) {
	dst := collection.NewList("x")
	src := collection.NewList("a", "b", "c")

	if err := dst.AdoptElements(src); err != nil {
		t.Fatalf("AdoptElements() error: %v", err)
	}

	got := dst.Items()
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("Items() = %v, want [a b c]", got)
	}
}

func TestList_AdoptElements_Self(t *testing.T) {
	l := collection.NewList("a", "b")

	if err := l.AdoptElements(l); err != nil {
		t.Fatalf("AdoptElements(self) error: %v", err)
	}

	got := l.Items()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("self-adopt corrupted contents: %v", got)
	}
}

func TestList_AdoptElements_Incompatible(t *testing.T) {
	dst := collection.NewList("a")
	src := collection.NewList(1, 2)

	err := dst.AdoptElements(src)
	if !errors.Is(err, collection.ErrIncompatible) {
		t.Errorf("AdoptElements() error = %v, want ErrIncompatible", err)
	}
	if got := dst.Items(); len(got) != 1 || got[0] != "a" {
		t.Errorf("failed adopt should not mutate the receiver: %v", got)
	}
}

func TestObservableList_Events(t *testing.T) {
	l := collection.NewObservableList[string]()

	var changes []collection.Change[string]
	unsubscribe := l.OnChange(func(c collection.Change[string]) {
		changes = append(changes, c)
	})

	l.Append("a", "b")
	l.Insert(1, "mid")
	l.Set(0, "A")
	l.RemoveAt(2)
	l.Clear()

	want := []collection.ChangeKind{
		collection.ChangeAdd,
		collection.ChangeAdd,
		collection.ChangeAdd,
		collection.ChangeReplace,
		collection.ChangeRemove,
		collection.ChangeReset,
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i, k := range want {
		if changes[i].Kind != k {
			t.Errorf("changes[%d].Kind = %d, want %d", i, changes[i].Kind, k)
		}
	}

	if changes[2].Index != 1 || changes[2].Value != "mid" {
		t.Errorf("insert change = %+v, want index 1 value mid", changes[2])
	}
	if changes[5].Index != -1 {
		t.Errorf("reset change index = %d, want -1", changes[5].Index)
	}

	unsubscribe()
	l.Append("silent")
	if len(changes) != len(want) {
		t.Error("unsubscribed handler should not be called")
	}
}

func TestObservableList_AdoptElements_SingleReset(t *testing.T) {
	dst := collection.NewObservableList("x", "y")
	src := collection.NewObservableList("a")

	var changes []collection.Change[string]
	dst.OnChange(func(c collection.Change[string]) {
		changes = append(changes, c)
	})

	if err := dst.AdoptElements(src); err != nil {
		t.Fatalf("AdoptElements() error: %v", err)
	}

	if len(changes) != 1 || changes[0].Kind != collection.ChangeReset {
		t.Errorf("subscriber saw %v, want a single ChangeReset", changes)
	}
	if got := dst.Items(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Items() = %v, want [a]", got)
	}
}

func TestObservableList_AdoptElements_Self(t *testing.T) {
	l := collection.NewObservableList(1, 2, 3)

	if err := l.AdoptElements(l); err != nil {
		t.Fatalf("AdoptElements(self) error: %v", err)
	}

	got := l.Items()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("self-adopt corrupted contents: %v", got)
	}
}

func TestObservableList_AdoptElements_KindMismatch(t *testing.T) {
	dst := collection.NewObservableList("a")
	src := collection.NewList("b")

	err := dst.AdoptElements(src)
	if !errors.Is(err, collection.ErrIncompatible) {
		t.Errorf("AdoptElements() across kinds error = %v, want ErrIncompatible", err)
	}
}
