package mirror

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"

	"github.com/mirrorkit/mirror/collection"
)

func init() {
	// Register the exclusion tag with sentinel
	sentinel.Tag("mirror")
}

// memberClass classifies how a member is copied.
type memberClass uint8

const (
	// classScalar members are replaced wholesale: target.member = source.member.
	classScalar memberClass = iota

	// classMergeable members are the recognized bindable list kinds; the
	// collection-aware variant merges their contents in place.
	classMergeable
)

// member describes one eligible field of a shape.
type member struct {
	name  string
	index []int // reflect.Value.FieldByIndex access path
	class memberClass
}

// shape is the per-type member list, derived once and memoized.
type shape struct {
	typ      reflect.Type
	typeName string
	members  []member
}

var (
	shapes   = make(map[reflect.Type]*shape)
	shapesMu sync.RWMutex
)

// mergeableType is the interface the two bindable list kinds implement.
var mergeableType = reflect.TypeOf((*collection.Mergeable)(nil)).Elem()

// shapeOf returns the memoized shape for T, building it on first use.
// Only struct types have a shape.
func shapeOf[T any]() (*shape, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	shapesMu.RLock()
	if cached, ok := shapes[typ]; ok {
		shapesMu.RUnlock()
		return cached, nil
	}
	shapesMu.RUnlock()

	if typ.Kind() != reflect.Struct {
		return nil, ErrUnsupportedType
	}

	// Slow path: build and cache with write-lock
	shapesMu.Lock()
	defer shapesMu.Unlock()

	// Double-check pattern
	if cached, ok := shapes[typ]; ok {
		return cached, nil
	}

	sh := buildShape[T](typ)
	shapes[typ] = sh
	return sh, nil
}

// buildShape enumerates T's fields via sentinel and classifies each one.
// Field order is declaration order, which keeps plan cache keys stable.
func buildShape[T any](typ reflect.Type) *shape {
	spec := sentinel.Scan[T]()

	sh := &shape{
		typ:      typ,
		typeName: spec.TypeName,
		members:  make([]member, 0, len(spec.Fields)),
	}

	for _, field := range spec.Fields {
		if field.Tags["mirror"] == "-" {
			continue
		}

		m := member{
			name:  field.Name,
			index: field.Index,
			class: classScalar,
		}
		if field.ReflectType.Implements(mergeableType) {
			m.class = classMergeable
		}
		sh.members = append(sh.members, m)
	}

	return sh
}
