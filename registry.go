package mirror

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// planKey identifies one cached plan: the type, the variant, and the
// canonical exclusion key (empty for no exclusions).
type planKey struct {
	typ       reflect.Type
	variant   planVariant
	exclusion string
}

var (
	plans   = make(map[planKey]*plan)
	plansMu sync.RWMutex
)

// canonicalKey normalizes an exclusion set to an order-independent cache
// key: deduplicated, sorted, comma-joined. Semantically identical sets
// reuse the same cached plan regardless of call-site ordering.
func canonicalKey(names []string) (string, map[string]bool) {
	if len(names) == 0 {
		return "", nil
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	sorted := make([]string, 0, len(set))
	for n := range set {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	return strings.Join(sorted, ","), set
}

// planFor returns a cached plan or builds a new one. Plans live for the
// process lifetime; the type and exclusion-set universes are bounded by
// the calling code, so nothing is ever evicted.
func planFor[T any](variant planVariant, names []string) (*plan, error) {
	sh, err := shapeOf[T]()
	if err != nil {
		return nil, err
	}

	exclusion, excluded := canonicalKey(names)
	key := planKey{typ: sh.typ, variant: variant, exclusion: exclusion}

	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[key]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[key]; ok {
		return cached, nil
	}

	p := buildPlan(sh, variant, excluded)
	plans[key] = p

	emitPlanBuilt(context.Background(), p.typeName, p.variant.String(), exclusion, len(p.ops))
	return p, nil
}

// Reset clears the shape and plan caches.
// This is primarily useful for test isolation.
func Reset() {
	plansMu.Lock()
	plans = make(map[planKey]*plan)
	plansMu.Unlock()

	shapesMu.Lock()
	shapes = make(map[reflect.Type]*shape)
	shapesMu.Unlock()
}
