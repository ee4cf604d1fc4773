package mirror

import "reflect"

// Selector identifies a field of T by returning its address, e.g.
//
//	func(p *Person) any { return &p.Age }
//
// Selectors are resolved against a probe instance of T by matching the
// returned pointer to a field address. Anything else — a nil selector, a
// non-pointer return, a pointer to something other than a field of T — is
// silently ignored rather than reported.
type Selector[T any] func(*T) any

// resolveSelectors maps selectors to member names. Unresolvable selectors
// are dropped.
func resolveSelectors[T any](sh *shape, selectors []Selector[T]) []string {
	if len(selectors) == 0 {
		return nil
	}

	probe := new(T)
	pv := reflect.ValueOf(probe).Elem()

	var names []string
	for _, sel := range selectors {
		if sel == nil {
			continue
		}

		out := sel(probe)
		rv := reflect.ValueOf(out)
		if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
			continue
		}

		// Address and type must both match: a nested field can share its
		// enclosing field's address, but not its type.
		for _, m := range sh.members {
			f := pv.FieldByIndex(m.index)
			if f.Addr().Pointer() == rv.Pointer() && f.Type() == rv.Type().Elem() {
				names = append(names, m.name)
				break
			}
		}
	}

	return names
}
