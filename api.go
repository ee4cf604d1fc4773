package mirror

import (
	"context"
	"reflect"
	"time"
)

// CopyAll copies every eligible member of source onto target, replacing
// values wholesale (collection members included). Both instances must be
// non-nil; target == source is a no-op.
func CopyAll[T any](target, source *T) error {
	const op = "copy all"

	if target == nil {
		return newArgumentError(ErrNilTarget, op)
	}
	if source == nil {
		return newArgumentError(ErrNilSource, op)
	}
	if target == source {
		return nil
	}

	sh, err := shapeOf[T]()
	if err != nil {
		return newArgumentError(err, op)
	}

	start := time.Now()
	tv := reflect.ValueOf(target).Elem()
	sv := reflect.ValueOf(source).Elem()
	for _, m := range sh.members {
		tv.FieldByIndex(m.index).Set(sv.FieldByIndex(m.index))
	}

	emitCopyComplete(context.Background(), op, sh.typeName, time.Since(start), len(sh.members), nil)
	return nil
}

// CopyAllFast has CopyAll's semantics but executes a compiled plan: after
// the first call for a type, no per-member reflection lookups remain.
func CopyAllFast[T any](target, source *T) error {
	return runPlan("copy all fast", target, source, variantReplace, nil)
}

// CopyExcluding copies every eligible member except those named in
// excluded. Excluded members are neither read nor written. Collection
// members outside the exclusion set are replaced, not merged. Unknown
// names are ignored.
func CopyExcluding[T any](target, source *T, excluded ...string) error {
	return runPlan("copy excluding", target, source, variantReplace, excluded)
}

// CopyExcludingFields is CopyExcluding with field selectors instead of
// name strings. A selector that does not resolve to a field of T is
// silently dropped from the exclusion set.
func CopyExcludingFields[T any](target, source *T, excluded ...Selector[T]) error {
	const op = "copy excluding fields"

	if target == nil {
		return newArgumentError(ErrNilTarget, op)
	}
	if source == nil {
		return newArgumentError(ErrNilSource, op)
	}
	if target == source {
		return nil
	}

	sh, err := shapeOf[T]()
	if err != nil {
		return newArgumentError(err, op)
	}

	return runPlan(op, target, source, variantReplace, resolveSelectors(sh, excluded))
}

// CopyMergingCollections copies like CopyAllFast, except members of the
// recognized bindable list kinds are merged in place: the target's list
// instance is kept and its contents are replaced with the source's
// elements, preserving subscriptions keyed on the list's identity. A nil
// list on either side leaves the target member untouched.
func CopyMergingCollections[T any](target, source *T) error {
	return runPlan("copy merging collections", target, source, variantMerge, nil)
}

// runPlan is the shared entry-point discipline: argument checks and the
// identity no-op happen here, once, before any plan executes.
func runPlan[T any](op string, target, source *T, variant planVariant, excluded []string) error {
	if target == nil {
		return newArgumentError(ErrNilTarget, op)
	}
	if source == nil {
		return newArgumentError(ErrNilSource, op)
	}
	if target == source {
		return nil
	}

	p, err := planFor[T](variant, excluded)
	if err != nil {
		return newArgumentError(err, op)
	}

	start := time.Now()
	runErr := p.run(reflect.ValueOf(target).Elem(), reflect.ValueOf(source).Elem())
	emitCopyComplete(context.Background(), op, p.typeName, time.Since(start), len(p.ops), runErr)
	return runErr
}
