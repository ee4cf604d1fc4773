package mirror

import (
	"reflect"

	"github.com/mirrorkit/mirror/collection"
)

// planVariant selects how a plan treats mergeable collection members.
type planVariant uint8

const (
	// variantReplace assigns every member, collections included.
	variantReplace planVariant = iota

	// variantMerge merges recognized collection members in place and
	// assigns everything else.
	variantMerge
)

func (v planVariant) String() string {
	if v == variantMerge {
		return "merge"
	}
	return "replace"
}

// memberOp is one compiled per-member step of a plan.
type memberOp struct {
	name  string
	apply func(target, source reflect.Value) error
}

// plan is an immutable compiled copy procedure for one (type, variant,
// exclusion set). Plans are built once and reused; run performs no
// reflection lookups beyond field access by precomputed index.
type plan struct {
	typ      reflect.Type
	typeName string
	variant  planVariant
	ops      []memberOp
}

// buildPlan compiles a plan over sh's members, skipping names in excluded.
// An empty resulting op list is a legal no-op plan.
func buildPlan(sh *shape, variant planVariant, excluded map[string]bool) *plan {
	p := &plan{
		typ:      sh.typ,
		typeName: sh.typeName,
		variant:  variant,
		ops:      make([]memberOp, 0, len(sh.members)),
	}

	for _, m := range sh.members {
		if excluded[m.name] {
			continue
		}

		var op memberOp
		op.name = m.name

		if variant == variantMerge && m.class == classMergeable {
			op.apply = mergeOp(m)
		} else {
			op.apply = assignOp(m)
		}

		p.ops = append(p.ops, op)
	}

	return p
}

// assignOp compiles the replace step: target.member = source.member.
func assignOp(m member) func(target, source reflect.Value) error {
	index := m.index
	return func(target, source reflect.Value) error {
		target.FieldByIndex(index).Set(source.FieldByIndex(index))
		return nil
	}
}

// mergeOp compiles the in-place merge step for a bindable list member.
// The merge only runs when both sides hold a live list; a nil on either
// side leaves the target member untouched.
func mergeOp(m member) func(target, source reflect.Value) error {
	index := m.index
	name := m.name
	return func(target, source reflect.Value) error {
		tf := target.FieldByIndex(index)
		sf := source.FieldByIndex(index)
		if tf.IsNil() || sf.IsNil() {
			return nil
		}

		dst := tf.Interface().(collection.Mergeable)
		src := sf.Interface().(collection.Mergeable)
		if err := dst.AdoptElements(src); err != nil {
			return newMergeError(name, err)
		}
		return nil
	}
}

// run executes the plan against addressable struct values. The caller has
// already rejected nil instances and the target==source identity case.
func (p *plan) run(target, source reflect.Value) error {
	for _, op := range p.ops {
		if err := op.apply(target, source); err != nil {
			return err
		}
	}
	return nil
}
