// Package mirror copies member values between two instances of the same
// struct type, in place, using compiled per-type copy plans.
//
// A plan is built once per (type, variant) by scanning the type's exported
// fields, then cached for the lifetime of the process. Plan execution is a
// straight run of precompiled per-member assignments with no repeated
// reflection lookups.
//
// # Basic Usage
//
//	type Person struct {
//	    Name string
//	    Age  int
//	    Tags *collection.ObservableList[string]
//	}
//
//	// Replace every field of dst with src's values.
//	err := mirror.CopyAll(&dst, &src)
//
//	// Same semantics, guaranteed plan reuse after first call.
//	err := mirror.CopyAllFast(&dst, &src)
//
//	// Skip named fields.
//	err := mirror.CopyExcluding(&dst, &src, "Age")
//
//	// Skip fields by selector; selectors that do not resolve to a
//	// field of Person are silently ignored.
//	err := mirror.CopyExcludingFields(&dst, &src, func(p *Person) any { return &p.Age })
//
//	// Merge recognized list fields in place instead of replacing them.
//	err := mirror.CopyMergingCollections(&dst, &src)
//
// # Field Eligibility
//
// Only exported fields participate; unexported fields are skipped silently.
// A field tagged `mirror:"-"` is excluded from every plan:
//
//	type Person struct {
//	    Name    string
//	    Session string `mirror:"-"`
//	}
//
// # Collection Merging
//
// CopyMergingCollections treats fields of the two list kinds in the
// collection package (ObservableList and List) as merge targets: the
// target's list instance is kept and its contents are replaced with the
// source's elements, so observers subscribed to the target's list stay
// attached and see the content change. Every other field, including plain
// slices and maps, is replaced wholesale. A nil list on either side leaves
// the target's field untouched.
//
// # Concurrency
//
// Plan construction and caching are safe for concurrent use. Plan execution
// performs no synchronization of its own: concurrent copies into the same
// target instance must be serialized by the caller.
package mirror
