package mirror

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNilTarget indicates the target instance was nil at the call boundary.
	ErrNilTarget = errors.New("nil target")

	// ErrNilSource indicates the source instance was nil at the call boundary.
	ErrNilSource = errors.New("nil source")

	// ErrUnsupportedType indicates the type is not a struct and has no shape.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMerge indicates an in-place collection merge failed.
	ErrMerge = errors.New("merge failed")
)

// ArgumentError reports an invalid argument at a copy entry point.
// It is returned before any member is touched; no partial copy occurs.
type ArgumentError struct {
	Err error  // Underlying sentinel error (ErrNilTarget, ErrNilSource, ErrUnsupportedType)
	Op  string // Operation that rejected the argument (e.g. "copy all")
}

func (e *ArgumentError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// MergeError reports a failed in-place merge of a collection member.
type MergeError struct {
	Err    error  // ErrMerge
	Member string // Member name that failed
	Cause  error  // Original error from the collection
}

func (e *MergeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("merge member %s: %v", e.Member, e.Cause)
	}
	return fmt.Sprintf("merge member %s", e.Member)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// newArgumentError creates an ArgumentError for entry-point violations.
func newArgumentError(sentinel error, op string) error {
	return &ArgumentError{Err: sentinel, Op: op}
}

// newMergeError creates a MergeError for collection merge failures.
func newMergeError(member string, cause error) error {
	return &MergeError{Err: ErrMerge, Member: member, Cause: cause}
}
