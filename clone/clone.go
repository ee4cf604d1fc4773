// Package clone deep-copies values by round-tripping them through a codec.
//
// Round-trip cloning is slower than a hand-written Clone method but needs
// no per-type code: anything the codec can faithfully marshal and
// unmarshal comes back as a fully independent copy. Fields the codec
// skips (unexported fields, fields tagged out of the encoding) are zero
// in the clone.
package clone

import (
	"fmt"

	"github.com/mirrorkit/mirror/codec"
	"github.com/mirrorkit/mirror/codec/json"
	"github.com/mirrorkit/mirror/codec/msgpack"
)

// Via deep-copies v by marshaling and unmarshaling it with c.
func Via[T any](v T, c codec.Codec) (T, error) {
	var out T

	data, err := c.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("marshal: %w", err)
	}
	if err := c.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unmarshal: %w", err)
	}

	return out, nil
}

// JSON deep-copies v via a JSON round-trip.
func JSON[T any](v T) (T, error) {
	return Via(v, json.New())
}

// Binary deep-copies v via a MessagePack round-trip.
func Binary[T any](v T) (T, error) {
	return Via(v, msgpack.New())
}
