// Package jsonutil provides string-based JSON helpers with path-based
// fragment extraction.
//
// Paths use the dot/bracket grammar of github.com/cybergodev/json, e.g.
// "user.name" or "orders[0].items[2].sku".
package jsonutil

import (
	"fmt"

	cjson "github.com/cybergodev/json"
)

// Marshal encodes v as a JSON string.
func Marshal(v any) (string, error) {
	data, err := cjson.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal decodes a JSON string into a T.
func Unmarshal[T any](doc string) (T, error) {
	var out T
	if err := cjson.Unmarshal([]byte(doc), &out); err != nil {
		return out, err
	}
	return out, nil
}

// Fragment extracts the sub-document at path and returns it re-encoded
// as JSON.
func Fragment(doc, path string) (string, error) {
	value, err := cjson.Get(doc, path)
	if err != nil {
		return "", fmt.Errorf("get %q: %w", path, err)
	}

	data, err := cjson.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal fragment %q: %w", path, err)
	}
	return string(data), nil
}

// FragmentAs extracts the sub-document at path and decodes it into a T.
func FragmentAs[T any](doc, path string) (T, error) {
	var out T

	frag, err := Fragment(doc, path)
	if err != nil {
		return out, err
	}
	if err := cjson.Unmarshal([]byte(frag), &out); err != nil {
		return out, fmt.Errorf("unmarshal fragment %q: %w", path, err)
	}
	return out, nil
}
