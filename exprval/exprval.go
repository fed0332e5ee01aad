// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package exprval evaluates library-global expressions in a sandboxed
// Starlark environment.
//
// Assessment payloads carry global bindings as source-text expressions
// (literals, arithmetic, lists, dicts). The backend decode path turns each
// binding into a concrete value by evaluating the expression here. The
// evaluation environment declares no symbols of its own, so beyond the
// Starlark universe (len, str, and the other pure builtins) a payload can
// reference nothing: not the filesystem, not the network, not anything
// else in the process.
package exprval

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Evaluate parses and evaluates a single expression and converts the
// result to a plain Go value (nil, bool, int64, float64, string, []any,
// or map[string]any). The expression runs with no predeclared symbols;
// a reference to any non-universe name fails.
func Evaluate(source string) (any, error) {
	thread := &starlark.Thread{Name: "exprval"}
	value, err := starlark.Eval(thread, "<global>", source, starlark.StringDict{})
	if err != nil {
		return nil, fmt.Errorf("exprval: evaluating %q: %w", source, err)
	}
	return fromStarlark(value)
}

// fromStarlark converts a Starlark value into the plain Go value used by
// the local data model.
func fromStarlark(value starlark.Value) (any, error) {
	switch value := value.(type) {

	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(value), nil

	case starlark.Int:
		if v, ok := value.Int64(); ok {
			return v, nil
		}
		// Out of int64 range: keep the decimal text rather than losing
		// precision.
		return value.String(), nil

	case starlark.Float:
		return float64(value), nil

	case starlark.String:
		return string(value), nil

	case *starlark.List:
		elems := make([]any, value.Len())
		for i := range elems {
			converted, err := fromStarlark(value.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = converted
		}
		return elems, nil

	case starlark.Tuple:
		elems := make([]any, len(value))
		for i, elem := range value {
			converted, err := fromStarlark(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = converted
		}
		return elems, nil

	case *starlark.Dict:
		converted := make(map[string]any, value.Len())
		for _, item := range value.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				return nil, fmt.Errorf("exprval: non-string dict key %s", item[0])
			}
			element, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			converted[key] = element
		}
		return converted, nil
	}

	return nil, fmt.Errorf("exprval: unsupported value type %s", value.Type())
}
