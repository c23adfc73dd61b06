package jsonld

import "reflect"

// Clean strips absent values from objects and sequences, and whatever else
// opts enables, bottom-up: a container is judged empty only after its own
// children were cleaned.
//
// Objects come back as Node and sequences as []any; the input is never
// modified. When the root itself is removed, an empty container of the same
// kind is returned (Node{} or []any{}), or nil for a scalar root.
// Clean is idempotent under any fixed opts.
func Clean(value any, opts CleanOptions) any {
	cleaned, keep := cleanValue(value, opts)
	if keep {
		return cleaned
	}

	switch containerKind(value) {
	case reflect.Map:
		return Node{}
	case reflect.Slice, reflect.Array:
		return []any{}
	default:
		return nil
	}
}

// containerKind reports the kind of value after dereferencing pointers,
// including for typed nils.
func containerKind(value any) reflect.Kind {
	if value == nil {
		return reflect.Invalid
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(Graph{}) {
		return reflect.Map
	}
	return t.Kind()
}

func cleanValue(value any, opts CleanOptions) (any, bool) {
	v, present := view(value)
	if !present {
		return nil, false
	}

	switch t := v.(type) {
	case nil:
		return nil, !opts.RemoveNull
	case string:
		if opts.RemoveEmptyStrings && t == "" {
			return nil, false
		}
		return t, true
	case []any:
		out := make([]any, 0, len(t))
		for _, element := range t {
			if cleaned, keep := cleanValue(element, opts); keep {
				out = append(out, cleaned)
			}
		}
		if opts.RemoveEmptyArrays && len(out) == 0 {
			return nil, false
		}
		return out, true
	case Node:
		out := make(Node, len(t))
		for k, element := range t {
			if cleaned, keep := cleanValue(element, opts); keep {
				out[k] = cleaned
			}
		}
		if opts.RemoveEmptyObjects && len(out) == 0 {
			return nil, false
		}
		return out, true
	}
	return v, true
}
