package jsonld

import "reflect"

// view returns v in the shape the walkers understand: objects as Node,
// sequences as []any, dereferenced pointers, everything else untouched.
// present is false for absent values.
func view(v any) (value any, present bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case Node:
		return t, t != nil
	case map[string]any:
		return Node(t), t != nil
	case []any:
		return t, t != nil
	case []Node:
		if t == nil {
			return nil, false
		}
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out, true
	case Graph:
		return t.Node(), true
	case *Graph:
		if t == nil {
			return nil, false
		}
		return t.Node(), true
	case string, bool, float64, int, int64:
		return t, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
		return view(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
		if rv.Type().Key().Kind() != reflect.String {
			return v, true
		}
		out := make(Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, true
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, true
		}
		return sliceOf(rv), true
	case reflect.Array:
		return sliceOf(rv), true
	case reflect.Func, reflect.Chan:
		return v, !rv.IsNil()
	}
	return v, true
}

func sliceOf(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// IsAbsent reports whether v is a typed nil container or pointer.
func IsAbsent(v any) bool {
	_, present := view(v)
	return !present
}

// asNode returns v as a Node when it is a present object.
func asNode(v any) (Node, bool) {
	value, present := view(v)
	if !present {
		return nil, false
	}
	n, ok := value.(Node)
	return n, ok
}

// asSequence returns v as []any when it is a present sequence.
func asSequence(v any) ([]any, bool) {
	value, present := view(v)
	if !present {
		return nil, false
	}
	s, ok := value.([]any)
	return s, ok
}
