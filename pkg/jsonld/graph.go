package jsonld

import "fmt"

// CreateGraph assembles a schema.org graph document from items.
//
// Items may be nodes, sequences of nodes, or nil. One level of sequences is
// flattened; nil, absent and non-object entries are skipped. A top-level
// @context is stripped from every member, on a copy. Members are
// deduplicated by non-empty string @id with the first occurrence winning;
// members without such an @id are always kept.
func CreateGraph(items ...any) Graph {
	members := dedupeByID(flattenNodes(items))
	return Graph{
		Context: SchemaContext,
		Graph:   members,
	}
}

func flattenNodes(items []any) []Node {
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if seq, ok := asSequence(item); ok {
			for _, element := range seq {
				if n, ok := asNode(element); ok {
					out = append(out, stripContext(n))
				}
			}
			continue
		}
		if n, ok := asNode(item); ok {
			out = append(out, stripContext(n))
		}
	}
	return out
}

func dedupeByID(nodes []Node) []Node {
	seen := make(map[string]struct{}, len(nodes))
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		id, ok := n["@id"].(string)
		if !ok || id == "" {
			out = append(out, n)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, n)
	}
	return out
}

// stripContext returns n without @context. n itself is never modified.
func stripContext(n Node) Node {
	if _, ok := n["@context"]; !ok {
		return n
	}
	out := make(Node, len(n)-1)
	for k, v := range n {
		if k == "@context" {
			continue
		}
		out[k] = v
	}
	return out
}

// WithContext returns a copy of value with @context set to SchemaContext,
// for standalone emission outside a graph.
func WithContext(value any) (Node, error) {
	n, ok := asNode(value)
	if !ok {
		return nil, &NodeError{
			Message:   fmt.Sprintf("WithContext expects a JSON-LD object node, got %T", value),
			Retryable: false,
			Cause:     ErrCauseInvalidNodeArgument,
		}
	}
	out := make(Node, len(n)+1)
	for k, v := range n {
		out[k] = v
	}
	out["@context"] = SchemaContext
	return out, nil
}
