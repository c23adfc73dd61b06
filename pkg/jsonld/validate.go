package jsonld

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
)

const (
	msgInvalidRoot        = "Expected JSON-LD root to be an object"
	msgInvalidContext     = "Root @context must be '%s' when provided"
	msgMissingGraph       = "Graph root must include @graph"
	msgInvalidGraph       = "@graph must be an array"
	msgGraphMemberContext = "Nodes inside @graph must not include @context"
	msgNestedContext      = "Nested @context is not allowed; compose context at the root only"
	msgInvalidID          = "@id must be an absolute http(s) URL when provided"
	msgInvalidType        = "@type must be a non-empty string (or string[]) when provided"
)

const (
	rootPath   = "$"
	graphPath  = "$.@graph"
	contextKey = "@context"
	graphKey   = "@graph"
	idKey      = "@id"
	typeKey    = "@type"
)

// Validate reports every structural issue in value. It never panics and
// never modifies value. Only a non-object root stops further checks.
//
// Object members are visited in sorted key order, so the issue order is
// deterministic.
func Validate(value any, opts ValidateOptions) []Issue {
	if opts.AllowContext == "" {
		opts.AllowContext = SchemaContext
	}
	v := &validator{opts: opts}

	root, ok := asNode(value)
	if !ok {
		v.add(IssueInvalidRoot, rootPath, msgInvalidRoot)
		return v.issues
	}

	if ctx, present := lookup(root, contextKey); present && ctx != opts.AllowContext {
		v.add(IssueInvalidContext, rootPath+"."+contextKey, fmt.Sprintf(msgInvalidContext, opts.AllowContext))
	}

	if isGraphDocument(root) {
		graph, present := lookup(root, graphKey)
		switch members, isSeq := asSequence(graph); {
		case !present:
			v.add(IssueMissingGraph, graphPath, msgMissingGraph)
		case !isSeq:
			v.add(IssueInvalidGraph, graphPath, msgInvalidGraph)
		default:
			for i, member := range members {
				path := graphPath + "[" + strconv.Itoa(i) + "]"
				if n, ok := asNode(member); ok {
					if _, has := lookup(n, contextKey); has {
						v.add(IssueNestedContext, path+"."+contextKey, msgGraphMemberContext)
					}
				}
				v.walk(member, path, path)
			}
			return v.issues
		}
	}

	v.walk(root, rootPath, rootPath)
	return v.issues
}

// Assert returns a *ValidationError carrying every issue, or nil.
func Assert(value any, opts ValidateOptions) error {
	issues := Validate(value, opts)
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

type validator struct {
	opts   ValidateOptions
	issues []Issue
}

func (v *validator) add(code IssueCode, path, message string) {
	v.issues = append(v.issues, Issue{Code: code, Message: message, Path: path})
}

// walk checks value depth-first. contextPath is the one location allowed to
// carry @context.
func (v *validator) walk(value any, path, contextPath string) {
	if seq, ok := asSequence(value); ok {
		for i, element := range seq {
			v.walk(element, path+"["+strconv.Itoa(i)+"]", contextPath)
		}
		return
	}

	n, ok := asNode(value)
	if !ok {
		return
	}

	if _, has := lookup(n, contextKey); has && path != contextPath {
		v.add(IssueNestedContext, path+"."+contextKey, msgNestedContext)
	}

	if v.opts.ValidateIDs {
		if id, has := lookup(n, idKey); has && !isValidID(id) {
			v.add(IssueInvalidID, path+"."+idKey, msgInvalidID)
		}
	}

	if v.opts.ValidateTypes {
		if typ, has := lookup(n, typeKey); has && !isValidType(typ) {
			v.add(IssueInvalidType, path+"."+typeKey, msgInvalidType)
		}
	}

	keys := make([]string, 0, len(n))
	for k := range n {
		if k != contextKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.walk(n[k], path+"."+k, contextPath)
	}
}

// lookup returns the member at key unless it is missing or absent.
func lookup(n Node, key string) (any, bool) {
	raw, ok := n[key]
	if !ok {
		return nil, false
	}
	value, present := view(raw)
	return value, present
}

// isGraphDocument reports whether both @context and @graph keys exist,
// whatever their values.
func isGraphDocument(n Node) bool {
	_, hasContext := n[contextKey]
	_, hasGraph := n[graphKey]
	return hasContext && hasGraph
}

func isValidID(value any) bool {
	id, ok := value.(string)
	return ok && urlutil.IsAbsoluteHTTP(id)
}

func isValidType(value any) bool {
	if s, ok := value.(string); ok {
		return s != ""
	}
	seq, ok := asSequence(value)
	if !ok || len(seq) == 0 {
		return false
	}
	for _, element := range seq {
		s, ok := element.(string)
		if !ok || s == "" {
			return false
		}
	}
	return true
}
