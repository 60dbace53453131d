package inspect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

var reIndex = regexp.MustCompile(`^\d+$`)

// Resolve walks a dotted path expression over the document and returns
// the node, list, or scalar it denotes. "." returns the document
// itself. Segments resolve strictly left to right; the first segment
// that cannot be resolved fails the whole path with FieldNotFoundError.
//
// Each segment is either a non-negative integer (positional index into
// a list) or a bare name (field name on a record, or id-basename
// lookup into an identifier-addressable list).
func Resolve(doc *cwl.Document, pos string) (any, error) {
	if pos == "." {
		return doc, nil
	}
	if !strings.HasPrefix(pos, ".") {
		return nil, &FieldNotFoundError{Path: pos}
	}

	cur := any(doc)
	for _, seg := range strings.Split(pos[1:], ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, &FieldNotFoundError{Path: pos}
		}
		cur = next
	}
	return cur, nil
}

// step resolves a single path segment against the current value.
func step(cur any, seg string) (any, bool) {
	if reIndex.MatchString(seg) {
		list, ok := asList(cur)
		if !ok {
			return nil, false
		}
		i, err := strconv.Atoi(seg)
		if err != nil || i >= len(list) {
			return nil, false
		}
		return list[i], true
	}

	if list, ok := asList(cur); ok {
		// Identifier-addressable list: first element whose id basename
		// matches, in list order.
		for _, item := range list {
			id, ok := item.(cwl.Identified)
			if !ok {
				continue
			}
			if cwl.Basename(id.Identifier()) == seg {
				return item, true
			}
		}
		return nil, false
	}

	node, ok := cur.(cwl.Node)
	if !ok || isNilNode(node) {
		// Scalars, plain maps, and unset binding fields have no
		// further structure to address.
		return nil, false
	}

	v, ok := node.Field(seg)
	if !ok {
		return nil, false
	}

	// A scalar baseCommand reads as a one-element list.
	if seg == "baseCommand" {
		if s, isStr := v.(string); isStr {
			return []any{s}, true
		}
	}

	// An inputBinding without a declared position gets the default 0
	// on first visit. The fill is memoized on the node: later visits
	// see the filled value.
	if seg == "inputBinding" {
		if ib, isBinding := v.(*cwl.InputBinding); isBinding && ib != nil && ib.Position == nil {
			ib.Position = 0
		}
	}

	return v, true
}

// isNilNode reports whether a Node interface wraps a typed-nil
// pointer. A declared-but-unset inputBinding or outputBinding field
// reads as one, and it must act as a terminal value, not a record.
func isNilNode(n cwl.Node) bool {
	switch v := n.(type) {
	case *cwl.InputBinding:
		return v == nil
	case *cwl.OutputBinding:
		return v == nil
	}
	return false
}

// asList views the current value as an ordered list of elements.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []*cwl.InputParameter:
		out := make([]any, len(l))
		for i, p := range l {
			out[i] = p
		}
		return out, true
	case []*cwl.OutputParameter:
		out := make([]any, len(l))
		for i, p := range l {
			out[i] = p
		}
		return out, true
	case []*cwl.Step:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []*cwl.StepInput:
		out := make([]any, len(l))
		for i, si := range l {
			out[i] = si
		}
		return out, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(l))
		for i, n := range l {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}
