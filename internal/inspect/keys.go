package inspect

import (
	"sort"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

// Keys lists what is addressable at a path: for an
// identifier-addressable list, the full id of every element that
// declares one; for a record, its declared field names. The result is
// sorted lexicographically so the listing is deterministic regardless
// of declaration order.
func Keys(doc *cwl.Document, pos string) ([]string, error) {
	v, err := Resolve(doc, pos)
	if err != nil {
		return nil, err
	}

	if list, ok := asList(v); ok {
		keys := make([]string, 0, len(list))
		addressable := len(list) == 0
		for _, item := range list {
			id, ok := item.(cwl.Identified)
			if !ok {
				continue
			}
			addressable = true
			if id.Identifier() != "" {
				keys = append(keys, id.Identifier())
			}
		}
		if !addressable {
			// A plain value list (a baseCommand, a step's out list)
			// has no keys, same as a scalar.
			return nil, &FieldNotFoundError{Path: pos}
		}
		sort.Strings(keys)
		return keys, nil
	}

	if node, ok := v.(cwl.Node); ok {
		keys := append([]string(nil), node.FieldNames()...)
		sort.Strings(keys)
		return keys, nil
	}

	// Scalars have no keys.
	return nil, &FieldNotFoundError{Path: pos}
}
