package parser

import (
	"fmt"
	"sort"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
	"gopkg.in/yaml.v3"
)

// valueNode returns the value node for a key in a YAML mapping, or nil.
func valueNode(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// normalizeToMap converts array-style CWL definitions to map-style.
func normalizeToMap(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		return val
	case []any:
		result := make(map[string]any)
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				if id, ok := m["id"].(string); ok {
					result[id] = m
				}
			}
		}
		return result
	}
	return make(map[string]any)
}

// normalizeHintsToMap converts array-style hints/requirements to
// map-style keyed by class.
func normalizeHintsToMap(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		return val
	case []any:
		result := make(map[string]any)
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				if class, ok := m["class"].(string); ok {
					result[class] = m
				}
			}
		}
		return result
	}
	return nil
}

// stringField safely extracts a string from a map.
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// Handle YAML type coercion (e.g. stdout: 1 parsed as int).
	return fmt.Sprintf("%v", v)
}

// boolField safely extracts a bool from a map.
func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// mapField safely extracts a map[string]any from a map.
func mapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// stringSlice safely extracts a []string from a map value.
// The YAML decoder produces []any, not []string.
func stringSlice(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		var result []string
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return nil
}

// intSlice safely extracts a []int from a map value.
// The YAML decoder produces []any with int/float64 values.
func intSlice(m map[string]any, key string) []int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []int:
		return s
	case []any:
		var result []int
		for _, item := range s {
			switch i := item.(type) {
			case int:
				result = append(result, i)
			case float64:
				result = append(result, int(i))
			}
		}
		return result
	}
	return nil
}

// sortStepInputs orders step inputs by id for a deterministic listing.
func sortStepInputs(in []*cwl.StepInput) {
	sort.Slice(in, func(i, j int) bool { return in[i].ID < in[j].ID })
}
