// Package cwlexpr instantiates CWL runtime expressions.
// It evaluates $(...) parameter references against the query
// environment (runtime.outdir, runtime.tmpdir, bound argument values)
// in a JavaScript runtime.
package cwlexpr

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// Context holds the values visible to an expression.
type Context struct {
	// Inputs holds bound argument values, keyed by parameter id.
	Inputs map[string]any

	// OutDir and TmpDir are the runtime directories; empty when unset.
	OutDir string
	TmpDir string
}

// Instantiate substitutes all $(...) references in s and returns the
// resulting string. Strings without expression syntax pass through
// with \$( unescaped to $( per the CWL spec.
func Instantiate(s string, ctx *Context) (string, error) {
	if !IsExpression(s) {
		return unescape(s), nil
	}

	vm, err := newVM(ctx)
	if err != nil {
		return "", err
	}

	matches := findExpressions(s)
	var out strings.Builder
	last := 0
	for _, m := range matches {
		out.WriteString(s[last:m.start])
		val, err := vm.RunString(m.expr)
		if err != nil {
			return "", fmt.Errorf("expression error in $(%s): %w", m.expr, err)
		}
		if val == goja.Undefined() {
			return "", fmt.Errorf("expression $(%s) returned undefined", m.expr)
		}
		out.WriteString(toString(val.Export()))
		last = m.end
	}
	out.WriteString(s[last:])

	return unescape(out.String()), nil
}

// newVM builds a JavaScript runtime with the context variables bound.
func newVM(ctx *Context) (*goja.Runtime, error) {
	vm := goja.New()

	inputs := ctx.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}
	if err := vm.Set("inputs", inputs); err != nil {
		return nil, fmt.Errorf("set inputs: %w", err)
	}

	runtime := map[string]any{
		"outdir": ctx.OutDir,
		"tmpdir": ctx.TmpDir,
	}
	if err := vm.Set("runtime", runtime); err != nil {
		return nil, fmt.Errorf("set runtime: %w", err)
	}

	return vm, nil
}

// IsExpression reports whether s contains an unescaped $( reference.
func IsExpression(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] == '$' && s[i+1] == '(' {
			if i == 0 || s[i-1] != '\\' {
				return true
			}
		}
	}
	return false
}

// unescape turns \$( into a literal $( per the CWL spec.
func unescape(s string) string {
	return strings.ReplaceAll(s, "\\$(", "$(")
}

// exprMatch is one $(expr) occurrence in a string.
type exprMatch struct {
	start int    // index of "$("
	end   int    // index after the closing ")"
	expr  string // content without $( and )
}

// findExpressions finds all unescaped $(expr) patterns, handling
// nested parentheses.
func findExpressions(s string) []exprMatch {
	var matches []exprMatch
	i := 0
	for i < len(s)-1 {
		if s[i] == '$' && s[i+1] == '(' && (i == 0 || s[i-1] != '\\') {
			start := i
			depth := 1
			j := i + 2
			for j < len(s) && depth > 0 {
				switch s[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			if depth == 0 {
				matches = append(matches, exprMatch{
					start: start,
					end:   j,
					expr:  s[start+2 : j-1],
				})
				i = j
				continue
			}
		}
		i++
	}
	return matches
}

// toString renders an exported goja value the way CWL interpolation
// expects: no "<nil>" for null, no trailing ".0" confusion for ints.
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
