package cwl

import (
	"encoding/json"
	"math"
	"strconv"
)

// Save converts a node, list, or scalar into plain values suitable for
// YAML or JSON output. Records become maps keyed by canonical field
// names with unset fields omitted; lists become []any; scalars pass
// through unchanged.
func Save(v any) any {
	switch val := v.(type) {
	case *Document:
		return saveDocument(val)
	case *InputParameter:
		return saveInputParameter(val)
	case *OutputParameter:
		return saveOutputParameter(val)
	case *InputBinding:
		if val == nil {
			return nil
		}
		return saveInputBinding(val)
	case *OutputBinding:
		if val == nil {
			return nil
		}
		return saveOutputBinding(val)
	case *Step:
		return saveStep(val)
	case *StepInput:
		return saveStepInput(val)
	case []*InputParameter:
		out := make([]any, len(val))
		for i, p := range val {
			out[i] = saveInputParameter(p)
		}
		return out
	case []*OutputParameter:
		out := make([]any, len(val))
		for i, p := range val {
			out[i] = saveOutputParameter(p)
		}
		return out
	case []*Step:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = saveStep(s)
		}
		return out
	case []*StepInput:
		out := make([]any, len(val))
		for i, si := range val {
			out[i] = saveStepInput(si)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Save(item)
		}
		return out
	case *bool:
		if val == nil {
			return nil
		}
		return *val
	default:
		return v
	}
}

func saveDocument(d *Document) map[string]any {
	m := make(map[string]any)
	putString(m, "id", d.ID)
	putString(m, "class", d.Class)
	putString(m, "cwlVersion", d.CWLVersion)
	putString(m, "doc", d.Doc)
	putString(m, "label", d.Label)
	if len(d.Inputs) > 0 {
		m["inputs"] = Save(d.Inputs)
	}
	if len(d.Outputs) > 0 {
		m["outputs"] = Save(d.Outputs)
	}
	if len(d.Hints) > 0 {
		m["hints"] = d.Hints
	}
	if len(d.Requirements) > 0 {
		m["requirements"] = d.Requirements
	}
	if d.Class == ClassWorkflow {
		if len(d.Steps) > 0 {
			m["steps"] = Save(d.Steps)
		}
		return m
	}
	if d.BaseCommand != nil {
		m["baseCommand"] = d.BaseCommand
	}
	if len(d.Arguments) > 0 {
		m["arguments"] = Save(d.Arguments)
	}
	putString(m, "stdin", d.Stdin)
	putString(m, "stdout", d.Stdout)
	putString(m, "stderr", d.Stderr)
	if len(d.SuccessCodes) > 0 {
		m["successCodes"] = d.SuccessCodes
	}
	if len(d.TemporaryFailCodes) > 0 {
		m["temporaryFailCodes"] = d.TemporaryFailCodes
	}
	if len(d.PermanentFailCodes) > 0 {
		m["permanentFailCodes"] = d.PermanentFailCodes
	}
	return m
}

func saveInputParameter(p *InputParameter) map[string]any {
	m := make(map[string]any)
	putString(m, "id", p.ID)
	if p.Type != nil {
		m["type"] = p.Type
	}
	putString(m, "label", p.Label)
	putString(m, "doc", p.Doc)
	if p.Default != nil {
		m["default"] = p.Default
	}
	if p.Format != nil {
		m["format"] = p.Format
	}
	if p.Streamable {
		m["streamable"] = true
	}
	if p.LoadContents {
		m["loadContents"] = true
	}
	if p.SecondaryFiles != nil {
		m["secondaryFiles"] = p.SecondaryFiles
	}
	if p.InputBinding != nil {
		m["inputBinding"] = saveInputBinding(p.InputBinding)
	}
	return m
}

func saveOutputParameter(p *OutputParameter) map[string]any {
	m := make(map[string]any)
	putString(m, "id", p.ID)
	if p.Type != nil {
		m["type"] = p.Type
	}
	putString(m, "label", p.Label)
	putString(m, "doc", p.Doc)
	if p.Format != nil {
		m["format"] = p.Format
	}
	if p.Streamable {
		m["streamable"] = true
	}
	if p.SecondaryFiles != nil {
		m["secondaryFiles"] = p.SecondaryFiles
	}
	if p.OutputBinding != nil {
		m["outputBinding"] = saveOutputBinding(p.OutputBinding)
	}
	putString(m, "outputSource", p.OutputSource)
	return m
}

func saveInputBinding(b *InputBinding) map[string]any {
	m := make(map[string]any)
	if b.Position != nil {
		m["position"] = b.Position
	}
	putString(m, "prefix", b.Prefix)
	if b.Separate != nil {
		m["separate"] = *b.Separate
	}
	putString(m, "itemSeparator", b.ItemSeparator)
	putString(m, "valueFrom", b.ValueFrom)
	if b.ShellQuote != nil {
		m["shellQuote"] = *b.ShellQuote
	}
	if b.LoadContents {
		m["loadContents"] = true
	}
	return m
}

func saveOutputBinding(b *OutputBinding) map[string]any {
	m := make(map[string]any)
	if b.Glob != nil {
		m["glob"] = b.Glob
	}
	if b.LoadContents {
		m["loadContents"] = true
	}
	putString(m, "loadListing", b.LoadListing)
	putString(m, "outputEval", b.OutputEval)
	return m
}

func saveStep(s *Step) map[string]any {
	m := make(map[string]any)
	putString(m, "id", s.ID)
	if s.Run != nil {
		m["run"] = s.Run
	}
	if len(s.In) > 0 {
		m["in"] = Save(s.In)
	}
	if len(s.Out) > 0 {
		m["out"] = s.Out
	}
	if len(s.Scatter) > 0 {
		m["scatter"] = s.Scatter
	}
	putString(m, "scatterMethod", s.ScatterMethod)
	putString(m, "when", s.When)
	if len(s.Hints) > 0 {
		m["hints"] = s.Hints
	}
	if len(s.Requirements) > 0 {
		m["requirements"] = s.Requirements
	}
	return m
}

func saveStepInput(si *StepInput) map[string]any {
	m := make(map[string]any)
	putString(m, "id", si.ID)
	putString(m, "source", si.Source)
	if si.Default != nil {
		m["default"] = si.Default
	}
	return m
}

func putString(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

// MarshalJSON marshals a saved value to indented JSON. float64 values
// are rendered as plain decimals (json.Number) so large numbers do not
// come out in scientific notation; NaN and Inf become null.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(convertNumbers(Save(v)), "", "    ")
}

func convertNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = convertNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertNumbers(item)
		}
		return out
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return json.Number(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return v
	}
}
