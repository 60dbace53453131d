// Package parser converts raw CWL YAML into the typed node model.
package parser

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
	"gopkg.in/yaml.v3"
)

// Parser loads CWL documents into cwl.Document values.
type Parser struct {
	logger *slog.Logger
}

// New creates a Parser with the given logger.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger.With("component", "parser")}
}

// Load reads and parses a CWL document from a file.
func (p *Parser) Load(path string) (*cwl.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return p.Parse(data)
}

// Parse parses CWL YAML into a Document. Both recognized classes are
// accepted; inputs, outputs, and steps keep document order so that
// positional and identifier addressing agree.
func (p *Parser) Parse(data []byte) (*cwl.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document must be a mapping, got %v", mapping.Kind)
	}

	var raw map[string]any
	if err := mapping.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	class := stringField(raw, "class")
	switch class {
	case cwl.ClassCommandLineTool, cwl.ClassWorkflow:
	case "":
		return nil, fmt.Errorf("document has no class")
	default:
		return nil, fmt.Errorf("unsupported class %q", class)
	}

	doc := &cwl.Document{
		ID:           stringField(raw, "id"),
		Class:        class,
		CWLVersion:   stringField(raw, "cwlVersion"),
		Doc:          stringField(raw, "doc"),
		Label:        stringField(raw, "label"),
		Hints:        normalizeHintsToMap(raw["hints"]),
		Requirements: normalizeHintsToMap(raw["requirements"]),
	}

	inputs, err := p.parseInputs(valueNode(mapping, "inputs"))
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	doc.Inputs = inputs

	outputs, err := p.parseOutputs(valueNode(mapping, "outputs"))
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}
	doc.Outputs = outputs

	if class == cwl.ClassWorkflow {
		steps, err := p.parseSteps(valueNode(mapping, "steps"))
		if err != nil {
			return nil, fmt.Errorf("steps: %w", err)
		}
		doc.Steps = steps
		p.logger.Debug("parsed workflow", "id", doc.ID, "steps", len(doc.Steps))
		return doc, nil
	}

	doc.BaseCommand = raw["baseCommand"]
	doc.Stdin = stringField(raw, "stdin")
	doc.Stdout = stringField(raw, "stdout")
	doc.Stderr = stringField(raw, "stderr")
	doc.SuccessCodes = intSlice(raw, "successCodes")
	doc.TemporaryFailCodes = intSlice(raw, "temporaryFailCodes")
	doc.PermanentFailCodes = intSlice(raw, "permanentFailCodes")

	if args, ok := raw["arguments"].([]any); ok {
		doc.Arguments = args
	}

	p.logger.Debug("parsed tool", "id", doc.ID, "inputs", len(doc.Inputs), "outputs", len(doc.Outputs))
	return doc, nil
}

// entry is a parameter or step definition pulled out of either the
// array style ([{id: x, ...}]) or the map style ({x: {...}}), in
// document order.
type entry struct {
	id  string
	val any
}

// orderedEntries normalizes array-style and map-style collections.
// CWL supports both: inputs: [{id: x, type: File}] and
// inputs: {x: {type: File}}. A nil node yields no entries.
func orderedEntries(n *yaml.Node) ([]entry, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.SequenceNode:
		entries := make([]entry, 0, len(n.Content))
		for i, item := range n.Content {
			var m map[string]any
			if err := item.Decode(&m); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			id, ok := m["id"].(string)
			if !ok || id == "" {
				return nil, fmt.Errorf("entry %d: missing id", i)
			}
			entries = append(entries, entry{id: id, val: m})
		}
		return entries, nil
	case yaml.MappingNode:
		entries := make([]entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			var v any
			if err := n.Content[i+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("entry %q: %w", key, err)
			}
			entries = append(entries, entry{id: key, val: v})
		}
		return entries, nil
	}
	return nil, fmt.Errorf("expected sequence or mapping, got %v", n.Kind)
}

// parseInputs parses the inputs collection in document order.
func (p *Parser) parseInputs(n *yaml.Node) ([]*cwl.InputParameter, error) {
	entries, err := orderedEntries(n)
	if err != nil {
		return nil, err
	}
	params := make([]*cwl.InputParameter, 0, len(entries))
	for _, e := range entries {
		switch val := e.val.(type) {
		case string:
			// Shorthand: "input: string".
			params = append(params, &cwl.InputParameter{ID: e.id, Type: val})
		case map[string]any:
			params = append(params, parseInputParam(e.id, val))
		default:
			return nil, fmt.Errorf("input %q: unexpected type %T", e.id, e.val)
		}
	}
	return params, nil
}

func parseInputParam(id string, m map[string]any) *cwl.InputParameter {
	inp := &cwl.InputParameter{
		ID:             id,
		Type:           m["type"],
		Label:          stringField(m, "label"),
		Doc:            stringField(m, "doc"),
		Default:        m["default"],
		Format:         m["format"],
		Streamable:     boolField(m, "streamable"),
		LoadContents:   boolField(m, "loadContents"),
		SecondaryFiles: m["secondaryFiles"],
	}
	if ib, ok := m["inputBinding"].(map[string]any); ok {
		inp.InputBinding = parseInputBinding(ib)
	}
	return inp
}

// parseOutputs parses the outputs collection in document order.
func (p *Parser) parseOutputs(n *yaml.Node) ([]*cwl.OutputParameter, error) {
	entries, err := orderedEntries(n)
	if err != nil {
		return nil, err
	}
	params := make([]*cwl.OutputParameter, 0, len(entries))
	for _, e := range entries {
		switch val := e.val.(type) {
		case string:
			// Shorthand: "output: stdout".
			params = append(params, &cwl.OutputParameter{ID: e.id, Type: val})
		case map[string]any:
			params = append(params, parseOutputParam(e.id, val))
		default:
			return nil, fmt.Errorf("output %q: unexpected type %T", e.id, e.val)
		}
	}
	return params, nil
}

func parseOutputParam(id string, m map[string]any) *cwl.OutputParameter {
	out := &cwl.OutputParameter{
		ID:             id,
		Type:           m["type"],
		Label:          stringField(m, "label"),
		Doc:            stringField(m, "doc"),
		Format:         m["format"],
		Streamable:     boolField(m, "streamable"),
		SecondaryFiles: m["secondaryFiles"],
		OutputSource:   stringField(m, "outputSource"),
	}
	if ob, ok := m["outputBinding"].(map[string]any); ok {
		out.OutputBinding = parseOutputBinding(ob)
	}
	return out
}

// parseSteps parses the workflow steps collection in document order.
func (p *Parser) parseSteps(n *yaml.Node) ([]*cwl.Step, error) {
	entries, err := orderedEntries(n)
	if err != nil {
		return nil, err
	}
	steps := make([]*cwl.Step, 0, len(entries))
	for _, e := range entries {
		m, ok := e.val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("step %q: unexpected type %T", e.id, e.val)
		}
		step, err := parseStep(e.id, m)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", e.id, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(id string, m map[string]any) (*cwl.Step, error) {
	step := &cwl.Step{
		ID:            id,
		Run:           m["run"],
		Out:           stringSlice(m, "out"),
		Scatter:       stringSlice(m, "scatter"),
		ScatterMethod: stringField(m, "scatterMethod"),
		When:          stringField(m, "when"),
		Hints:         mapField(m, "hints"),
		Requirements:  mapField(m, "requirements"),
	}

	// Step inputs also come in array and map styles, but at this level
	// the original insertion order is not addressable by index, so a
	// re-decode through normalizeToMap is enough.
	for inID, v := range normalizeToMap(m["in"]) {
		switch val := v.(type) {
		case string:
			step.In = append(step.In, &cwl.StepInput{ID: inID, Source: val})
		case map[string]any:
			step.In = append(step.In, &cwl.StepInput{
				ID:      inID,
				Source:  stringField(val, "source"),
				Default: val["default"],
			})
		}
	}
	sortStepInputs(step.In)

	return step, nil
}

// parseInputBinding parses a CWL inputBinding from a raw map.
// Position stays nil when the document does not declare one; the
// resolver owns the default fill.
func parseInputBinding(ib map[string]any) *cwl.InputBinding {
	binding := &cwl.InputBinding{
		Prefix:        stringField(ib, "prefix"),
		ItemSeparator: stringField(ib, "itemSeparator"),
		ValueFrom:     stringField(ib, "valueFrom"),
		LoadContents:  boolField(ib, "loadContents"),
	}

	if pos, ok := ib["position"]; ok {
		switch p := pos.(type) {
		case int:
			binding.Position = p
		case float64:
			binding.Position = int(p)
		case string:
			binding.Position = p
		}
	}

	if sep, ok := ib["separate"].(bool); ok {
		binding.Separate = &sep
	}
	if sq, ok := ib["shellQuote"].(bool); ok {
		binding.ShellQuote = &sq
	}

	return binding
}

// parseOutputBinding parses a CWL outputBinding from a raw map.
func parseOutputBinding(ob map[string]any) *cwl.OutputBinding {
	return &cwl.OutputBinding{
		Glob:         ob["glob"],
		LoadContents: boolField(ob, "loadContents"),
		LoadListing:  stringField(ob, "loadListing"),
		OutputEval:   stringField(ob, "outputEval"),
	}
}
