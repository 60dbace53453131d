package cwl

// Document is the root of a parsed CWL tool or workflow description.
// It covers both recognized classes; Field and FieldNames gate the
// class-specific fields on the Class discriminator.
//
// The serialization alias for the class field ("class_" in some
// parsers) never appears here: the node model knows the field only
// under its canonical name.
type Document struct {
	ID         string
	Class      string
	CWLVersion string
	Doc        string
	Label      string

	Inputs  []*InputParameter
	Outputs []*OutputParameter

	Hints        map[string]any
	Requirements map[string]any

	// CommandLineTool only.
	BaseCommand        any // string or []any; the resolver wraps scalars
	Arguments          []any
	Stdin              string
	Stdout             string
	Stderr             string
	SuccessCodes       []int
	TemporaryFailCodes []int
	PermanentFailCodes []int

	// Workflow only.
	Steps []*Step
}

// toolFields and workflowFields are the static field tables, kept in
// lexicographic order so FieldNames needs no sort.
var toolFields = []string{
	"arguments", "baseCommand", "class", "cwlVersion", "doc", "hints",
	"id", "inputs", "label", "outputs", "permanentFailCodes",
	"requirements", "stderr", "stdin", "stdout", "successCodes",
	"temporaryFailCodes",
}

var workflowFields = []string{
	"class", "cwlVersion", "doc", "hints", "id", "inputs", "label",
	"outputs", "requirements", "steps",
}

// Field implements Node.
func (d *Document) Field(name string) (any, bool) {
	switch name {
	case "id":
		return d.ID, true
	case "class":
		return d.Class, true
	case "cwlVersion":
		return d.CWLVersion, true
	case "doc":
		return d.Doc, true
	case "label":
		return d.Label, true
	case "inputs":
		return d.Inputs, true
	case "outputs":
		return d.Outputs, true
	case "hints":
		return d.Hints, true
	case "requirements":
		return d.Requirements, true
	}

	if d.Class == ClassWorkflow {
		if name == "steps" {
			return d.Steps, true
		}
		return nil, false
	}

	switch name {
	case "baseCommand":
		return d.BaseCommand, true
	case "arguments":
		return d.Arguments, true
	case "stdin":
		return d.Stdin, true
	case "stdout":
		return d.Stdout, true
	case "stderr":
		return d.Stderr, true
	case "successCodes":
		return d.SuccessCodes, true
	case "temporaryFailCodes":
		return d.TemporaryFailCodes, true
	case "permanentFailCodes":
		return d.PermanentFailCodes, true
	}
	return nil, false
}

// FieldNames implements Node.
func (d *Document) FieldNames() []string {
	if d.Class == ClassWorkflow {
		return workflowFields
	}
	return toolFields
}

// Input returns the input parameter whose id basename matches name,
// or nil.
func (d *Document) Input(name string) *InputParameter {
	for _, in := range d.Inputs {
		if basename(in.ID) == name {
			return in
		}
	}
	return nil
}

// Output returns the output parameter whose id basename matches name,
// or nil.
func (d *Document) Output(name string) *OutputParameter {
	for _, out := range d.Outputs {
		if basename(out.ID) == name {
			return out
		}
	}
	return nil
}
