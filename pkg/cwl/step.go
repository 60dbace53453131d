package cwl

// Step is a CWL workflow step.
type Step struct {
	ID            string
	Run           any // string reference or inline tool map
	In            []*StepInput
	Out           []string
	Scatter       []string
	ScatterMethod string // "dotproduct", "nested_crossproduct", or "flat_crossproduct"
	When          string
	Hints         map[string]any
	Requirements  map[string]any
}

var stepFields = []string{
	"hints", "id", "in", "out", "requirements", "run", "scatter",
	"scatterMethod", "when",
}

// Field implements Node.
func (s *Step) Field(name string) (any, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "run":
		return s.Run, true
	case "in":
		return s.In, true
	case "out":
		return s.Out, true
	case "scatter":
		return s.Scatter, true
	case "scatterMethod":
		return s.ScatterMethod, true
	case "when":
		return s.When, true
	case "hints":
		return s.Hints, true
	case "requirements":
		return s.Requirements, true
	}
	return nil, false
}

// FieldNames implements Node.
func (s *Step) FieldNames() []string { return stepFields }

// Identifier implements Identified.
func (s *Step) Identifier() string { return s.ID }

// StepInput is a normalized CWL step input.
// Handles both shorthand ("read1: reads_r1") and expanded form.
type StepInput struct {
	ID      string
	Source  string
	Default any
}

var stepInputFields = []string{"default", "id", "source"}

// Field implements Node.
func (si *StepInput) Field(name string) (any, bool) {
	switch name {
	case "id":
		return si.ID, true
	case "source":
		return si.Source, true
	case "default":
		return si.Default, true
	}
	return nil, false
}

// FieldNames implements Node.
func (si *StepInput) FieldNames() []string { return stepInputFields }

// Identifier implements Identified.
func (si *StepInput) Identifier() string { return si.ID }
