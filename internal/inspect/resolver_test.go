package inspect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

func TestResolve_Root(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != any(doc) {
		t.Error("Resolve(doc, \".\") did not return the document itself")
	}
}

func TestResolve_ScalarField(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".cwlVersion")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "v1.0" {
		t.Errorf("cwlVersion = %v, want v1.0", got)
	}
}

func TestResolve_IDBasedAccess(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".inputs.input.label")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "Input string" {
		t.Errorf("label = %v, want \"Input string\"", got)
	}
}

func TestResolve_IndexBasedAccess(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".inputs.0.label")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "Input string" {
		t.Errorf("label = %v, want \"Input string\"", got)
	}
}

func TestResolve_IndexAndIDEquivalence(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	byIndex, err := Resolve(doc, ".inputs.0")
	if err != nil {
		t.Fatalf("Resolve by index: %v", err)
	}
	byID, err := Resolve(doc, ".inputs.input")
	if err != nil {
		t.Fatalf("Resolve by id: %v", err)
	}
	if byIndex != byID {
		t.Error("index-based and id-based access returned different nodes")
	}
}

func TestResolve_BaseCommandScalarWrapped(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".baseCommand")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(got, []any{"echo"}) {
		t.Errorf("baseCommand = %#v, want [echo]", got)
	}
}

func TestResolve_BaseCommandEmptyStringWrapped(t *testing.T) {
	doc := &cwl.Document{Class: cwl.ClassCommandLineTool, BaseCommand: ""}

	got, err := Resolve(doc, ".baseCommand")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(got, []any{""}) {
		t.Errorf("baseCommand = %#v, want [\"\"]", got)
	}
}

func TestResolve_BaseCommandListUntouched(t *testing.T) {
	doc := loadDoc(t, "wc-tool.cwl")

	got, err := Resolve(doc, ".baseCommand")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(got, []any{"wc", "-l"}) {
		t.Errorf("baseCommand = %#v, want [wc -l]", got)
	}
}

func TestResolve_BaseCommandIndexed(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".baseCommand.0")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "echo" {
		t.Errorf("baseCommand.0 = %v, want echo", got)
	}
}

func TestResolve_InputBindingPositionDefault(t *testing.T) {
	doc := loadDoc(t, "echo.cwl")

	got, err := Resolve(doc, ".inputs.input.inputBinding.position")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 0 {
		t.Errorf("position = %v, want 0", got)
	}

	// The fill is memoized on the node: a second resolution sees the
	// same value, and the node itself carries it.
	again, err := Resolve(doc, ".inputs.input.inputBinding.position")
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if again != 0 {
		t.Errorf("position on second visit = %v, want 0", again)
	}
	if doc.Inputs[0].InputBinding.Position != 0 {
		t.Errorf("node Position = %v, want 0", doc.Inputs[0].InputBinding.Position)
	}
}

func TestResolve_DeclaredPositionKept(t *testing.T) {
	doc := loadDoc(t, "wc-tool.cwl")

	got, err := Resolve(doc, ".inputs.file1.inputBinding.position")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 1 {
		t.Errorf("position = %v, want 1", got)
	}
}

func TestResolve_UnsetBindingIsTerminal(t *testing.T) {
	doc := loadDoc(t, "wc-tool.cwl")

	// The binding field is declared on every output parameter, so
	// resolving it succeeds even when the document never set one.
	got, err := Resolve(doc, ".outputs.raw.outputBinding")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	ob, ok := got.(*cwl.OutputBinding)
	if !ok {
		t.Fatalf("outputBinding = %T, want *cwl.OutputBinding", got)
	}
	if ob != nil {
		t.Errorf("outputBinding = %#v, want nil", ob)
	}
}

func TestResolve_WorkflowSteps(t *testing.T) {
	doc := loadDoc(t, "count-lines.cwl")

	got, err := Resolve(doc, ".steps.count.run")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "wc-tool.cwl" {
		t.Errorf("run = %v, want wc-tool.cwl", got)
	}

	byIndex, err := Resolve(doc, ".steps.0")
	if err != nil {
		t.Fatalf("Resolve by index: %v", err)
	}
	step, ok := byIndex.(*cwl.Step)
	if !ok {
		t.Fatalf("steps.0 = %T, want *cwl.Step", byIndex)
	}
	if step.ID != "count" {
		t.Errorf("steps.0.ID = %q, want count", step.ID)
	}
}

func TestResolve_Failures(t *testing.T) {
	echo := loadDoc(t, "echo.cwl")
	wc := loadDoc(t, "wc-tool.cwl")
	wf := loadDoc(t, "count-lines.cwl")

	tests := []struct {
		name string
		doc  *cwl.Document
		pos  string
	}{
		{"unknown field", echo, ".nope"},
		{"unknown identifier", echo, ".inputs.missing"},
		{"index out of range", echo, ".inputs.5"},
		{"index into record", echo, ".0"},
		{"index into scalar", echo, ".label.0"},
		{"field on scalar", echo, ".cwlVersion.major"},
		{"tool field on workflow", wf, ".baseCommand"},
		{"deep miss keeps full path", echo, ".inputs.input.nope.deeper"},
		{"through unset input binding", wf, ".inputs.file1.inputBinding.position"},
		{"through unset output binding", wc, ".outputs.raw.outputBinding.glob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.doc, tt.pos)
			if err == nil {
				t.Fatalf("Resolve(%q) succeeded, want FieldNotFoundError", tt.pos)
			}
			var fnf *FieldNotFoundError
			if !errors.As(err, &fnf) {
				t.Fatalf("error = %v, want FieldNotFoundError", err)
			}
			if fnf.Path != tt.pos {
				t.Errorf("error path = %q, want %q", fnf.Path, tt.pos)
			}
		})
	}
}
