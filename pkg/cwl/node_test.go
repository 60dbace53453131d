package cwl

import (
	"reflect"
	"testing"
)

func TestDocument_FieldGating(t *testing.T) {
	tool := &Document{Class: ClassCommandLineTool, BaseCommand: "echo"}
	wf := &Document{Class: ClassWorkflow, Steps: []*Step{{ID: "s1"}}}

	if v, ok := tool.Field("baseCommand"); !ok || v != "echo" {
		t.Errorf("tool baseCommand = %v, %v; want echo, true", v, ok)
	}
	if _, ok := tool.Field("steps"); ok {
		t.Error("steps is declared on a CommandLineTool")
	}

	if _, ok := wf.Field("baseCommand"); ok {
		t.Error("baseCommand is declared on a Workflow")
	}
	if v, ok := wf.Field("steps"); !ok || len(v.([]*Step)) != 1 {
		t.Errorf("workflow steps = %v, %v; want one step, true", v, ok)
	}
}

func TestDocument_ClassFieldCanonical(t *testing.T) {
	doc := &Document{Class: ClassCommandLineTool}

	if v, ok := doc.Field("class"); !ok || v != ClassCommandLineTool {
		t.Errorf("class = %v, %v; want CommandLineTool, true", v, ok)
	}
	// The serialization alias must not be addressable.
	if _, ok := doc.Field("class_"); ok {
		t.Error("class_ leaked into the field table")
	}
}

func TestDocument_DeclaredButUnset(t *testing.T) {
	doc := &Document{Class: ClassCommandLineTool}

	v, ok := doc.Field("stdout")
	if !ok {
		t.Fatal("stdout is not declared")
	}
	if v != "" {
		t.Errorf("unset stdout = %v, want empty string", v)
	}
}

func TestFieldNames_Sorted(t *testing.T) {
	nodes := []Node{
		&Document{Class: ClassCommandLineTool},
		&Document{Class: ClassWorkflow},
		&InputParameter{},
		&OutputParameter{},
		&InputBinding{},
		&OutputBinding{},
		&Step{},
		&StepInput{},
	}
	for _, n := range nodes {
		names := n.FieldNames()
		for i := 1; i < len(names); i++ {
			if names[i-1] >= names[i] {
				t.Errorf("%T field table not sorted at %q >= %q", n, names[i-1], names[i])
			}
		}
		// Every listed name resolves through Field.
		for _, name := range names {
			if _, ok := n.Field(name); !ok {
				t.Errorf("%T: declared field %q not resolvable", n, name)
			}
		}
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"input", "input"},
		{"#main/input", "input"},
		{"echo.cwl#input", "input"},
		{"file:///tools/echo.cwl#main/input", "input"},
		{"a/b/c", "c"},
	}
	for _, tt := range tests {
		if got := Basename(tt.id); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSave_Document(t *testing.T) {
	doc := &Document{
		ID:         "echo",
		Class:      ClassCommandLineTool,
		CWLVersion: "v1.0",
		BaseCommand: "echo",
		Inputs: []*InputParameter{{
			ID:    "input",
			Type:  "string",
			Label: "Input string",
			InputBinding: &InputBinding{Position: 0},
		}},
		Outputs: []*OutputParameter{{ID: "output", Type: "stdout"}},
	}

	saved, ok := Save(doc).(map[string]any)
	if !ok {
		t.Fatalf("Save returned %T, want map", Save(doc))
	}
	if saved["class"] != ClassCommandLineTool {
		t.Errorf("class = %v, want CommandLineTool", saved["class"])
	}
	if _, present := saved["stdout"]; present {
		t.Error("unset stdout serialized")
	}

	inputs, ok := saved["inputs"].([]any)
	if !ok || len(inputs) != 1 {
		t.Fatalf("inputs = %v, want one entry", saved["inputs"])
	}
	in := inputs[0].(map[string]any)
	binding, ok := in["inputBinding"].(map[string]any)
	if !ok {
		t.Fatalf("inputBinding = %v, want map", in["inputBinding"])
	}
	if binding["position"] != 0 {
		t.Errorf("position = %v, want 0", binding["position"])
	}
}

func TestSave_Passthrough(t *testing.T) {
	if got := Save("v1.0"); got != "v1.0" {
		t.Errorf("Save scalar = %v, want v1.0", got)
	}
	got := Save([]any{"echo", 1})
	if !reflect.DeepEqual(got, []any{"echo", 1}) {
		t.Errorf("Save list = %v, want [echo 1]", got)
	}
}

func TestSave_UnsetBinding(t *testing.T) {
	// A declared-but-unset binding field resolves to a typed-nil
	// pointer; Save renders it as null, like an unset *bool.
	if got := Save((*InputBinding)(nil)); got != nil {
		t.Errorf("Save nil inputBinding = %v, want nil", got)
	}
	if got := Save((*OutputBinding)(nil)); got != nil {
		t.Errorf("Save nil outputBinding = %v, want nil", got)
	}
}

func TestMarshalJSON_PlainNumbers(t *testing.T) {
	data, err := MarshalJSON([]any{4.2e+21})
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := "[\n    4200000000000000000000\n]"
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
