package cwl

import (
	"path"
	"strings"
)

// InputParameter is an input parameter of a tool or workflow.
// Handles both shorthand ("input: string") and expanded form.
type InputParameter struct {
	ID           string
	Type         any // string or complex type description
	Label        string
	Doc          string
	Default      any
	Format       any
	Streamable   bool
	LoadContents bool

	SecondaryFiles any

	// InputBinding controls how this parameter appears on the command
	// line. Its Position is default-filled on first traversal.
	InputBinding *InputBinding
}

var inputParameterFields = []string{
	"default", "doc", "format", "id", "inputBinding", "label",
	"loadContents", "secondaryFiles", "streamable", "type",
}

// Field implements Node.
func (p *InputParameter) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "type":
		return p.Type, true
	case "label":
		return p.Label, true
	case "doc":
		return p.Doc, true
	case "default":
		return p.Default, true
	case "format":
		return p.Format, true
	case "streamable":
		return p.Streamable, true
	case "loadContents":
		return p.LoadContents, true
	case "secondaryFiles":
		return p.SecondaryFiles, true
	case "inputBinding":
		return p.InputBinding, true
	}
	return nil, false
}

// FieldNames implements Node.
func (p *InputParameter) FieldNames() []string { return inputParameterFields }

// Identifier implements Identified.
func (p *InputParameter) Identifier() string { return p.ID }

// OutputParameter is an output parameter of a tool or workflow.
type OutputParameter struct {
	ID         string
	Type       any
	Label      string
	Doc        string
	Format     any
	Streamable bool

	SecondaryFiles any

	// OutputBinding specifies how to collect this output (tools).
	OutputBinding *OutputBinding

	// OutputSource references the producing step output (workflows).
	OutputSource string
}

var outputParameterFields = []string{
	"doc", "format", "id", "label", "outputBinding", "outputSource",
	"secondaryFiles", "streamable", "type",
}

// Field implements Node.
func (p *OutputParameter) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "type":
		return p.Type, true
	case "label":
		return p.Label, true
	case "doc":
		return p.Doc, true
	case "format":
		return p.Format, true
	case "streamable":
		return p.Streamable, true
	case "secondaryFiles":
		return p.SecondaryFiles, true
	case "outputBinding":
		return p.OutputBinding, true
	case "outputSource":
		return p.OutputSource, true
	}
	return nil, false
}

// FieldNames implements Node.
func (p *OutputParameter) FieldNames() []string { return outputParameterFields }

// Identifier implements Identified.
func (p *OutputParameter) Identifier() string { return p.ID }

// basename returns the final segment of an id. Ids may be bare
// ("input"), fragment-qualified ("#main/input"), or file-qualified
// ("echo.cwl#input"); the segment after the last "/" or "#" is the
// name used for lookup.
func basename(id string) string {
	if i := strings.LastIndex(id, "#"); i != -1 {
		id = id[i+1:]
	}
	return path.Base(id)
}

// Basename exposes the id basename rule used for identifier lookup.
func Basename(id string) string { return basename(id) }
