// Package cwl holds the in-memory node model for parsed CWL documents.
//
// Every record kind exposes a fixed field table through the Node
// interface; path traversal looks field presence up in that table
// instead of reflecting over the struct.
package cwl

// Node is a typed record with a declared set of named fields.
type Node interface {
	// Field returns the value of a declared field. The second return
	// is false when the name is not in the record's field table.
	// Declared-but-unset fields report their zero value with ok=true.
	Field(name string) (any, bool)

	// FieldNames returns the record's declared field names in
	// lexicographic order.
	FieldNames() []string
}

// Identified is implemented by list elements that carry a stable id.
// Lookup into an identifier-addressable list matches on the basename
// of this id (the segment after the final "/" or "#").
type Identified interface {
	Identifier() string
}

// Recognized document classes.
const (
	ClassCommandLineTool = "CommandLineTool"
	ClassWorkflow        = "Workflow"
)
