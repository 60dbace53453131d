package cwl

// InputBinding controls how an input parameter is converted to
// command-line argument(s).
// See https://www.commonwl.org/v1.0/CommandLineTool.html#CommandLineBinding
type InputBinding struct {
	// Position determines the relative ordering of arguments on the
	// command line. nil means the document did not declare one; the
	// resolver fills 0 on first traversal and the fill sticks.
	Position any

	// Prefix is prepended to the input value (e.g. "--input").
	Prefix string

	// Separate controls whether there is a space between prefix and
	// value. Default true.
	Separate *bool

	// ItemSeparator joins array items into a single argument.
	ItemSeparator string

	// ValueFrom computes the argument value from an expression.
	ValueFrom string

	// ShellQuote controls shell quoting of the value. Default true.
	ShellQuote *bool

	// LoadContents loads file content into the input object.
	LoadContents bool
}

var inputBindingFields = []string{
	"itemSeparator", "loadContents", "position", "prefix", "separate",
	"shellQuote", "valueFrom",
}

// Field implements Node.
func (b *InputBinding) Field(name string) (any, bool) {
	switch name {
	case "position":
		return b.Position, true
	case "prefix":
		return b.Prefix, true
	case "separate":
		return b.Separate, true
	case "itemSeparator":
		return b.ItemSeparator, true
	case "valueFrom":
		return b.ValueFrom, true
	case "shellQuote":
		return b.ShellQuote, true
	case "loadContents":
		return b.LoadContents, true
	}
	return nil, false
}

// FieldNames implements Node.
func (b *InputBinding) FieldNames() []string { return inputBindingFields }

// OutputBinding specifies how to find output files after execution.
// See https://www.commonwl.org/v1.0/CommandLineTool.html#CommandOutputBinding
type OutputBinding struct {
	// Glob is a pattern (or list of patterns) matching output files in
	// the output directory. May be a runtime expression.
	Glob any

	// LoadContents reads file content into the file object.
	LoadContents bool

	// LoadListing controls directory listing behavior.
	LoadListing string

	// OutputEval transforms the collected output.
	OutputEval string
}

var outputBindingFields = []string{
	"glob", "loadContents", "loadListing", "outputEval",
}

// Field implements Node.
func (b *OutputBinding) Field(name string) (any, bool) {
	switch name {
	case "glob":
		return b.Glob, true
	case "loadContents":
		return b.LoadContents, true
	case "loadListing":
		return b.LoadListing, true
	case "outputEval":
		return b.OutputEval, true
	}
	return nil, false
}

// FieldNames implements Node.
func (b *OutputBinding) FieldNames() []string { return outputBindingFields }
