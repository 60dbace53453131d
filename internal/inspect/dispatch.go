package inspect

import (
	"regexp"
	"strings"

	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

var (
	reKeys        = regexp.MustCompile(`^keys\((.+)\)$`)
	reCommandline = regexp.MustCompile(`^commandline\((.+)\)$`)
	reLs          = regexp.MustCompile(`^ls\((.+)\)$`)
)

// Inspect classifies a query string and routes it to the matching
// operation. Recognized forms:
//
//	.<path>             resolve a dotted path
//	keys(<path>)        list field names or list identifiers
//	commandline         tool command line (CommandLineTool only)
//	commandline(<step>) step command line (Workflow only)
//	ls(.outputs.<id>)   locate output files (CommandLineTool only)
//	ls(.steps.)         list step outputs (Workflow only)
//
// Command-line materialization and step output listing are recognized
// but not built; they fail with NotImplementedError rather than
// succeeding empty.
func Inspect(doc *cwl.Document, pos string, env *Environment) (any, error) {
	switch {
	case strings.HasPrefix(pos, "."):
		return Resolve(doc, pos)

	case strings.HasPrefix(pos, "keys("):
		m := reKeys.FindStringSubmatch(pos)
		if m == nil {
			return nil, &UnknownQueryError{Query: pos}
		}
		return Keys(doc, m[1])

	case pos == "commandline":
		if doc.Class != cwl.ClassCommandLineTool {
			return nil, &UsageError{Message: "commandline for Workflow needs an argument"}
		}
		return nil, &NotImplementedError{Feature: "commandline for CommandLineTool"}

	case strings.HasPrefix(pos, "commandline("):
		if doc.Class != cwl.ClassWorkflow {
			return nil, &UsageError{Message: "commandline for CommandLineTool does not need an argument"}
		}
		if reCommandline.FindStringSubmatch(pos) == nil {
			return nil, &UnknownQueryError{Query: pos}
		}
		return nil, &NotImplementedError{Feature: "commandline for Workflow steps"}

	case strings.HasPrefix(pos, "ls(.outputs."):
		switch doc.Class {
		case cwl.ClassWorkflow:
			return nil, &NotImplementedError{Feature: "ls outputs for Workflow"}
		case cwl.ClassCommandLineTool:
			m := reLs.FindStringSubmatch(pos)
			if m == nil {
				return nil, &UnknownQueryError{Query: pos}
			}
			return LocateOutputs(doc, m[1], env)
		default:
			return nil, &UsageError{Message: "unsupported class " + doc.Class}
		}

	case strings.HasPrefix(pos, "ls(.steps.)"):
		if doc.Class != cwl.ClassWorkflow {
			return nil, &UsageError{Message: "ls outputs for steps does not work for CommandLineTool"}
		}
		return nil, &NotImplementedError{Feature: "ls outputs for steps"}

	default:
		return nil, &UnknownQueryError{Query: pos}
	}
}
