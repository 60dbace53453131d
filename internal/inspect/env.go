// Package inspect is the path resolution and dispatch engine.
// It answers path-expression queries over a parsed cwl.Document:
// dotted-path resolution, field enumeration, and output file location.
package inspect

// Runtime holds the runtime directories for a single query.
// Empty strings mean the directory is not configured.
type Runtime struct {
	OutDir string
	TmpDir string
}

// Environment is the read-only per-query context. It is created once
// per invocation and never mutated by the engine.
type Environment struct {
	Runtime Runtime

	// Args holds bound argument values, opaque to the engine; they are
	// only handed through to expression instantiation.
	Args map[string]any
}
