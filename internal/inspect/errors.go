package inspect

import "fmt"

// FieldNotFoundError is returned when a path segment does not resolve:
// a bad index, an unknown identifier, or an unknown field name. Path
// carries the full requested path for diagnostics.
type FieldNotFoundError struct {
	Path string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("no such field %s", e.Path)
}

// UnknownQueryError is returned when a query string matches no
// recognized grammar form.
type UnknownQueryError struct {
	Query string
}

func (e *UnknownQueryError) Error() string {
	return fmt.Sprintf("unknown query: %s", e.Query)
}

// UsageError is returned when a recognized query form is used against
// the wrong document class.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// NotImplementedError marks a recognized but unimplemented query form,
// so callers can tell "not supported yet" from an empty result.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not yet implemented: %s", e.Feature)
}

// InvalidPathError is returned when an ls() path does not resolve to
// an output parameter.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path for output listing: %s", e.Path)
}

// UnsupportedOutputError is returned when an output parameter has no
// usable binding to locate files with.
type UnsupportedOutputError struct {
	ID string
}

func (e *UnsupportedOutputError) Error() string {
	return fmt.Sprintf("unsupported output: %s has no outputBinding", e.ID)
}
