package domain

import "fmt"

// ParseError means a source file could not be read or decoded as text. It
// aborts the whole import; malformed individual rows are silently dropped
// instead and never surface as errors.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExportError means a report write was attempted with no rows, or the write
// itself failed. Report writes are independent of each other and never abort
// the import.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
