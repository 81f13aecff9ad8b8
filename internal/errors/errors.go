// Package errors defines the typed failure conditions of the normalization
// and statistics pipeline.
//
// Schema-level and empty-result conditions are fatal for the table they
// occur in and are surfaced to the caller as typed errors. Cell-level
// coercion failures are never errors: normalizers recover locally with the
// documented fallback value and report an aggregate count.
package errors

import (
	"fmt"
	"strings"
)

// SchemaError indicates that a required canonical field could not be
// located in an input table. No partial normalization is returned for
// the affected table.
type SchemaError struct {
	Table   string   // table name as reported by the loader
	Field   string   // canonical field that could not be located
	Headers []string // headers observed in the input table
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s: required field %q not found in headers [%s]",
		e.Table, e.Field, strings.Join(e.Headers, ", "))
}

// NewSchemaError creates a SchemaError for the given table and field.
func NewSchemaError(table, field string, headers []string) *SchemaError {
	return &SchemaError{Table: table, Field: field, Headers: headers}
}

// EmptyResultError indicates that a table has zero usable records after
// filtering. Callers decide whether an empty-but-valid report section is
// emitted or the section is omitted.
type EmptyResultError struct {
	Table string
}

// Error implements the error interface.
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("table %s: no usable records after filtering", e.Table)
}

// NewEmptyResultError creates an EmptyResultError for the given table.
func NewEmptyResultError(table string) *EmptyResultError {
	return &EmptyResultError{Table: table}
}
