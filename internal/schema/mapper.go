// Package schema turns arbitrary tabular exports into canonical field
// lookups. Marketplace files arrive with no fixed contract, so each
// normalizer declares an ordered candidate-keyword table and Detect
// resolves it against the headers actually present.
package schema

import (
	"strings"
)

// RawTable is an untyped tabular dataset as produced by a loader.
// Every cell is a string; coercion happens in the normalizers.
type RawTable struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// FieldCandidates pairs a canonical field with its accepted header
// keywords in priority order.
type FieldCandidates struct {
	Field    string
	Keywords []string
}

// Column locates a source column by its original header and index.
type Column struct {
	Name  string
	Index int
}

// ColumnMapping maps canonical field names to source columns. It is
// built once per table by Detect and treated as immutable afterwards.
// A field absent from the mapping was not found in the table.
type ColumnMapping map[string]Column

// Has reports whether the canonical field was located.
func (m ColumnMapping) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Value returns the trimmed cell for the canonical field in the given
// row, or the empty string when the field or the cell is absent.
func (m ColumnMapping) Value(row []string, field string) string {
	col, ok := m[field]
	if !ok || col.Index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col.Index])
}

// Detect resolves canonical fields against the table headers. For each
// candidate field the keyword list is scanned in priority order and the
// first keyword that case-insensitively equals a header wins. There is
// no partial or fuzzy matching, so identical headers always produce an
// identical mapping regardless of column order or header case.
func Detect(headers []string, candidates []FieldCandidates) ColumnMapping {
	byLower := make(map[string]Column, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := byLower[key]; !seen {
			byLower[key] = Column{Name: h, Index: i}
		}
	}

	mapping := make(ColumnMapping)
	for _, cand := range candidates {
		for _, kw := range cand.Keywords {
			if col, ok := byLower[strings.ToLower(kw)]; ok {
				mapping[cand.Field] = col
				break
			}
		}
	}
	return mapping
}
