// Package schedule parses exported tournament schedule documents.
//
// A schedule is a single delimited-text document split into
// sentinel-delimited blocks, one per entity family. Parsing is pure
// computation: the package never talks to the store, it only consumes
// persisted entities handed to it by the orchestrator.
package schedule

import (
	"encoding/csv"
	"strings"
)

// SupportedVersion is the only schedule schema version this parser
// accepts. The version is the second cell of the first row.
const SupportedVersion = 2

// readDocument decodes the raw document into an ordered row sequence.
// The document is trimmed as a whole before decoding. Rows may have
// differing lengths; short rows simply lack trailing cells.
func readDocument(doc string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(doc)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, malformed(err)
	}
	return rows, nil
}

// cell returns the trimmed cell at index i, or "" when the row is too
// short. Extractors never index rows directly so ragged input cannot
// panic.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
