// Package export defines the tabular export contract. The core produces
// a TableDocument (headers plus row-major formatted cells); adapters
// serialize it. Export failures stay at this boundary — the computed data
// remains valid and re-exportable.
package export

import "context"

// TableDocument is an export-ready table. Rows are produced by the core
// projections, so every row has exactly len(Headers) cells.
type TableDocument struct {
	SheetName string
	Filename  string
	Headers   []string
	Rows      [][]string
}

// Mirror pushes an exported document to a secondary destination (e.g. a
// shared spreadsheet) after the download has been served.
type Mirror interface {
	Export(ctx context.Context, doc TableDocument) error
}
