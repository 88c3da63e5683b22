// Package excel serializes TableDocuments to xlsx workbooks.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"contratos/internal/export"
)

// Write serializes the document as a single-sheet xlsx workbook to w.
// The header row always comes first; a zero-row document yields a valid
// header-only workbook.
func Write(w io.Writer, doc export.TableDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", doc.SheetName); err != nil {
		return fmt.Errorf("name sheet %q: %w", doc.SheetName, err)
	}

	if err := writeRow(f, doc.SheetName, 1, doc.Headers); err != nil {
		return err
	}
	for i, row := range doc.Rows {
		if err := writeRow(f, doc.SheetName, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
