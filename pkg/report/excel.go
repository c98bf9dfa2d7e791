// Package report assembles the pipeline's four tables into a single
// auditor-ready workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes one xlsx workbook containing the given sheets in
// order. Each sheet is a direct tabular dump: header row first, no
// index column. Empty tables still get their header row, so a run over
// a zero-row inventory produces a complete, openable report.
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			// Rename the default sheet rather than leaving it dangling.
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return fmt.Errorf("report: rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(s.Name); err != nil {
				return fmt.Errorf("report: add sheet %s: %w", s.Name, err)
			}
		}
		if err := writeSheet(f, s); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s Sheet) error {
	if err := setRow(f, s.Name, 1, s.Header); err != nil {
		return err
	}
	for i, row := range s.Rows {
		if err := setRow(f, s.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("report: sheet %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
