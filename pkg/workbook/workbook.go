// Package workbook serves sheet grids from a local .xlsx export, so the
// dashboard can run against a downloaded copy of the spreadsheet.
package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook reads grids from an .xlsx file. The file is opened per call.
type Workbook struct {
	Path string
}

func New(path string) *Workbook {
	return &Workbook{Path: path}
}

// Grid returns the rows of sheet clipped to the columns of readRange
// ("A:M", "B:D"; empty means all columns).
func (w *Workbook) Grid(ctx context.Context, sheet, readRange string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, w.Path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}

	first, last, err := ColumnSpan(readRange)
	if err != nil {
		return nil, err
	}
	return clip(rows, first, last), nil
}

// Sheets lists the tabs of the workbook.
func (w *Workbook) Sheets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %s: %w", w.Path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// ColumnSpan turns "A:M" into zero-based column bounds. last is -1 when the
// range is open.
func ColumnSpan(readRange string) (first, last int, err error) {
	readRange = strings.TrimSpace(readRange)
	if readRange == "" {
		return 0, -1, nil
	}
	from, to, ok := strings.Cut(readRange, ":")
	if !ok {
		to = from
	}
	a, err := excelize.ColumnNameToNumber(strings.TrimRight(from, "0123456789"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", readRange, err)
	}
	b, err := excelize.ColumnNameToNumber(strings.TrimRight(to, "0123456789"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", readRange, err)
	}
	if b < a {
		return 0, 0, fmt.Errorf("invalid range %q", readRange)
	}
	return a - 1, b - 1, nil
}

func clip(rows [][]string, first, last int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if first >= len(row) {
			out[i] = []string{}
			continue
		}
		end := len(row)
		if last >= 0 && last+1 < end {
			end = last + 1
		}
		out[i] = row[first:end]
	}
	return out
}

// Write stores grids as sheets of a new workbook at path. Sheets are created
// in the order of names.
func Write(path string, names []string, grids map[string][][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		for r, row := range grids[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
