package workbook

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view of an .xlsx file
type Workbook struct {
	file *excelize.File
	path string
}

// Open opens the workbook at path. The caller must Close it.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filepath.Base(path), err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Path returns the file the workbook was opened from
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the sheet names in workbook order
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Rows returns every row of a sheet as raw cell values.
// Number formats are not applied, so a weight shown as "30%" is read as "0.3";
// formula cells yield their cached result. Trailing empty cells are dropped.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// Close releases the underlying file
func (w *Workbook) Close() error {
	return w.file.Close()
}
