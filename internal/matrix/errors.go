package matrix

import "fmt"

// SheetError reports a vehicle sheet that could not be read
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError
func NewSheetError(sheet string, err error) *SheetError {
	return &SheetError{Sheet: sheet, Err: err}
}
