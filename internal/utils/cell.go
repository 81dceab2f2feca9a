package utils

import "strings"

// DefaultNotAvailable lists the spreadsheet error markers treated as "no value"
var DefaultNotAvailable = []string{"#N/A"}

// IsBlank reports whether a cell carries no usable text
func IsBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

// IsNotAvailable reports whether a cell holds one of the given not-available markers.
// Matching is case-insensitive and ignores surrounding whitespace.
func IsNotAvailable(cell string, markers []string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return false
	}
	for _, m := range markers {
		if strings.EqualFold(trimmed, strings.TrimSpace(m)) {
			return true
		}
	}
	return false
}

// CellAt returns the cell at index idx, or "" when the row is shorter
// (trailing empty cells are not returned by the workbook reader)
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
