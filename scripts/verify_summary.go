//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Usage: go run scripts/verify_summary.go [report.xlsx]
// Reports empty identity cells in the "L1 Groups" sheet of an Excel summary.
func main() {
	filename := "data/reports/uva-matrix-summary.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheetName := "L1 Groups"
	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== EMPTY CELL CHECK: %s ===\n", filename)
	fmt.Printf("Checking sheet: %s\n", sheetName)
	fmt.Printf("Total rows: %d\n\n", len(rows))

	// Vehicle, UV L1, Category, L1 Weight
	required := []int{0, 1, 2, 3}

	empty := 0
	for i, row := range rows {
		if i == 0 {
			continue // Header
		}
		for _, col := range required {
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				name, _ := excelize.ColumnNumberToName(col + 1)
				fmt.Printf("Row %d: empty %s (%s)\n", i+1, name, rows[0][col])
				empty++
			}
		}
	}

	if empty > 0 {
		fmt.Printf("\n⚠️  %d empty cell(s)\n", empty)
		os.Exit(1)
	}
	fmt.Println("✅ No empty identity cells")
}
