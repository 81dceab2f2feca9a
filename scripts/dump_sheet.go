//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Usage: go run scripts/dump_sheet.go <workbook> <sheet> [row ...]
// Prints the raw non-empty cells of the given 1-based rows (all rows when none are given).
func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: dump_sheet <workbook> <sheet> [row ...]")
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheetName := os.Args[2]
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		log.Fatal(err)
	}

	var wanted []int
	for _, arg := range os.Args[3:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("bad row number %q", arg)
		}
		wanted = append(wanted, n)
	}
	if len(wanted) == 0 {
		for i := range rows {
			wanted = append(wanted, i+1)
		}
	}

	fmt.Printf("=== %s (%d rows) ===\n", sheetName, len(rows))

	for _, rowNum := range wanted {
		if rowNum < 1 || rowNum > len(rows) {
			fmt.Printf("\nRow %d: out of range\n", rowNum)
			continue
		}
		fmt.Printf("\nRow %d:\n", rowNum)
		for i, cell := range rows[rowNum-1] {
			if strings.TrimSpace(cell) != "" {
				col, _ := excelize.ColumnNumberToName(i + 1)
				fmt.Printf("  %s: '%s'\n", col, cell)
			}
		}
	}
}
