package matrix

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMarker is the sheet-name token that marks a vehicle data base table
const DefaultMarker = "数据底表"

// SheetFilter decides whether a sheet takes part in the extraction
type SheetFilter func(sheetName string) bool

// ContainsMarker selects sheets whose name contains marker
func ContainsMarker(marker string) SheetFilter {
	return func(sheetName string) bool {
		return strings.Contains(sheetName, marker)
	}
}

// VehicleID derives the vehicle identifier from a sheet name:
// marker removed, surrounding whitespace trimmed, lowercased.
//
//	"SedanX 数据底表" -> "sedanx"
func VehicleID(sheetName, marker string) string {
	name := sheetName
	if marker != "" {
		name = strings.ReplaceAll(name, marker, "")
	}
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// VehicleSheet maps a vehicle identifier to the sheet holding its matrix
type VehicleSheet struct {
	ID        string
	SheetName string
}

// Discovery is the result of selecting vehicle sheets from a workbook
type Discovery struct {
	Sheets     []VehicleSheet // Workbook order, one per vehicle ID
	Collisions []string       // IDs claimed by more than one sheet
	EmptyIDs   []string       // Matching sheets whose derived ID is empty
}

// Discover selects the sheets accepted by filter and derives their vehicle IDs.
// When two sheets derive the same ID the later sheet wins, but the vehicle keeps
// the position of its first occurrence.
func Discover(sheetNames []string, filter SheetFilter, marker string) Discovery {
	var d Discovery
	index := make(map[string]int)

	for _, name := range sheetNames {
		if !filter(name) {
			continue
		}

		id := VehicleID(name, marker)
		if id == "" {
			d.EmptyIDs = append(d.EmptyIDs, name)
			continue
		}

		if i, ok := index[id]; ok {
			d.Sheets[i].SheetName = name
			d.Collisions = append(d.Collisions, id)
			continue
		}

		index[id] = len(d.Sheets)
		d.Sheets = append(d.Sheets, VehicleSheet{ID: id, SheetName: name})
	}

	return d
}
