package matrix

import (
	"strings"

	"uva-matrix/internal/model"
)

// ColumnMode selects how PETS columns are located in a sheet
type ColumnMode string

const (
	ColumnsByPosition ColumnMode = "position" // Fixed offsets from DefaultLayout
	ColumnsByHeader   ColumnMode = "header"   // PETS columns found by header label
)

// PetsColumn binds a sheet column to a PETS dimension
type PetsColumn struct {
	Index int // 0-based column, -1 when the column is absent
	Key   string
	Label string
}

// Layout is the column-index-to-field table of a vehicle sheet
type Layout struct {
	L1Name     int
	L1Category int
	L1Weight   int
	L2Name     int
	L2Weight   int
	Pets       [model.DimensionCount]PetsColumn
}

// DefaultLayout returns the standard sheet layout:
//
//	A: UV L1   B: L1 priority (category)   C: L1 weight
//	D: UV L2   E: L2 weight                F..O: PETS scores
func DefaultLayout() Layout {
	l := Layout{
		L1Name:     0,
		L1Category: 1,
		L1Weight:   2,
		L2Name:     3,
		L2Weight:   4,
	}
	for i, d := range model.Dimensions {
		l.Pets[i] = PetsColumn{Index: 5 + i, Key: d.Key, Label: d.Label}
	}
	return l
}

// WithHeader relocates the PETS columns by matching their labels against a header row.
// It returns the adjusted layout and the labels that were not found.
func (l Layout) WithHeader(header []string) (Layout, []string) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		label := strings.TrimSpace(h)
		if label == "" {
			continue
		}
		if _, dup := positions[label]; !dup {
			positions[label] = i
		}
	}

	var missing []string
	for i := range l.Pets {
		idx, ok := positions[l.Pets[i].Label]
		if !ok {
			l.Pets[i].Index = -1
			missing = append(missing, l.Pets[i].Label)
			continue
		}
		l.Pets[i].Index = idx
	}
	return l, missing
}
