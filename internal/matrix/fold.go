package matrix

import (
	"strings"

	"github.com/shopspring/decimal"

	"uva-matrix/internal/model"
	"uva-matrix/internal/utils"
)

// Options tunes how rows are interpreted
type Options struct {
	HeaderRows int        // Leading rows that are not data
	ColumnMode ColumnMode // How PETS columns are located

	// StrictZeroWeight lets an explicit 0 in the L1 weight column replace the carried weight.
	// Off by default: a zero weight is treated like an empty cell and the previous weight is kept.
	StrictZeroWeight bool

	NotAvailable []string // Cell markers read as "no score"
}

// DefaultOptions returns the options matching the standard workbook
func DefaultOptions() Options {
	return Options{
		HeaderRows:   1,
		ColumnMode:   ColumnsByPosition,
		NotAvailable: append([]string(nil), utils.DefaultNotAvailable...),
	}
}

// Carry holds the L1 fields that later rows of the same group inherit
type Carry struct {
	L1Name     string
	L1Category string
	L1Weight   decimal.Decimal
}

// Step folds one row into the carry. It returns the next carry, the entry built
// from the row and whether the row produced an entry. Rows without an L2 name
// produce nothing and leave the carry untouched.
func Step(c Carry, row []string, l Layout, opts Options) (Carry, model.Entry, bool) {
	l2Name := utils.CellAt(row, l.L2Name)
	if utils.IsBlank(l2Name) {
		return c, model.Entry{}, false
	}

	next := c
	if v := utils.CellAt(row, l.L1Name); !utils.IsBlank(v) {
		next.L1Name = strings.TrimSpace(v)
	}
	if v := utils.CellAt(row, l.L1Category); !utils.IsBlank(v) {
		next.L1Category = strings.TrimSpace(v)
	}
	if w, ok := ParseNumber(utils.CellAt(row, l.L1Weight)); ok && (opts.StrictZeroWeight || !w.IsZero()) {
		next.L1Weight = w
	}

	entry := model.Entry{
		L1Name:     next.L1Name,
		L1Category: next.L1Category,
		L1Weight:   Round(next.L1Weight, L1WeightPlaces),
		L2Name:     strings.TrimSpace(l2Name),
		L2Weight:   Weight(utils.CellAt(row, l.L2Weight), L2WeightPlaces),
	}

	slots := entry.PetsScores.Slots()
	for i, col := range l.Pets {
		*slots[i] = Score(utils.CellAt(row, col.Index), opts.NotAvailable)
	}

	return next, entry, true
}
