package common

import (
	"github.com/shopspring/decimal"

	"uva-matrix/internal/model"
)

// Group is one L1 block of a vehicle matrix with its L2 entries
type Group struct {
	L1Name     string
	L1Category string
	L1Weight   float64
	Entries    []model.Entry
}

// L2WeightSum adds up the L2 weights of the group
func (g *Group) L2WeightSum() float64 {
	sum := decimal.Zero
	for _, e := range g.Entries {
		sum = sum.Add(decimal.NewFromFloat(e.L2Weight))
	}
	return sum.Round(4).InexactFloat64()
}

// WeightedScores returns, per PETS dimension, the sum of score x L2 weight over the group
func (g *Group) WeightedScores() [model.DimensionCount]float64 {
	var totals [model.DimensionCount]decimal.Decimal
	for _, e := range g.Entries {
		w := decimal.NewFromFloat(e.L2Weight)
		for i, s := range e.PetsScores.Slots() {
			totals[i] = totals[i].Add(decimal.NewFromFloat(*s).Mul(w))
		}
	}

	var out [model.DimensionCount]float64
	for i, t := range totals {
		out[i] = t.Round(2).InexactFloat64()
	}
	return out
}

// GroupByL1 splits entries into consecutive L1 groups.
// A new group starts whenever the L1 name, category or weight changes.
func GroupByL1(entries []model.Entry) []*Group {
	var groups []*Group
	var current *Group

	for _, e := range entries {
		if current == nil ||
			current.L1Name != e.L1Name ||
			current.L1Category != e.L1Category ||
			current.L1Weight != e.L1Weight {
			current = &Group{
				L1Name:     e.L1Name,
				L1Category: e.L1Category,
				L1Weight:   e.L1Weight,
			}
			groups = append(groups, current)
		}
		current.Entries = append(current.Entries, e)
	}

	return groups
}
