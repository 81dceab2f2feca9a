package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uva-matrix/internal/model"
)

func TestGroupByL1(t *testing.T) {
	entries := []model.Entry{
		{L1Name: "Safety", L1Category: "Core", L1Weight: 0.3, L2Name: "Braking", L2Weight: 0.5, PetsScores: model.PetsScores{Safety: 4}},
		{L1Name: "Safety", L1Category: "Core", L1Weight: 0.3, L2Name: "Airbags", L2Weight: 0.25, PetsScores: model.PetsScores{Safety: 2}},
		{L1Name: "Comfort", L1Category: "Basic", L1Weight: 0.7, L2Name: "Seats", L2Weight: 1},
		{L1Name: "Safety", L1Category: "Core", L1Weight: 0.3, L2Name: "Lights", L2Weight: 0.1},
	}

	groups := GroupByL1(entries)

	require.Len(t, groups, 3, "a repeated L1 after another group starts a new block")
	assert.Equal(t, "Safety", groups[0].L1Name)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, 0.75, groups[0].L2WeightSum())
	assert.Equal(t, 2.5, groups[0].WeightedScores()[2])
	assert.Equal(t, "Comfort", groups[1].L1Name)
	assert.Equal(t, "Lights", groups[2].Entries[0].L2Name)
}

func TestGroupByL1Empty(t *testing.T) {
	assert.Empty(t, GroupByL1(nil))
}

func TestSortLabels(t *testing.T) {
	labels := []string{"兴奋型需求", "基本型需求", "期望型需求"}

	sorted := SortedCopy(labels)

	// pinyin: jiben < qiwang < xingfen
	assert.Equal(t, []string{"基本型需求", "期望型需求", "兴奋型需求"}, sorted)
	assert.Equal(t, "兴奋型需求", labels[0], "SortedCopy must not modify its input")
}
