package common

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortLabels sorts labels in place using Chinese collation (pinyin order for
// Han characters, natural order for Latin text) and returns the slice
func SortLabels(labels []string) []string {
	c := collate.New(language.SimplifiedChinese)
	sort.SliceStable(labels, func(i, j int) bool {
		return c.CompareString(labels[i], labels[j]) < 0
	})
	return labels
}

// SortedCopy returns a sorted copy of labels, leaving the input untouched
func SortedCopy(labels []string) []string {
	out := append([]string(nil), labels...)
	return SortLabels(out)
}
