package report

import (
	"fmt"
	"strconv"
	"strings"

	"uva-matrix/internal/exporter/common"
	"uva-matrix/internal/logger"
	"uva-matrix/internal/matrix"
	"uva-matrix/internal/model"
)

// PreviewSize is the number of entries echoed per vehicle
const PreviewSize = 3

// SheetList prints every sheet of the workbook
func SheetList(names []string) {
	logger.Info("📋 Sheets: [%s]", strings.Join(names, ", "))
}

// Vehicles prints the discovered vehicle-to-sheet mapping
func Vehicles(d matrix.Discovery) {
	logger.Info("🚗 Found %d vehicle(s):", len(d.Sheets))
	for _, s := range d.Sheets {
		logger.Info("   %s -> %s", s.ID, s.SheetName)
	}
	for _, id := range d.Collisions {
		logger.Warn("Vehicle %q is claimed by more than one sheet; the last sheet wins", id)
	}
	for _, name := range d.EmptyIDs {
		logger.Warn("Sheet %q has no vehicle name besides the marker; skipped", name)
	}
}

// Vehicle prints the outcome of one processed sheet
func Vehicle(v *model.VehicleResult) {
	doc := v.Document
	logger.Info("📊 %s", doc.SheetName)

	switch v.Status {
	case model.StatusEmpty:
		logger.Warn("   No entries parsed (%d data rows)", v.RowsRead)
		return
	case model.StatusFailed:
		logger.Error("   %v", v.Err)
		return
	}

	logger.Info("   ✅ %d L2 entries", len(doc.Entries))
	logger.Info("   📁 L1 groups: %d", len(doc.L1Names()))
	logger.Info("   📁 Categories: [%s]", strings.Join(common.SortedCopy(doc.Categories()), ", "))
	logger.Info("   💾 Saved to: %s", v.OutputPath)
	if v.RowsSkip > 0 {
		logger.Debug("   %d row(s) without an L2 name skipped", v.RowsSkip)
	}

	logger.Info("   📋 Preview:")
	for _, line := range Preview(doc.Entries, PreviewSize) {
		logger.Info("      %s", line)
	}
}

// Totals prints the closing line of a run
func Totals(s *model.Summary) {
	logger.Info("")
	logger.Info("Vehicles: %d written, %d empty, %d failed; %d L2 entries total",
		s.Count(model.StatusWritten), s.Count(model.StatusEmpty), s.Count(model.StatusFailed), s.TotalEntries())
	for _, path := range s.ReportFiles {
		logger.Info("📄 Report: %s", path)
	}
}

// Preview renders the first n entries, two lines each:
//
//	[1] 智能座舱 / 语音交互 (weight: 0.35)
//	    PETS (non-zero): {intelligent_driving: 3, cabin_comfort: 4.5}
func Preview(entries []model.Entry, n int) []string {
	if n > len(entries) {
		n = len(entries)
	}
	lines := make([]string, 0, 2*n)
	for i, e := range entries[:n] {
		lines = append(lines,
			fmt.Sprintf("[%d] %s / %s (weight: %s)", i+1, e.L1Name, e.L2Name, formatFloat(e.L2Weight)),
			fmt.Sprintf("    PETS (non-zero): %s", FormatScores(e.PetsScores.NonZero())),
		)
	}
	return lines
}

// FormatScores renders scores as {key: value, ...}
func FormatScores(scores []model.ScoreValue) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = s.Key + ": " + formatFloat(s.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
