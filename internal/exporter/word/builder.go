package word

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"uva-matrix/internal/config"
	"uva-matrix/internal/exporter/common"
	"uva-matrix/internal/model"

	"github.com/nguyenthenguyen/docx"
)

// lineBreak is turned into <w:br/> by the docx library
const lineBreak = "\r\n"

type WordExporter struct {
	template func() ([]byte, error)
}

func NewWordExporter() *WordExporter {
	return &WordExporter{template: templateBytes}
}

// Extension returns the report file extension
func (e *WordExporter) Extension() string {
	return "docx"
}

func (e *WordExporter) Export(summary *model.Summary, cfg *config.Config) error {
	data, err := e.template()
	if err != nil {
		return fmt.Errorf("failed to build Word template: %w", err)
	}
	if err := checkPlaceholders(data); err != nil {
		return fmt.Errorf("invalid Word template: %w", err)
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to read Word template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// Per-vehicle content as plain text (the library handles XML encoding)
	var sb strings.Builder
	for i, v := range summary.Vehicles {
		buildVehicleText(&sb, v)
		if i < len(summary.Vehicles)-1 {
			sb.WriteString(strings.Repeat("-", 60) + lineBreak)
		}
	}

	values := map[string]string{
		PlaceholderDate:     summary.RunDate,
		PlaceholderInput:    summary.InputPath,
		PlaceholderVehicles: fmt.Sprintf("%d (%d written)", len(summary.Vehicles), summary.Count(model.StatusWritten)),
		PlaceholderEntries:  strconv.Itoa(summary.TotalEntries()),
		PlaceholderContent:  sb.String(),
	}
	for _, p := range Placeholders {
		if err := doc.Replace(p, values[p], -1); err != nil {
			return fmt.Errorf("failed to fill %s: %w", p, err)
		}
	}

	if err := cfg.EnsureReportDir(); err != nil {
		return err
	}
	if err := doc.WriteToFile(cfg.ReportPath(e.Extension())); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildVehicleText writes the plain-text block of one vehicle
func buildVehicleText(sb *strings.Builder, v *model.VehicleResult) {
	if v.Document == nil {
		return
	}
	d := v.Document

	sb.WriteString(fmt.Sprintf("[%s] %s (%s)%s", v.Status, d.VehicleID, d.SheetName, lineBreak))
	if v.Err != nil {
		sb.WriteString("Error: " + v.Err.Error() + lineBreak)
	}
	if len(d.Entries) == 0 {
		sb.WriteString(lineBreak)
		return
	}

	sb.WriteString(fmt.Sprintf("Entries: %d, L1 groups: %d%s", len(d.Entries), len(d.L1Names()), lineBreak))
	sb.WriteString("Categories: " + strings.Join(common.SortedCopy(d.Categories()), ", ") + lineBreak)

	for _, g := range common.GroupByL1(d.Entries) {
		sb.WriteString(fmt.Sprintf("  %s [%s] weight %.4f, %d L2 items%s",
			truncate(g.L1Name, 30), g.L1Category, g.L1Weight, len(g.Entries), lineBreak))
		for _, entry := range g.Entries {
			sb.WriteString(fmt.Sprintf("    - %s (%.2f)%s", truncate(entry.L2Name, 40), entry.L2Weight, lineBreak))
		}
	}
	sb.WriteString(lineBreak)
}

// truncate shortens s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
