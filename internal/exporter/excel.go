package exporter

import (
	"fmt"
	"strings"

	"uva-matrix/internal/config"
	"uva-matrix/internal/exporter/common"
	"uva-matrix/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	overviewSheet = "Overview"
	groupsSheet   = "L1 Groups"
)

// ExcelExporter writes the run summary as an .xlsx workbook
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Extension returns the report file extension
func (e *ExcelExporter) Extension() string {
	return "xlsx"
}

// Export generates the Excel summary report
func (e *ExcelExporter) Export(summary *model.Summary, cfg *config.Config) error {
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Overview: run metrics + one line per vehicle
	if err := e.writeOverview(f, styler, summary); err != nil {
		return err
	}

	// 2. L1 Groups: weights and weighted PETS totals per L1 block
	if err := e.writeGroups(f, styler, summary.Written()); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	if err := cfg.EnsureReportDir(); err != nil {
		return err
	}
	if err := f.SaveAs(cfg.ReportPath(e.Extension())); err != nil {
		return fmt.Errorf("failed to save Excel report: %w", err)
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := overviewSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Section A: Run Summary
	row := 1
	e.writeRow(f, sheet, row, []interface{}{"Metric", "Value"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Input Workbook", summary.InputPath},
		{"Run Date", summary.RunDate},
		{"Vehicle Sheets", len(summary.Vehicles)},
		{"Written", summary.Count(model.StatusWritten)},
		{"Empty", summary.Count(model.StatusEmpty)},
		{"Failed", summary.Count(model.StatusFailed)},
		{"Total L2 Entries", summary.TotalEntries()},
	}

	for _, m := range metrics {
		e.writeRow(f, sheet, row, []interface{}{m.Key, m.Val}, s.DefaultStyle)
		row++
	}

	row += 2 // Spacer

	// Section B: Vehicles
	headers := []interface{}{"No", "Vehicle", "Sheet", "Status", "Entries", "L1 Groups", "Categories", "Output"}
	e.writeRow(f, sheet, row, headers, s.HeaderStyle)
	row++

	for i, v := range summary.Vehicles {
		entries, l1Count, categories := 0, 0, ""
		if v.Document != nil {
			entries = len(v.Document.Entries)
			l1Count = len(v.Document.L1Names())
			categories = strings.Join(common.SortedCopy(v.Document.Categories()), ", ")
		}

		style := s.DefaultStyle
		if v.Status != model.StatusWritten {
			style = s.WarnStyle
		}

		values := []interface{}{
			i + 1, vehicleID(v), sheetName(v), string(v.Status), entries, l1Count, categories, v.OutputPath,
		}
		e.writeRow(f, sheet, row, values, style)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "C", 24)
	f.SetColWidth(sheet, "G", "H", 40)

	return nil
}

// --- L1 Groups Sheet Logic ---

func (e *ExcelExporter) writeGroups(f *excelize.File, s *Styler, docs []*model.Document) error {
	sheet := groupsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Vehicle", "UV L1", "Category", "L1 Weight", "L2 Count", "L2 Weight Sum"}
	for _, d := range model.Dimensions {
		headers = append(headers, d.Label)
	}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, doc := range docs {
		for gi, g := range common.GroupByL1(doc.Entries) {
			values := []interface{}{doc.VehicleID, g.L1Name, g.L1Category, g.L1Weight, len(g.Entries), g.L2WeightSum()}
			for _, score := range g.WeightedScores() {
				values = append(values, score)
			}

			style := s.DefaultStyle
			if gi == 0 {
				style = s.GroupStyle
			}
			e.writeRow(f, sheet, row, values, style)

			weightCell, _ := excelize.CoordinatesToCellName(4, row)
			f.SetCellStyle(sheet, weightCell, weightCell, s.WeightStyle)
			firstScore, _ := excelize.CoordinatesToCellName(7, row)
			lastScore, _ := excelize.CoordinatesToCellName(len(values), row)
			f.SetCellStyle(sheet, firstScore, lastScore, s.ScoreStyle)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "C", 24)
	f.SetColWidth(sheet, "D", "F", 12)

	return nil
}

// writeRow writes values starting at column A and applies style across the row
func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
	if len(values) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	f.SetCellStyle(sheet, first, last, style)
}

func vehicleID(v *model.VehicleResult) string {
	if v.Document == nil {
		return ""
	}
	return v.Document.VehicleID
}

func sheetName(v *model.VehicleResult) string {
	if v.Document == nil {
		return ""
	}
	return v.Document.SheetName
}
