package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"

	"uva-matrix/internal/config"
	"uva-matrix/internal/exporter"
	"uva-matrix/internal/exporter/matrixjson"
	"uva-matrix/internal/logger"
	"uva-matrix/internal/matrix"
	"uva-matrix/internal/model"
	"uva-matrix/internal/report"
	"uva-matrix/internal/ui"
	"uva-matrix/internal/workbook"
)

// Options controls the side channels of a run
type Options struct {
	Fs       afero.Fs  // Filesystem for matrix documents; nil means the OS filesystem
	Progress io.Writer // Progress bar output; nil disables the bars
}

// Run extracts every vehicle sheet of the configured workbook into
// <output.dir>/<vehicle id>.json and generates the configured summary reports.
//
// The returned Summary is non-nil whenever the workbook could be opened, even
// when an error is returned, so callers can still print what happened.
func Run(cfg *config.Config, opts Options) (*model.Summary, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if _, err := os.Stat(cfg.Input.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, cfg.Input.Path)
		}
		return nil, fmt.Errorf("failed to access input: %w", err)
	}

	logger.Info("📖 Reading workbook: %s", cfg.Input.Path)
	wb, err := workbook.Open(cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	pipeline := newPipeline(opts.Progress)

	summary := model.NewSummary()
	summary.InputPath = cfg.Input.Path
	summary.OutputDir = cfg.Output.Dir
	summary.RunDate = time.Now().Format("2006-01-02")

	// --- Phase 1: Discovering ---
	discoverBar := pipeline.NextPhase(1)
	summary.SheetNames = wb.SheetNames()
	report.SheetList(summary.SheetNames)

	marker := cfg.Input.SheetMarker
	found := matrix.Discover(summary.SheetNames, matrix.ContainsMarker(marker), marker)
	summary.Collisions = found.Collisions
	summary.EmptyIDs = found.EmptyIDs
	discoverBar.Increment()

	if len(found.Sheets) == 0 {
		pipeline.Finish()
		logger.Warn("No sheet name contains %q", marker)
		return summary, fmt.Errorf("%w: no sheet name contains %q", ErrNoVehicleSheets, marker)
	}
	report.Vehicles(found)

	// --- Phase 2: Parsing ---
	parser := matrix.NewParser(parseOptions(cfg))
	parseBar := pipeline.NextPhase(len(found.Sheets))
	for _, sheet := range found.Sheets {
		parseBar.Describe(sheet.ID)
		summary.Vehicles = append(summary.Vehicles, parseSheet(wb, parser, sheet))
		parseBar.Increment()
	}

	// --- Phase 3: Writing ---
	writer := matrixjson.NewWriter(fs, cfg.Output.Dir, cfg.Output.Indent)
	writeBar := pipeline.NextPhase(len(summary.Vehicles))
	for _, v := range summary.Vehicles {
		writeBar.Describe(v.Document.VehicleID)
		if v.Status == model.StatusWritten {
			writeVehicle(writer, v)
		}
		report.Vehicle(v)
		writeBar.Increment()
	}

	// --- Phase 4: Reporting ---
	// A failed report is recorded but does not fail the run
	exporters := exporter.GetExporters(cfg.Output.Reports)
	reportBar := pipeline.NextPhase(len(exporters))
	for _, exp := range exporters {
		if err := exp.Export(summary, cfg); err != nil {
			logger.Error("Report export failed: %v", err)
			summary.ReportErrors = append(summary.ReportErrors, err)
		} else {
			summary.ReportFiles = append(summary.ReportFiles, cfg.ReportPath(exp.Extension()))
		}
		reportBar.Increment()
	}
	pipeline.Finish()

	report.Totals(summary)

	if failed := summary.Count(model.StatusFailed); failed > 0 {
		return summary, fmt.Errorf("%w: %d of %d", ErrVehicleFailed, failed, len(summary.Vehicles))
	}
	return summary, nil
}

// parseSheet reads one vehicle sheet. The result is marked WRITTEN until the
// write phase says otherwise.
func parseSheet(wb *workbook.Workbook, parser *matrix.Parser, sheet matrix.VehicleSheet) *model.VehicleResult {
	v := &model.VehicleResult{
		Document: &model.Document{VehicleID: sheet.ID, SheetName: sheet.SheetName},
		Status:   model.StatusWritten,
	}

	rows, err := wb.Rows(sheet.SheetName)
	if err != nil {
		v.Status = model.StatusFailed
		v.Err = matrix.NewSheetError(sheet.SheetName, err)
		return v
	}

	res := parser.Parse(rows)
	v.Document.Entries = res.Entries
	v.RowsRead = res.RowsRead
	v.RowsSkip = len(res.SkippedRows)

	for _, row := range res.SkippedRows {
		logger.LogSkippedRow(sheet.SheetName, row, "empty L2 name")
	}
	if len(res.MissingColumns) > 0 {
		logger.Warn("%s: PETS columns not found in header, scored as 0: %v", sheet.SheetName, res.MissingColumns)
	}

	return v
}

func writeVehicle(writer *matrixjson.Writer, v *model.VehicleResult) {
	path, err := writer.Write(v.Document)
	switch {
	case errors.Is(err, matrixjson.ErrEmptyDocument):
		v.Status = model.StatusEmpty
	case err != nil:
		v.Status = model.StatusFailed
		v.Err = err
	default:
		v.OutputPath = path
	}
}

func parseOptions(cfg *config.Config) matrix.Options {
	opts := matrix.DefaultOptions()
	opts.HeaderRows = cfg.Parse.HeaderRows
	opts.ColumnMode = matrix.ColumnMode(cfg.Parse.ColumnMode)
	opts.StrictZeroWeight = cfg.Parse.StrictZeroWeight
	if len(cfg.Parse.NotAvailable) > 0 {
		opts.NotAvailable = cfg.Parse.NotAvailable
	}
	return opts
}

func newPipeline(out io.Writer) *ui.Pipeline {
	phases := []ui.Phase{ui.PhaseDiscovering, ui.PhaseParsing, ui.PhaseWriting, ui.PhaseReporting}
	if out == nil {
		p := ui.NewPipelineWithOutput(phases, io.Discard)
		p.Disable()
		return p
	}
	return ui.NewPipelineWithOutput(phases, out)
}
