package html

import (
	"fmt"
	"html/template"
	"os"

	"uva-matrix/internal/config"
	"uva-matrix/internal/exporter/common"
	"uva-matrix/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Extension returns the report file extension
func (e *HTMLExporter) Extension() string {
	return "html"
}

// SummaryData is the root object handed to SummaryTemplate
type SummaryData struct {
	InputPath     string
	RunDate       string
	TotalVehicles int
	Written       int
	TotalEntries  int
	Dimensions    [model.DimensionCount]model.Dimension
	Vehicles      []VehicleData
}

// VehicleData is one vehicle card of the report
type VehicleData struct {
	ID         string
	SheetName  string
	Status     model.VehicleStatus
	OutputPath string
	Error      string
	Categories []string
	Groups     []*common.Group
}

// BuildData prepares the template data for a summary
func BuildData(summary *model.Summary) SummaryData {
	data := SummaryData{
		InputPath:     summary.InputPath,
		RunDate:       summary.RunDate,
		TotalVehicles: len(summary.Vehicles),
		Written:       summary.Count(model.StatusWritten),
		TotalEntries:  summary.TotalEntries(),
		Dimensions:    model.Dimensions,
	}

	for _, v := range summary.Vehicles {
		vd := VehicleData{
			Status:     v.Status,
			OutputPath: v.OutputPath,
		}
		if v.Err != nil {
			vd.Error = v.Err.Error()
		}
		if v.Document != nil {
			vd.ID = v.Document.VehicleID
			vd.SheetName = v.Document.SheetName
			vd.Categories = common.SortedCopy(v.Document.Categories())
			vd.Groups = common.GroupByL1(v.Document.Entries)
		}
		data.Vehicles = append(data.Vehicles, vd)
	}

	return data
}

func (e *HTMLExporter) Export(summary *model.Summary, cfg *config.Config) error {
	tmpl, err := template.New("uva-summary").Funcs(template.FuncMap{
		"statusClass": statusClass,
		"weight": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
		"score": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}).Parse(SummaryTemplate)
	if err != nil {
		return err
	}

	if err := cfg.EnsureReportDir(); err != nil {
		return err
	}

	f, err := os.Create(cfg.ReportPath(e.Extension()))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, BuildData(summary))
}

// statusClass returns the CSS class for a vehicle status badge
func statusClass(status model.VehicleStatus) string {
	switch status {
	case model.StatusWritten:
		return "status-written"
	case model.StatusEmpty:
		return "status-empty"
	default:
		return "status-failed"
	}
}
