package exporter

import (
	"strings"

	"uva-matrix/internal/exporter/html"
	"uva-matrix/internal/exporter/word"
)

// GetExporters returns the Exporters for the requested formats.
// Unknown formats are ignored and duplicates collapse to one exporter.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))

		var exp Exporter
		switch fmtStr {
		case "excel", "xlsx":
			exp = NewExcelExporter()
		case "html":
			exp = html.NewHTMLExporter()
		case "word", "docx":
			exp = word.NewWordExporter()
		default:
			continue
		}

		if seen[exp.Extension()] {
			continue
		}
		seen[exp.Extension()] = true
		exporters = append(exporters, exp)
	}

	return exporters
}
