package exporter

import (
	"uva-matrix/internal/config"
	"uva-matrix/internal/model"
)

// Exporter is the unified interface for all summary report formats
type Exporter interface {
	// Export writes the report for summary to cfg.ReportPath(Extension())
	Export(summary *model.Summary, cfg *config.Config) error
	// Extension is the report file extension, without the dot
	Extension() string
}
