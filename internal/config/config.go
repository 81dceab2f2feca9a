package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Parse   ParseConfig   `mapstructure:"parse"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig locates the workbook and its vehicle sheets
type InputConfig struct {
	Path        string `mapstructure:"path"`         // Workbook to read
	SheetMarker string `mapstructure:"sheet_marker"` // Substring that marks a vehicle sheet
}

// ParseConfig controls how sheet rows are interpreted
type ParseConfig struct {
	HeaderRows       int      `mapstructure:"header_rows"`        // Rows before the data region
	ColumnMode       string   `mapstructure:"column_mode"`        // "position" or "header"
	StrictZeroWeight bool     `mapstructure:"strict_zero_weight"` // Explicit 0 L1 weight overrides the carried weight
	NotAvailable     []string `mapstructure:"not_available"`      // Cell markers read as a 0 score
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir        string   `mapstructure:"dir"`         // Directory for <vehicle>.json
	Indent     string   `mapstructure:"indent"`      // JSON indentation
	Reports    []string `mapstructure:"reports"`     // Summary report formats (excel, html, word)
	ReportDir  string   `mapstructure:"report_dir"`  // Directory for summary reports
	ReportName string   `mapstructure:"report_name"` // Report file name (without extension)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	File    string `mapstructure:"file"`    // Optional log file; empty logs to console only
	Verbose bool   `mapstructure:"verbose"` // Show DEBUG on console
}

const envPrefix = "UVA_MATRIX"

var (
	columnModes   = []string{"position", "header"}
	reportFormats = []string{"excel", "xlsx", "html", "word", "docx"}
)

// DefaultFile is the config file looked up when no path is given
const DefaultFile = "config.yaml"

// Load reads the configuration from a file or uses defaults.
// If configPath is empty or DefaultFile, a missing file is not an error and the
// defaults apply; a missing file at any other path is. Every key can be
// overridden with an UVA_MATRIX_ environment variable (e.g. UVA_MATRIX_OUTPUT_DIR).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = DefaultFile
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) || filepath.Clean(configPath) != DefaultFile {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No default config file - defaults (and env) apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Parse.ColumnMode = strings.ToLower(strings.TrimSpace(cfg.Parse.ColumnMode))

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "no such file") || strings.Contains(msg, "cannot find")
}

// setDefaults configures the values used when no config file is present
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "UVA模型数据底表.xlsx")
	v.SetDefault("input.sheet_marker", "数据底表")

	v.SetDefault("parse.header_rows", 1)
	v.SetDefault("parse.column_mode", "position")
	v.SetDefault("parse.strict_zero_weight", false)
	v.SetDefault("parse.not_available", []string{"#N/A"})

	v.SetDefault("output.dir", "./data/uva-matrix")
	v.SetDefault("output.indent", "  ")
	v.SetDefault("output.reports", []string{})
	v.SetDefault("output.report_dir", "./data/reports")
	v.SetDefault("output.report_name", "uva-matrix-summary")

	v.SetDefault("logging.file", "")
	v.SetDefault("logging.verbose", false)
}

// Normalize validates the configuration and resolves its paths.
// Call it again after changing fields by hand.
func (c *Config) Normalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.normalizePaths()
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absInput, err := filepath.Abs(c.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve input.path: %w", err)
	}
	c.Input.Path = absInput

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	absReports, err := filepath.Abs(c.Output.ReportDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.report_dir: %w", err)
	}
	c.Output.ReportDir = absReports

	return nil
}

// EnsureReportDir creates the report directory if it doesn't exist
func (c *Config) EnsureReportDir() error {
	if err := os.MkdirAll(c.Output.ReportDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	return nil
}

// ReportPath returns the full path of a summary report with the given extension
func (c *Config) ReportPath(ext string) string {
	return filepath.Join(c.Output.ReportDir, c.Output.ReportName+"."+strings.TrimPrefix(ext, "."))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input.path cannot be empty")
	}

	if c.Input.SheetMarker == "" {
		return fmt.Errorf("input.sheet_marker cannot be empty")
	}

	if c.Parse.HeaderRows < 0 {
		return fmt.Errorf("parse.header_rows must not be negative, got %d", c.Parse.HeaderRows)
	}

	if !contains(columnModes, c.Parse.ColumnMode) {
		return fmt.Errorf("parse.column_mode must be one of %v, got %q", columnModes, c.Parse.ColumnMode)
	}

	if c.Parse.ColumnMode == "header" && c.Parse.HeaderRows == 0 {
		return fmt.Errorf("parse.column_mode \"header\" needs at least one header row")
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir cannot be empty")
	}

	for _, r := range c.Output.Reports {
		if !contains(reportFormats, strings.ToLower(strings.TrimSpace(r))) {
			return fmt.Errorf("unknown report format %q (supported: excel, html, word)", r)
		}
	}

	if len(c.Output.Reports) > 0 && c.Output.ReportName == "" {
		return fmt.Errorf("output.report_name cannot be empty when reports are enabled")
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== UVA Matrix Configuration ===")
	fmt.Printf("Input Workbook:   %s\n", c.Input.Path)
	fmt.Printf("Sheet Marker:     %s\n", c.Input.SheetMarker)
	fmt.Printf("Header Rows:      %d\n", c.Parse.HeaderRows)
	fmt.Printf("Column Mode:      %s\n", c.Parse.ColumnMode)
	fmt.Printf("Strict Zero L1W:  %v\n", c.Parse.StrictZeroWeight)
	fmt.Printf("N/A Markers:      %v\n", c.Parse.NotAvailable)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Reports:          %v\n", c.Output.Reports)
	if len(c.Output.Reports) > 0 {
		fmt.Printf("Report Directory: %s\n", c.Output.ReportDir)
	}
	if c.Logging.File != "" {
		fmt.Printf("Log File:         %s\n", c.Logging.File)
	}
	fmt.Println("================================")
}
