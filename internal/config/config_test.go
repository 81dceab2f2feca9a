package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// No config.yaml next to the package sources
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if filepath.Base(cfg.Input.Path) != "UVA模型数据底表.xlsx" {
		t.Errorf("Expected default input workbook, got %s", cfg.Input.Path)
	}

	if cfg.Input.SheetMarker != "数据底表" {
		t.Errorf("Expected default sheet marker, got %q", cfg.Input.SheetMarker)
	}

	if !filepath.IsAbs(cfg.Output.Dir) || filepath.Base(cfg.Output.Dir) != "uva-matrix" {
		t.Errorf("Expected absolute default output dir, got %s", cfg.Output.Dir)
	}

	if cfg.Parse.HeaderRows != 1 {
		t.Errorf("Expected 1 header row, got %d", cfg.Parse.HeaderRows)
	}

	if cfg.Parse.ColumnMode != "position" {
		t.Errorf("Expected position column mode, got %q", cfg.Parse.ColumnMode)
	}

	if cfg.Parse.StrictZeroWeight {
		t.Error("Expected strict_zero_weight to default to false")
	}

	if len(cfg.Parse.NotAvailable) != 1 || cfg.Parse.NotAvailable[0] != "#N/A" {
		t.Errorf("Expected [#N/A] markers, got %v", cfg.Parse.NotAvailable)
	}

	if cfg.Output.Indent != "  " {
		t.Errorf("Expected two-space indent, got %q", cfg.Output.Indent)
	}

	if len(cfg.Output.Reports) != 0 {
		t.Errorf("Expected no reports by default, got %v", cfg.Output.Reports)
	}

	t.Logf("Config loaded successfully with defaults")
	cfg.Print()
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
input:
  path: "./book.xlsx"
  sheet_marker: "底表"
parse:
  column_mode: "Header"
  strict_zero_weight: true
  not_available: ["#N/A", "-"]
output:
  dir: "./json"
  reports: ["excel", "html"]
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Input.SheetMarker != "底表" {
		t.Errorf("Expected marker 底表, got %q", cfg.Input.SheetMarker)
	}
	if cfg.Parse.ColumnMode != "header" {
		t.Errorf("Expected normalized column mode header, got %q", cfg.Parse.ColumnMode)
	}
	if !cfg.Parse.StrictZeroWeight {
		t.Error("Expected strict_zero_weight true")
	}
	if len(cfg.Parse.NotAvailable) != 2 {
		t.Errorf("Expected 2 markers, got %v", cfg.Parse.NotAvailable)
	}
	if len(cfg.Output.Reports) != 2 {
		t.Errorf("Expected 2 reports, got %v", cfg.Output.Reports)
	}
	if cfg.Parse.HeaderRows != 1 {
		t.Errorf("Expected default header rows to survive, got %d", cfg.Parse.HeaderRows)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "env-out")
	t.Setenv("UVA_MATRIX_OUTPUT_DIR", outDir)
	t.Setenv("UVA_MATRIX_PARSE_STRICT_ZERO_WEIGHT", "true")

	cfg, err := Load(DefaultFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Output.Dir != outDir {
		t.Errorf("Output.Dir = %s, expected %s", cfg.Output.Dir, outDir)
	}
	if !cfg.Parse.StrictZeroWeight {
		t.Error("Expected env to enable strict_zero_weight")
	}
}

func TestLoadConfigExplicitPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "custom.yaml")

	if _, err := Load(missing); err == nil {
		t.Errorf("Expected error for missing config file %s", missing)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(configPath, []byte("input: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestReportPath(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{
			ReportDir:  "/tmp/reports",
			ReportName: "summary",
		},
	}

	expected := filepath.Join("/tmp/reports", "summary.xlsx")
	if got := cfg.ReportPath(".xlsx"); got != expected {
		t.Errorf("ReportPath(.xlsx) = %s, expected %s", got, expected)
	}
	if got := cfg.ReportPath("xlsx"); got != expected {
		t.Errorf("ReportPath(xlsx) = %s, expected %s", got, expected)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Input:  InputConfig{Path: "book.xlsx", SheetMarker: "数据底表"},
			Parse:  ParseConfig{HeaderRows: 1, ColumnMode: "position"},
			Output: OutputConfig{Dir: "out", ReportName: "summary"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		shouldErr bool
	}{
		{"Valid config", func(c *Config) {}, false},
		{"Empty input path", func(c *Config) { c.Input.Path = " " }, true},
		{"Empty marker", func(c *Config) { c.Input.SheetMarker = "" }, true},
		{"Negative header rows", func(c *Config) { c.Parse.HeaderRows = -1 }, true},
		{"Unknown column mode", func(c *Config) { c.Parse.ColumnMode = "names" }, true},
		{"Header mode without header", func(c *Config) {
			c.Parse.ColumnMode = "header"
			c.Parse.HeaderRows = 0
		}, true},
		{"Empty output dir", func(c *Config) { c.Output.Dir = "" }, true},
		{"Known reports", func(c *Config) { c.Output.Reports = []string{"excel", " HTML ", "docx"} }, false},
		{"Unknown report", func(c *Config) { c.Output.Reports = []string{"pdf"} }, true},
		{"Reports without name", func(c *Config) {
			c.Output.Reports = []string{"html"}
			c.Output.ReportName = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}
