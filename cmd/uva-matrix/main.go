package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"uva-matrix/internal/catalog"
	"uva-matrix/internal/config"
	"uva-matrix/internal/logger"
	"uva-matrix/internal/runner"
)

const (
	appName    = "UVA Matrix"
	appVersion = "1.0.0"
	appDesc    = "Extracts per-vehicle UVA evaluation matrices from the UVA model workbook"
)

var (
	configPath  string
	inputPath   string
	outputDir   string
	formats     string
	verbose     bool
	showVersion bool
	listOnly    bool
	pause       bool
)

func init() {
	flag.StringVar(&configPath, "config", config.DefaultFile, "Path to configuration file (optional when left at the default)")
	flag.StringVar(&configPath, "c", config.DefaultFile, "Path to configuration file (shorthand)")
	flag.StringVar(&inputPath, "input", "", "Override the input workbook from config")
	flag.StringVar(&outputDir, "output", "", "Override the matrix output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated summary reports (excel,html,word)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&listOnly, "list", false, "List the matrix documents in the output directory and exit")
	flag.BoolVar(&pause, "pause", false, "Wait for Enter before exiting (for double-click launches)")
}

func main() {
	exitCode := run()
	if pause {
		waitForEnter()
	}
	os.Exit(exitCode)
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			code = 1
		}
	}()

	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}
	if err := applyOverrides(cfg); err != nil {
		fmt.Printf("❌ Invalid command line: %v\n", err)
		return 1
	}

	if err := logger.Init(os.Stdout, cfg.Logging.File, verbose || cfg.Logging.Verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if logger.IsVerbose() {
		cfg.Print()
	}

	if listOnly {
		return listDocuments(cfg.Output.Dir)
	}

	// 2. Extract
	_, err = runner.Run(cfg, runner.Options{Progress: os.Stdout})
	switch {
	case errors.Is(err, runner.ErrInputNotFound):
		logger.Error("File not found: %s", cfg.Input.Path)
		return 1
	case errors.Is(err, runner.ErrNoVehicleSheets):
		logger.Error("No vehicle sheets: every sheet name is missing %q", cfg.Input.SheetMarker)
		return 1
	case err != nil:
		logger.Error("Extraction failed: %v", err)
		return 1
	}

	logger.Info("✅ All vehicle matrices updated. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// applyOverrides copies command-line overrides onto the loaded configuration
func applyOverrides(cfg *config.Config) error {
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if formats != "" {
		cfg.Output.Reports = strings.Split(formats, ",")
	}
	return cfg.Normalize()
}

func listDocuments(dir string) int {
	items, err := catalog.List(afero.NewOsFs(), dir)
	if err != nil {
		logger.Error("Failed to list %s: %v", dir, err)
		return 1
	}
	if len(items) == 0 {
		logger.Info("No matrix documents in %s", dir)
		return 0
	}

	logger.Info("📁 %d matrix document(s) in %s", len(items), dir)
	for _, item := range items {
		if item.Err != nil {
			logger.Warn("%-16s unreadable: %v", item.VehicleID, item.Err)
			continue
		}
		logger.Info("   %-16s %4d entries  %8d bytes  %s",
			item.VehicleID, item.Entries, item.Size, item.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return 0
}

// waitForEnter keeps the console window open when the tool was double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                     UVA MATRIX v1.0.0                     ║
║        Vehicle UVA Matrix Extraction from Excel           ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
