package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTemp(t *testing.T, verbose bool) (string, *bytes.Buffer) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "logs", "uva-matrix.log")
	console := &bytes.Buffer{}
	if err := Init(console, logPath, verbose); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(Close)
	return logPath, console
}

func TestLoggerInit(t *testing.T) {
	logPath, console := initTemp(t, false)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Parsed %d entries", 42)
	if !strings.Contains(console.String(), "Parsed 42 entries") {
		t.Errorf("Console output missing info message: %s", console.String())
	}

	logContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	logStr := string(logContent)
	if !strings.Contains(logStr, "[INFO] Parsed 42 entries") {
		t.Errorf("Log file missing info line: %s", logStr)
	}
}

func TestLoggerConsoleOnly(t *testing.T) {
	console := &bytes.Buffer{}
	if err := Init(console, "", false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Warn("sheet %s is empty", "cetus")
	Error("write failed")

	out := console.String()
	if !strings.Contains(out, "⚠️  sheet cetus is empty") {
		t.Errorf("Console missing warning: %s", out)
	}
	if !strings.Contains(out, "❌ write failed") {
		t.Errorf("Console missing error: %s", out)
	}
	if GetLogFilePath() != "" {
		t.Errorf("Expected no log file, got %s", GetLogFilePath())
	}
}

func TestLoggerLevels(t *testing.T) {
	logPath, console := initTemp(t, false)

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	for _, marker := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, marker) {
			t.Errorf("Log file missing %s level", marker)
		}
	}

	if strings.Contains(console.String(), "[DEBUG]") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
}

func TestLoggerVerbose(t *testing.T) {
	_, console := initTemp(t, true)

	Debug("Debug message")

	consoleStr := console.String()
	if !strings.Contains(consoleStr, "[DEBUG] Debug message") {
		t.Errorf("Console should show DEBUG when verbose=true, got: %s", consoleStr)
	}
}

func TestLogSkippedRow(t *testing.T) {
	logPath, console := initTemp(t, false)

	LogSkippedRow("SedanX 数据底表", 7, "empty L2 name")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	if !strings.Contains(logStr, "[SKIP_ROW]") {
		t.Error("Log file missing SKIP_ROW marker")
	}
	if !strings.Contains(logStr, "SedanX 数据底表") || !strings.Contains(logStr, "Row: 7") {
		t.Errorf("Log file missing row details: %s", logStr)
	}

	if console.Len() != 0 {
		t.Errorf("Console should stay quiet for skipped rows, got: %s", console.String())
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level.String() = %s, expected %s", result, tt.expected)
		}
	}
}

func TestGetLogFilePath(t *testing.T) {
	logPath, _ := initTemp(t, false)

	if got := GetLogFilePath(); got != logPath {
		t.Errorf("GetLogFilePath() = %s, expected %s", got, logPath)
	}
}

func TestIsVerbose(t *testing.T) {
	initTemp(t, false)
	if IsVerbose() {
		t.Error("IsVerbose() should return false when initialized with verbose=false")
	}

	initTemp(t, true)
	if !IsVerbose() {
		t.Error("IsVerbose() should return true when initialized with verbose=true")
	}
}
