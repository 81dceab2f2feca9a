package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes human-oriented lines to the console and, optionally,
// timestamped lines with their level to a log file
type Logger struct {
	console  *log.Logger
	file     *log.Logger // nil when no log file is configured
	logFile  *os.File
	verbose  bool
	minLevel Level
}

var globalLogger *Logger

// Init initializes the global logger.
// consoleOutput receives INFO and above (DEBUG too when verbose).
// logFilePath is optional; when set, every level is appended to that file.
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	l := &Logger{
		console:  log.New(consoleOutput, "", 0),
		verbose:  verbose,
		minLevel: LevelInfo,
	}
	if verbose {
		l.minLevel = LevelDebug
	}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = logFile
		l.file = log.New(logFile, "", log.LstdFlags)
	}

	Close()
	globalLogger = l
	return nil
}

// Close closes the log file, if any
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
		globalLogger.logFile = nil
		globalLogger.file = nil
	}
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if l.file != nil {
		l.file.Printf("[%s] %s", level.String(), message)
	}

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelDebug:
		l.console.Printf("[DEBUG] %s", message)
	case LevelInfo:
		l.console.Printf("%s", message)
	case LevelWarn:
		l.console.Printf("⚠️  %s", message)
	case LevelError:
		l.console.Printf("❌ %s", message)
	}
}

// LogSkippedRow records a row that produced no entry.
// Details go to the log file; the console only sees them in verbose mode.
func LogSkippedRow(sheet string, row int, reason string) {
	if globalLogger == nil {
		return
	}
	if globalLogger.file != nil {
		globalLogger.file.Printf("[SKIP_ROW] Sheet: %s, Row: %d, Reason: %s", sheet, row, reason)
	}
	if globalLogger.verbose {
		globalLogger.console.Printf("[DEBUG] %s row %d skipped: %s", sheet, row, reason)
	}
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
