package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/nyfont/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	// file is the rotating log file, empty when logging to a plain writer
	file string
)

// Config holds logger configuration
type Config struct {
	// Debug lowers the level to debug and mirrors output to stderr
	Debug bool
	// ConfigDir is the directory that receives the logs/ subdirectory
	ConfigDir string
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	// Logs go under <ConfigDir>/logs, next to a file-backed settings store
	logDir := filepath.Join(cfg.ConfigDir, constants.LogDirName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(logDir, constants.LogFileName)

	// Create rotating file handler
	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	// Migrations and saves only surface warnings unless --debug is set
	level := log.WarnLevel
	var writer io.Writer = rotating
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, rotating)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	file = path

	return nil
}

// InitWriter points the global logger at w instead of the rotating file
func InitWriter(w io.Writer, level log.Level) {
	Logger = log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: constants.AppName,
	})
	file = ""
}

// File returns the active log file, or "" when logging is not file-backed
func File() string {
	return file
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
