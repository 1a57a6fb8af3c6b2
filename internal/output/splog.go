// Package output provides console output and file logging for the workflow CLI.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   false,
	}

	if maxSizeStr := os.Getenv("WORKFLOW_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("WORKFLOW_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("WORKFLOW_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// GetLogFilePath returns the path to the log file.
// If WORKFLOW_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.workflow/logs/workflow.log
func GetLogFilePath() string {
	if customPath := os.Getenv("WORKFLOW_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "workflow.log"
	}

	return filepath.Join(homeDir, ".workflow", "logs", "workflow.log")
}

// Splog provides console output plus a rotating log file
type Splog struct {
	logger *slog.Logger
	quiet  bool
}

// NewSplog creates a new Splog writing to stdout and the rotating log file
func NewSplog(debugMode bool) *Splog {
	s := &Splog{}

	console := &simpleHandler{writer: os.Stdout, debugMode: debugMode, quiet: &s.quiet}

	logPath := GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		s.logger = slog.New(console)
		return s
	}

	fileHandler := slog.NewTextHandler(createLumberjackLogger(logPath), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	s.logger = slog.New(&multiHandler{handlers: []slog.Handler{console, fileHandler}})
	return s
}

// SetQuiet suppresses console output (file logging continues)
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logger.Warn("⚠️  " + fmt.Sprintf(format, args...))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logger.Error(fmt.Sprintf(format, args...))
}

// Debug writes a debug message (console only in debug mode, always to file)
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

// Newline writes an empty line to the console
func (s *Splog) Newline() {
	s.logger.Info("")
}

// Page writes a pre-formatted block
func (s *Splog) Page(content string) {
	s.logger.Info(content)
}
