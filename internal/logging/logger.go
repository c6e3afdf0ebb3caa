package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ORDERCHAT_LOG_LEVEL"

// ParseLevel maps a level name to a zap level.
// Unknown names map to info, matching the behaviour of an explicitly set but
// misspelled level.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks ORDERCHAT_LOG_LEVEL. If neither is set,
// logging is disabled (silent mode). An empty path means stdout. Missing
// parent directories of a file path are created.
func Initialize(level string, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = "stdout"
	}
	if path != "stdout" && path != "stderr" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks into the UI
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSubmission logs the outcome of a profile submit.
// missing is empty on success.
func LogSubmission(sessionID string, orderID string, missing []string) {
	if len(missing) > 0 {
		Warn("Profile submission rejected",
			zap.String("session_id", sessionID),
			zap.Strings("missing_fields", missing),
		)
		return
	}
	Info("Order created",
		zap.String("session_id", sessionID),
		zap.String("order_id", orderID),
	)
}

// LogFieldUpdate logs a form edit. The value itself is not recorded.
func LogFieldUpdate(sessionID string, field string, length int) {
	Debug("Profile field updated",
		zap.String("session_id", sessionID),
		zap.String("field", field),
		zap.Int("length", length),
	)
}

// LogTransition logs a chat state machine step
func LogTransition(sessionID string, from string, event string, to string) {
	Info("Chat transition",
		zap.String("session_id", sessionID),
		zap.String("from", from),
		zap.String("event", event),
		zap.String("to", to),
	)
}

// LogModeChange logs a switch between the form and chat screens
func LogModeChange(sessionID string, from string, to string) {
	Info("Screen mode changed",
		zap.String("session_id", sessionID),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
