// Package logging provides structured logging for orderchat.
//
// This package wraps a zap logger with convenience functions for the few
// events worth recording: profile submissions, chat transitions and screen
// mode changes. Logging is silent unless a level is configured, so the
// terminal UI is never interleaved with log output.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Field edits and ignored chat events
//   - Info: Submissions, transitions and mode changes
//   - Warn: Rejected submissions and unavailable actions
//   - Error: Startup failures
//
// # Structured Logging
//
// All log functions use structured fields. Every session-scoped entry carries
// the session id:
//
//	logging.LogSubmission(sessionID, "ORD-4821", nil)
//	logging.LogTransition(sessionID, "absent", "show_details", "details")
//	logging.LogModeChange(sessionID, "form", "chat")
//
// # Configuration
//
// Initialize logging at startup. The level comes from the argument, then the
// ORDERCHAT_LOG_LEVEL environment variable. Output goes to stdout unless a
// file is given; the interactive UI always passes a file.
//
//	if err := logging.Initialize("", "/tmp/orderchat.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
