// Package logging provides structured logging with per-module log level configuration.
//
// Logs go to stdout (text or JSON), to the systemd journal when journald is
// reachable, and to an in-memory ring buffer served by the HTTP API.
//
// Initialize once at startup, and again whenever the configured levels change:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",
//		Format: "text",
//		Modules: map[string]string{
//			"lights": "debug",
//			"api":    "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("lights")
//	logger.Warn("Failed to write LED attribute", "led", "red", "error", err)
//
// Module loggers are cached and hold a [slog.LevelVar], so a later Initialize
// changes their level in place.
//
// Journal entries carry SYSLOG_IDENTIFIER=tulipd and one upper-cased field
// per attribute:
//
//	journalctl -t tulipd MODULE=lights
//	journalctl -t tulipd LED=red -p warning
package logging
