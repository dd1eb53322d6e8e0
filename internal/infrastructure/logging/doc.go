// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The namespace engine takes a plain *zap.Logger; pass Logger.Logger or
// Logger.Named(...).Logger.
//
// Example Usage:
//
//	logger, err := logging.FromSettings("info", false)
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Failed to persist namespace", zap.Error(err))
package logging
