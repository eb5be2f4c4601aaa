// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output
//
// Only the server, HTTP and registry layers log; the OPN packages never do.
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.WithRequest(reqID).Warn("tool failed", zap.String("kind", "domain"))
package logging
