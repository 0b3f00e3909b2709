// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects Zap's development preset (ISO8601 timestamps, caller info);
// every other level uses the production preset. The encoding is json by default
// and console when configured for local use.
//
// # Request correlation
//
// WithRayID reads the ray id stored by the rayid middleware and attaches it to
// the returned logger so every line written for a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("Rejected color", zap.String("hex", hex))
package logger
