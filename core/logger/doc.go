// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and output encodings (console vs json).
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("catalog hydrated", zap.Int("books", 10))
//
// For HTTP handlers, WithRayID attaches the per-request ray id from the Fiber
// context so every log line of a request can be correlated.
package logger
