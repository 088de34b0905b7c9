// Package logger provides a structured logging facility based on Zap.
//
// # Context Awareness
//
// The WithRayID helper extracts the per-request RayID from a Fiber
// context and attaches it to the log entry, so every log line produced
// while handling one update batch can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
