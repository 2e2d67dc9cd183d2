// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, per-logger level configuration and
// component-scoped loggers carrying structured fields. The stream package's
// Trace stage logs through it at debug level.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "streamdemo").WithComponent("scenarios")
//	log.Info("result", logger.Fields("scenario", "even-sum", "value", 70))
package logger
