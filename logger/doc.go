// Package logger provides structured logging for reqkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logger:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("request")
//	log.Debug("dispatch", logger.Fields(logger.FieldMethod, "GET"))
package logger
