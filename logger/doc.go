// Package logger provides structured logging for the search client,
// built on zerolog.
//
// The client logs request dispatch and completion at debug level; callers
// that want those logs pass a configured *Logger to the client, everyone
// else gets a no-op logger by default.
//
//	log := logger.New(logger.Config{Level: "debug", Format: "json"})
//	c, err := client.New(cfg, client.WithLogger(log))
package logger
