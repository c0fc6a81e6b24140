// Package config loads client configuration from YAML files and the
// environment.
//
// Load resolves a config file and an optional .env file, binds
// environment variables, and unmarshals everything into the given
// struct. Settings is the canonical shape for applications embedding
// the search client:
//
//	var s config.Settings
//	if err := config.Load("searchkit", &s); err != nil {
//	    ...
//	}
//	log := logger.New(s.Logging)
//	c, err := client.New(s.Client, client.WithLogger(log))
//
// Environment variables use underscore-separated upper case and override
// file values, e.g. CLIENT_ADDRESSES or LOGGING_LEVEL.
package config
