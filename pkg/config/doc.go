// Package config loads typed configuration structs from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// optional .env file is read into the process environment once, then
// env.Parse fills the struct from its `env` tags. Each config type is
// parsed at most once per process and cached, so packages can call Load
// independently without re-reading the environment.
//
// # Usage
//
//	type LoggerConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LoggerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
//
// # Error Handling
//
// Load wraps parse failures with ErrParsingConfig and rejects nil pointers
// with ErrNilPointer; both can be matched with errors.Is.
package config
