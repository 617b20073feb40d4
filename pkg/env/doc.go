// Package env loads configuration structs from environment variables, with
// optional .env file support for local development.
//
// Struct fields are mapped with `env` tags and parsed by caarlos0/env;
// defaults and required markers work as documented there:
//
//	type Config struct {
//		RedisURL string `env:"REDIS_URL,required"`
//		Debug    bool   `env:"DEBUG" envDefault:"false"`
//	}
//
// Unlike loaders that cache parsed configs process-wide, Load re-reads the
// environment on every call: configuration is an explicit value owned by
// the caller, not hidden global state.
package env
