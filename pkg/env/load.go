package env

import (
	"errors"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses environment variables into the config struct pointed to by v,
// based on `env` field tags:
//
//	type Config struct {
//		Host string `env:"HOST" envDefault:"localhost"`
//		Port int    `env:"PORT" envDefault:"8080"`
//		Key  string `env:"API_KEY,required"`
//	}
//
//	var cfg Config
//	if err := env.Load(&cfg); err != nil { ... }
//
// A `.env` file in the working directory is applied first when present.
// Every call re-reads the environment; callers that want a single parsed
// config should hold on to the value themselves.
func Load[T any](v *T) error {
	return LoadFrom(v, ".env")
}

// LoadFrom is Load with explicit dotenv paths. Missing files are skipped;
// variables already set in the environment always win over file values.
func LoadFrom[T any](v *T, paths ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	for _, path := range paths {
		_ = godotenv.Load(path) // missing files are not an error
	}

	if err := envparse.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
