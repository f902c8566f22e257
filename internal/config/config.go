package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Env selects the log format: "development" gets the console writer,
	// anything else logs JSON.
	Env string `env:"ENV" env-default:"development"`

	HTTPServer
	Storage
}

type HTTPServer struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

// Storage selects the record store backend. DatabaseURL is only consulted
// when Driver is "postgres".
type Storage struct {
	Driver      string `env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path        string `env:"STORAGE_PATH" env-default:"person.db"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// MustLoad reads the configuration from the environment and exits on failure.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
