// Package config reads the server configuration from the environment.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config holds the runtime configuration of the blog service.
type Config struct {
	Addr   string `env:"BLOG_ADDR" env-default:":8080"`
	DBPath string `env:"BLOG_DB_PATH" env-default:"data/badger"`
}

// Load reads the configuration from the environment, falling back to the
// defaults for anything unset.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
