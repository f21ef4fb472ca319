package config

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v6"
)

// Environment wins over flags. ADMIN_USER, ADMIN_PASS_HASH and SECRET
// have no flag fallback: they are secrets and must come from the
// environment, and the process refuses to start without them.
type ServerConfig struct {
	RunAddress          string `env:"RUN_ADDRESS"`
	DatabaseDSN         string `env:"DATABASE_URI"`
	AdminUser           string `env:"ADMIN_USER"`
	AdminPassHash       string `env:"ADMIN_PASS_HASH"`
	Secret              string `env:"SECRET"`
	AuthCookieExpiresIn int    `env:"AUTH_COOKIE_EXPIRES_IN" envDefault:"3600"`
}

var ErrAdminNotConfigured = errors.New("ADMIN_USER, ADMIN_PASS_HASH and SECRET must be set")

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:3000", "Base address to listen on")
	flag.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/milan?sslmode=disable", "Database DSN")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}

	if params.AdminUser == "" || params.AdminPassHash == "" || params.Secret == "" {
		return nil, ErrAdminNotConfigured
	}

	return &params, nil
}
