// config.go
//
// Wedding invitation site data service: RSVPs, guest messages and background music
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of wedding-site.
// wedding-site is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// wedding-site is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with wedding-site.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Env         string        `env:"APP_ENV" env-default:"development"`
	Port        string        `env:"PORT" env-default:"5000"`
	LogLevel    string        `env:"LOG_LEVEL" env-default:"info"`
	PublicDir   string        `env:"PUBLIC_DIR" env-default:"public"`
	ClientDir   string        `env:"CLIENT_DIR" env-default:"dist/public"`
	CORSOrigins string        `env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
	SessionTTL  time.Duration `env:"SESSION_TTL" env-default:"24h"`

	// Database configuration
	DBType            string `env:"DB_TYPE" env-default:"sqlite"` // sqlite, sqlite3, mysql, postgres, sqlserver
	DBHost            string `env:"DB_HOST"`
	DBPort            string `env:"DB_PORT"`
	DBDatabase        string `env:"DB_DATABASE" env-default:"wedding.db"`
	DBUser            string `env:"DB_USER"`
	DBPassword        string `env:"DB_PASSWORD"`
	DBConnectionLimit int    `env:"DB_CONNECTION_LIMIT" env-default:"5"`
	DBLogLevel        string `env:"DB_LOG_LEVEL" env-default:"warn"`

	// Admin account seeded at startup
	AdminUsername string `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load loads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and supported values
func (c *Config) Validate() error {
	switch c.DBType {
	case "sqlite", "sqlite3":
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required for %s", c.DBType)
		}
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required")
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.DBType)
	}

	if c.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// AllowedOrigins returns the trimmed, non-empty CORS origins
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
