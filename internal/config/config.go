// config.go
//
// A workout routine and exercise library data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of routinesdb.
// routinesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// routinesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with routinesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string   `env:"PORT" envDefault:"5555"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Database configuration
	DBType            string `env:"DB_TYPE" envDefault:"sqlite"` // mysql, mariadb, postgres, sqlite, sqlite-purego, sqlserver
	DBHost            string `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string `env:"DB_PORT" envDefault:"3306"`
	DBDatabase        string `env:"DB_DATABASE" envDefault:"workout_tracker.db"`
	DBUser            string `env:"DB_USER"`
	DBPassword        string `env:"DB_PASSWORD"`
	DBConnectionLimit int    `env:"DB_CONNECTION_LIMIT" envDefault:"5"`
	DBLogLevel        string `env:"DB_LOG_LEVEL" envDefault:"warn"` // silent, error, warn, info

	// Session configuration
	SessionCookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"workout_session"`
	SessionLifetime     time.Duration `env:"SESSION_LIFETIME" envDefault:"720h"`
	SessionCookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	SessionGCInterval   time.Duration `env:"SESSION_GC_INTERVAL" envDefault:"10m"` // 0 disables expired session cleanup

	// Credential store
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

var supportedDBTypes = []string{"mysql", "mariadb", "postgres", "postgresql", "sqlite", "sqlite-purego", "sqlserver", "mssql"}

// Load loads configuration from environment variables, after merging in
// the optional .env file named by ENV_FILE (default ".env").
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	} else {
		log.Printf("Loaded environment from %s", envFile)
	}

	return parse(env.Options{})
}

// LoadFrom builds a configuration from the given variables only.
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	cfg.DBType = strings.ToLower(strings.TrimSpace(cfg.DBType))

	supported := false
	for _, t := range supportedDBTypes {
		if cfg.DBType == t {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBConnectionLimit < 1 {
		return fmt.Errorf("DB_CONNECTION_LIMIT must be at least 1")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.SessionLifetime <= 0 {
		return fmt.Errorf("SESSION_LIFETIME must be positive")
	}
	if cfg.SessionGCInterval < 0 {
		return fmt.Errorf("SESSION_GC_INTERVAL cannot be negative")
	}
	if cfg.SessionCookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if len(cfg.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS requires at least one origin")
	}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must name origins explicitly for credentialed requests")
		}
	}

	return nil
}

// IsSQLite reports whether the configured database is one of the SQLite drivers
func (cfg *Config) IsSQLite() bool {
	return cfg.DBType == "sqlite" || cfg.DBType == "sqlite-purego"
}
