package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration. It is parsed under the DB_ prefix,
// so Path is read from DB_PATH, Host from DB_HOST, and so on.
type Config struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`

	// SQLite
	Path string `env:"PATH" envDefault:"expenses.db"`

	// PostgreSQL
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"spendwise"`
	Password string `env:"PASSWORD" envDefault:"spendwise"`
	Name     string `env:"NAME" envDefault:"spendwise"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// SQLiteDSN returns the go-sqlite3 connection string with foreign keys
// enforced and a busy timeout so concurrent writers wait instead of failing.
func (c Config) SQLiteDSN() string {
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// PostgresDSN returns the PostgreSQL keyword/value connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// PostgresURL returns the PostgreSQL URL form used by golang-migrate.
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
