// Package database provides database connection and migration utilities.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/config"
)

// Connect establishes a connection to the MySQL database using the provided
// configuration. The connection pool is initialized once at startup and
// injected into the layers that need it; encrypted transport is always
// requested via the driver's tls option.
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// BuildDSN assembles the driver connection string. A configured DSN is used
// as-is apart from the enforced options; otherwise the string is composed
// from the individual fields.
func BuildDSN(cfg config.DatabaseConfig) string {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	}

	tlsMode := cfg.TLSMode
	if tlsMode == "" {
		tlsMode = "true"
	}

	dsn = withOption(dsn, "parseTime", "true")
	dsn = withOption(dsn, "tls", tlsMode)
	return dsn
}

// withOption appends a DSN parameter unless the caller already set it.
func withOption(dsn, key, value string) string {
	sep := "?"
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		if hasOption(dsn[i+1:], key) {
			return dsn
		}
		sep = "&"
	}
	return dsn + sep + key + "=" + value
}

func hasOption(params, key string) bool {
	for _, p := range strings.Split(params, "&") {
		if strings.HasPrefix(p, key+"=") {
			return true
		}
	}
	return false
}
