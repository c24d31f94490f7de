package database

import "time"

// Config holds the connection string and pool sizing. The URL comes from the
// DATABASE_URL environment variable; pool settings come from warden.yaml.
type Config struct {
	// URL is a postgres connection string, either URL or keyword form.
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}
