package storage

import (
	"fmt"
	"strings"
)

// ErrEmbeddedCredentials rejects PostgreSQL configs carrying a password.
var ErrEmbeddedCredentials = fmt.Errorf(
	"connection strings with embedded credentials are not allowed; use the OS keyring, PGPASSWORD or .pgpass")

// IsPostgresConfig reports whether a config string selects the PostgreSQL
// backend rather than a file path.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// NewProvider selects a storage backend from the config format: a PostgreSQL
// connection string, a .json file path, or (default) a SQLite file path.
func NewProvider(config string) (Provider, error) {
	switch {
	case IsPostgresConfig(config):
		if HasEmbeddedCredentials(config) {
			return nil, ErrEmbeddedCredentials
		}
		return NewPostgresStore(config), nil
	case strings.HasSuffix(config, ".json"):
		return NewJSONStore(config), nil
	default:
		return NewSQLiteStore(config), nil
	}
}
