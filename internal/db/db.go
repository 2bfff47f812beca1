package db

import "database/sql"

// DB wraps the raw connection pool so repositories depend on one
// internal type instead of database/sql directly.
type DB struct {
	*sql.DB
}
