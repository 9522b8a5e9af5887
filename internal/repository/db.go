package repository

import (
	"database/sql"
)

// SQLExecutor is the subset of *sql.DB the repositories use. Each call
// acquires a pooled connection and releases it before returning; no
// connection is held across a payment authorization wait.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Ensure sql.DB implements SQLExecutor
var _ SQLExecutor = (*sql.DB)(nil)
