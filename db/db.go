package db

import "context"

// DBType selects the storage backend, read from the DB_TYPE environment
// variable at startup.
type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the connection lifecycle both backends implement. Connect must verify
// the server is actually reachable, not just build a client.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
