package repository

import (
	"context"
	"database/sql"
)

// DBTX is the part of *sql.DB and *sql.Tx that Queries needs
type DBTX interface {
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

// New creates Queries on top of a database handle
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}
