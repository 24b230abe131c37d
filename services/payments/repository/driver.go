package repository

import (
	"github.com/jmoiron/sqlx"
)

// PostgresRepo implements the payments repository interfaces over PostgreSQL
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo creates a new payments repository
func NewPostgresRepo(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}
