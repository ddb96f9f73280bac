package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const SQLiteDriver = "sqlite3"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type SQLiteDB struct {
	*sqlx.DB
}

// NewSQLiteDB opens the database file at path, creating its directory.
//
// The pool is limited to one connection: SQLite allows a single writer, and
// an in-memory database only lives as long as its connection.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(SQLiteDriver, path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteDB{DB: db}, nil
}

// SQLiteQuerier is satisfied by both *sqlx.DB and *sqlx.Tx.
type SQLiteQuerier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
