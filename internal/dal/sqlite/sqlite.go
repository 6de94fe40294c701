package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/spf13/viper"
)

// Client wraps the embedded per-profile store. All durable state (cart,
// current order, outbox) lives in one sqlite file.
type Client struct {
	db *sql.DB
}

// DB returns the underlying database handle.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the database for graceful shutdown.
func (c *Client) Close() error {
	return c.db.Close()
}

// MustNewClient opens the store and runs migrations.
func MustNewClient() *Client {
	path := viper.GetString("sqlite.path")
	if path == "" {
		path = "./data/ordering.db"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		panic(err)
	}

	if err := goose.Up(db, viper.GetString("sqlite.migrations_path")); err != nil {
		panic(err)
	}

	return &Client{
		db: db,
	}
}
