package core

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database is a sqlite-backed Store.
type Database struct {
	dbFile string
	conn   *sql.DB
}

func NewDatabase(dbFile string) *Database {
	if dbFile == "" {
		dbFile = "chat_client.db"
	}
	return &Database{dbFile: dbFile}
}

func (db *Database) Connect() error {
	conn, err := sql.Open("sqlite3", db.dbFile)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	db.conn = conn

	if err := db.initDatabase(); err != nil {
		conn.Close()
		return err
	}

	if err := db.checkAndUpdateSchema(); err != nil {
		conn.Close()
		return err
	}

	return nil
}

func (db *Database) initDatabase() error {
	query := `
    CREATE TABLE IF NOT EXISTS storage (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	_, err := db.conn.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// checkAndUpdateSchema adds columns missing from files created by older versions.
func (db *Database) checkAndUpdateSchema() error {
	rows, err := db.conn.Query("PRAGMA table_info(storage)")
	if err != nil {
		return fmt.Errorf("failed to fetch table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}

	if !columns["updated_at"] {
		_, err := db.conn.Exec(`
        ALTER TABLE storage
        ADD COLUMN updated_at TEXT
        `)
		if err != nil {
			return fmt.Errorf("failed to add updated_at column: %w", err)
		}
	}

	return nil
}

func (db *Database) SetItem(key, value string) error {
	query := `
    INSERT INTO storage (key, value, updated_at) VALUES (?, ?, datetime('now'))
    ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := db.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to save item %q: %w", key, err)
	}
	return nil
}

func (db *Database) GetItem(key string) (string, error) {
	var value string
	err := db.conn.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read item %q: %w", key, err)
	}
	return value, nil
}

func (db *Database) RemoveItem(key string) error {
	if _, err := db.conn.Exec("DELETE FROM storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove item %q: %w", key, err)
	}
	return nil
}

func (db *Database) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}
