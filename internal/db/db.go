package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history_entries (
	id TEXT PRIMARY KEY,
	zakat_type TEXT NOT NULL,
	created_at TEXT NOT NULL,
	input TEXT NOT NULL,
	result TEXT NOT NULL,
	currency TEXT NOT NULL
);
`

// Connect opens the embedded database and ensures the schema exists. A brand
// new or empty file simply means no history yet.
func Connect(dbPath string) (*sqlx.DB, error) {
	database, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// The modernc driver is single-writer; a second writer would only queue.
	database.SetMaxOpenConns(1)
	database.SetConnMaxIdleTime(5 * time.Minute)
	if _, err := database.Exec(schema); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
