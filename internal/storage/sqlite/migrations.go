package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// List columns (cuisines, rest_types, dishes, top_picks) hold comma-joined values.
const schema = `
CREATE TABLE IF NOT EXISTS locations (
    name TEXT PRIMARY KEY,
    lat REAL NOT NULL,
    lng REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS restaurants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    cuisines TEXT NOT NULL DEFAULT '',
    rest_types TEXT NOT NULL DEFAULT '',
    dishes TEXT NOT NULL DEFAULT '',
    cost REAL NOT NULL DEFAULT 0,
    rating REAL NOT NULL DEFAULT 0,
    location TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS session_archive (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    closed_at INTEGER NOT NULL,
    member_count INTEGER NOT NULL,
    ready_count INTEGER NOT NULL,
    reason TEXT NOT NULL,
    top_picks TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_restaurants_name ON restaurants(name);
CREATE INDEX IF NOT EXISTS idx_session_archive_id ON session_archive(id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
