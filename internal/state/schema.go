package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			invert_motion_x INTEGER NOT NULL DEFAULT 0,
			invert_motion_y INTEGER NOT NULL DEFAULT 0,
			invert_scroll_x INTEGER NOT NULL DEFAULT 0,
			invert_scroll_y INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);

		-- One row per slot, empty slots included, so unbound actions survive
		CREATE TABLE IF NOT EXISTS profile_bindings (
			profile TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
			action TEXT NOT NULL,
			slot INTEGER NOT NULL CHECK (slot >= 0 AND slot < 3),
			button TEXT,
			PRIMARY KEY (profile, action, slot)
		);

		CREATE INDEX IF NOT EXISTS idx_profiles_updated_at ON profiles(updated_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
