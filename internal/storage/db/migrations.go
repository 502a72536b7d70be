package db

import "fmt"

func (d *DB) migrate() error {
	// Create migrations table if it doesn't exist
	if _, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	// Get current version
	var version int
	err := d.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return fmt.Errorf("getting schema version: %w", err)
	}

	migrations := []func(*DB) error{
		migrateV1,
		migrateV2,
	}

	for i := version; i < len(migrations); i++ {
		if err := migrations[i](d); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := d.Exec("INSERT INTO schema_migrations (version) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
	}

	return nil
}

func migrateV1(d *DB) error {
	statements := []string{
		`CREATE TABLE workshop_mods (
			game_id TEXT NOT NULL,
			steam_id TEXT NOT NULL,
			title TEXT NOT NULL,
			creator TEXT,
			time_updated INTEGER DEFAULT 0,
			file_size INTEGER DEFAULT 0,
			last_check DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY(game_id, steam_id)
		)`,
		`CREATE INDEX idx_workshop_mods_game ON workshop_mods(game_id)`,
	}

	for _, stmt := range statements {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	return nil
}

func migrateV2(d *DB) error {
	// One row per discovered pack copy; replaced wholesale after each scan so
	// the last known registry can be rebuilt without touching the filesystem.
	statements := []string{
		`CREATE TABLE scan_cache (
			game_id TEXT NOT NULL,
			tier INTEGER NOT NULL,
			path TEXT NOT NULL,
			mod_time INTEGER NOT NULL,
			pack_type TEXT NOT NULL,
			steam_id TEXT DEFAULT '',
			PRIMARY KEY(game_id, tier, path)
		)`,
		`CREATE INDEX idx_scan_cache_game ON scan_cache(game_id)`,
	}

	for _, stmt := range statements {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	return nil
}
