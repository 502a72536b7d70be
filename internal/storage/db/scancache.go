package db

import "fmt"

// CachedPack is one pack copy from the last completed scan. Tier and pack
// type travel as their string/int codecs so this package stays free of the
// core types that consume it.
type CachedPack struct {
	Tier     int
	Path     string
	ModTime  int64 // unix seconds
	PackType string
	SteamID  string
}

// SaveScanCache replaces a game's cached scan with the given rows.
func (d *DB) SaveScanCache(gameID string, packs []CachedPack) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM scan_cache WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("clearing scan cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_cache (game_id, tier, path, mod_time, pack_type, steam_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range packs {
		if _, err := stmt.Exec(gameID, p.Tier, p.Path, p.ModTime, p.PackType, p.SteamID); err != nil {
			return fmt.Errorf("caching %s: %w", p.Path, err)
		}
	}

	return tx.Commit()
}

// GetScanCache returns a game's cached scan in tier precedence order.
func (d *DB) GetScanCache(gameID string) ([]CachedPack, error) {
	rows, err := d.Query(`
		SELECT tier, path, mod_time, pack_type, steam_id
		FROM scan_cache
		WHERE game_id = ?
		ORDER BY tier, path
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying scan cache: %w", err)
	}
	defer rows.Close()

	var packs []CachedPack
	for rows.Next() {
		var p CachedPack
		if err := rows.Scan(&p.Tier, &p.Path, &p.ModTime, &p.PackType, &p.SteamID); err != nil {
			return nil, fmt.Errorf("scanning cached pack: %w", err)
		}
		packs = append(packs, p)
	}

	return packs, rows.Err()
}
