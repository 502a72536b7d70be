package db

import (
	"fmt"

	"lom/internal/workshop"
)

// SaveWorkshopMods upserts a batch of workshop metadata records for a game.
// Called after a snapshot merge so offline runs still have display names.
func (d *DB) SaveWorkshopMods(gameID string, infos []workshop.Info) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO workshop_mods (game_id, steam_id, title, creator, time_updated, file_size, last_check)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(game_id, steam_id) DO UPDATE SET
			title = excluded.title,
			creator = excluded.creator,
			time_updated = excluded.time_updated,
			file_size = excluded.file_size,
			last_check = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, info := range infos {
		if info.SteamID == "" {
			continue
		}
		if _, err := stmt.Exec(gameID, info.SteamID, info.Title, info.Creator, info.TimeUpdated, info.FileSize); err != nil {
			return fmt.Errorf("saving workshop mod %s: %w", info.SteamID, err)
		}
	}

	return tx.Commit()
}

// GetWorkshopMods returns all cached workshop metadata for a game, keyed by
// steam id.
func (d *DB) GetWorkshopMods(gameID string) (map[string]workshop.Info, error) {
	rows, err := d.Query(`
		SELECT steam_id, title, creator, time_updated, file_size
		FROM workshop_mods
		WHERE game_id = ?
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying workshop mods: %w", err)
	}
	defer rows.Close()

	infos := make(map[string]workshop.Info)
	for rows.Next() {
		var info workshop.Info
		if err := rows.Scan(&info.SteamID, &info.Title, &info.Creator, &info.TimeUpdated, &info.FileSize); err != nil {
			return nil, fmt.Errorf("scanning workshop mod: %w", err)
		}
		infos[info.SteamID] = info
	}

	return infos, rows.Err()
}
