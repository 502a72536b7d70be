// Package workshop consumes flat snapshots of remote mod metadata. The
// snapshot is produced by an external collaborator (a workshop query tool);
// this package only parses and caches it, it never talks to the network.
package workshop

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Info is the known remote metadata for one workshop item.
type Info struct {
	SteamID     string `json:"steam_id"`
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	TimeUpdated int64  `json:"time_updated"` // unix seconds
	FileSize    int64  `json:"file_size"`
}

// ParseSnapshot decodes a snapshot: a JSON array of Info records.
func ParseSnapshot(r io.Reader) ([]Info, error) {
	var infos []Info
	dec := json.NewDecoder(r)
	if err := dec.Decode(&infos); err != nil {
		return nil, fmt.Errorf("parsing workshop snapshot: %w", err)
	}
	return infos, nil
}

// LoadSnapshot reads a snapshot file from disk.
func LoadSnapshot(path string) ([]Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workshop snapshot: %w", err)
	}
	defer f.Close()
	return ParseSnapshot(f)
}
