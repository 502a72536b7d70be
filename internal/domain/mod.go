package domain

import "time"

// Tier identifies where a copy of a pack was discovered. Higher tiers win at
// load time: a copy in the game's data folder shadows one in the secondary
// folder, which shadows one in workshop content.
type Tier int

const (
	TierContent Tier = iota // workshop content folder
	TierSecondary
	TierData // game data folder
)

func (t Tier) String() string {
	switch t {
	case TierContent:
		return "content"
	case TierSecondary:
		return "secondary"
	case TierData:
		return "data"
	default:
		return "unknown"
	}
}

// PackType is the declared type of a content package.
type PackType int

const (
	PackMod PackType = iota
	PackMovie
	PackReserved
)

func (p PackType) String() string {
	switch p {
	case PackMod:
		return "mod"
	case PackMovie:
		return "movie"
	case PackReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ParsePackType converts a string to PackType
func ParsePackType(s string) PackType {
	switch s {
	case "movie":
		return PackMovie
	case "reserved":
		return PackReserved
	default:
		return PackMod
	}
}

// Location is one physical copy of a mod's pack file.
type Location struct {
	Tier    Tier
	Path    string
	ModTime time.Time
}

// Flags are the advisory diagnostics attached to a mod. They are recomputed on
// every registry refresh and never persisted.
type Flags struct {
	Outdated                  bool // newest copy predates the game's last update
	DataOlderThanSecondary    bool
	DataOlderThanContent      bool
	SecondaryOlderThanContent bool
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.Outdated || f.DataOlderThanSecondary || f.DataOlderThanContent || f.SecondaryOlderThanContent
}

// Mod is one logical mod. Multiple locations sharing an ID are duplicate
// copies of the same pack across tiers, never separate mods.
type Mod struct {
	ID        string // pack file name, unique within the registry
	Name      string // display name; workshop title when known, else the pack name
	SteamID   string // workshop published-file id, empty for local mods
	Creator   string
	Enabled   bool
	PackType  PackType
	Locations []Location // sorted highest tier first; never empty
	FileSize  int64
	// UpdatedRemote is the workshop item's last update time, zero when the
	// snapshot doesn't know the mod. Lets the user spot a local copy Steam
	// has not synced yet.
	UpdatedRemote time.Time
	Flags         Flags
}

// Location returns the copy at the given tier, or nil.
func (m *Mod) Location(tier Tier) *Location {
	for i := range m.Locations {
		if m.Locations[i].Tier == tier {
			return &m.Locations[i]
		}
	}
	return nil
}

// ResolvedPath is the path of the copy the game will load: data if present,
// else secondary, else content. Locations are kept sorted so this is the head.
func (m *Mod) ResolvedPath() string {
	if len(m.Locations) == 0 {
		return ""
	}
	return m.Locations[0].Path
}

// ResolvedTier is the tier of the copy the game will load.
func (m *Mod) ResolvedTier() Tier {
	if len(m.Locations) == 0 {
		return TierContent
	}
	return m.Locations[0].Tier
}

// NewestTime is the most recent modification time across all copies.
func (m *Mod) NewestTime() time.Time {
	var newest time.Time
	for _, loc := range m.Locations {
		if loc.ModTime.After(newest) {
			newest = loc.ModTime
		}
	}
	return newest
}

// ShareableMod is the portable per-entry record used by the load-order string
// codec so another instance can match mods by id, name or content hash.
type ShareableMod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SteamID string `json:"steam_id,omitempty"`
	Hash    string `json:"hash,omitempty"`
	Enabled bool   `json:"enabled"`
}
