package domain

// Reserved pack names injected by external tools. The engine expects them to
// load after every user pack, so the resolver pins them last and the scanner
// never treats them as user mods.
const (
	ReservedPackName    = "zzzzzzzzzzzzzzzzzzzzrun_you_fool_thron.pack"
	ReservedPackNameAlt = "!!!!!!!!!!!!!!!!!!!!!run_you_fool_thron.pack"
)

// Game holds the engine facts for one supported game. These are constants of
// the target engine family, not user configuration.
type Game struct {
	ID         string // unique slug, e.g. "warhammer_3"
	Name       string // display name
	SteamAppID int
	Executable string // main binary name, relative to the install dir
	DataDir    string // pack folder relative to the install dir

	// Engine generation gates. Loading packs from the workshop content folder
	// and from a secondary folder only works on newer engine revisions.
	SupportsContent   bool
	SupportsSecondary bool
}

// IsReservedPack reports whether a pack file name is one of the engine-pinned
// marker packs.
func IsReservedPack(name string) bool {
	return name == ReservedPackName || name == ReservedPackNameAlt
}

// SupportedGames lists every game this launcher knows how to drive, in menu
// order.
var SupportedGames = []Game{
	{ID: "warhammer_3", Name: "Total War: Warhammer 3", SteamAppID: 1142710, Executable: "Warhammer3.exe", DataDir: "data", SupportsContent: true, SupportsSecondary: true},
	{ID: "warhammer_2", Name: "Total War: Warhammer 2", SteamAppID: 594570, Executable: "Warhammer2.exe", DataDir: "data", SupportsContent: true, SupportsSecondary: true},
	{ID: "three_kingdoms", Name: "Total War: Three Kingdoms", SteamAppID: 779340, Executable: "Three_Kingdoms.exe", DataDir: "data", SupportsContent: true, SupportsSecondary: true},
	{ID: "troy", Name: "Total War Saga: Troy", SteamAppID: 1099410, Executable: "Troy.exe", DataDir: "data", SupportsContent: true, SupportsSecondary: true},
	{ID: "attila", Name: "Total War: Attila", SteamAppID: 325610, Executable: "Attila.exe", DataDir: "data", SupportsContent: true, SupportsSecondary: true},
	{ID: "shogun_2", Name: "Total War: Shogun 2", SteamAppID: 34330, Executable: "shogun2.exe", DataDir: "data", SupportsContent: false, SupportsSecondary: true},
	{ID: "empire", Name: "Total War: Empire", SteamAppID: 10500, Executable: "Empire.exe", DataDir: "data", SupportsContent: false, SupportsSecondary: false},
}

// GameByID looks up a supported game. Returns ErrGameNotFound for unknown ids.
func GameByID(id string) (*Game, error) {
	for i := range SupportedGames {
		if SupportedGames[i].ID == id {
			return &SupportedGames[i], nil
		}
	}
	return nil, ErrGameNotFound
}
