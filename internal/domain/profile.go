package domain

// Profile is a named snapshot of the inputs that produce a load order:
// category state, manual order when manual mode is active, and the enabled
// set. The resolved order itself is never persisted.
type Profile struct {
	Name        string
	GameID      string
	Automatic   bool       // load order derived from categories vs. hand-ordered
	Categories  []Category // category tree snapshot, Unassigned last
	ManualOrder []string   // explicit mod id sequence, meaningful when !Automatic
	Enabled     []string   // ids of enabled mods
}
