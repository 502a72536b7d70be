package domain

// UnassignedCategory is the implicit bucket every uncategorized mod falls
// into. It always exists and is always ordered last.
const UnassignedCategory = "Unassigned"

// Category is a named, ordered bucket of mod ids. The order of Mods within a
// category is the resolver's tie-break order in automatic mode.
type Category struct {
	Name      string   `yaml:"name"`
	Mods      []string `yaml:"mods"`
	Collapsed bool     `yaml:"collapsed,omitempty"` // UI hint, ignored by the resolver
}
