package core

import (
	"time"

	"lom/internal/domain"
)

// ComputeFlags recomputes every mod's diagnostic flags. Flags are advisory:
// they warn about likely mistakes (an edit silently shadowed by a
// higher-precedence copy, a mod older than the game's last patch) but never
// change what gets loaded. The previous flag set is discarded wholesale.
//
// gameLastUpdate is the modification time of the game executable; zero
// disables the outdated check.
func ComputeFlags(reg *Registry, gameLastUpdate time.Time) {
	for _, mod := range reg.Mods() {
		var flags domain.Flags

		if !gameLastUpdate.IsZero() {
			newest := mod.NewestTime()
			flags.Outdated = !newest.IsZero() && newest.Before(gameLastUpdate)
		}

		data := mod.Location(domain.TierData)
		secondary := mod.Location(domain.TierSecondary)
		content := mod.Location(domain.TierContent)

		if data != nil && secondary != nil {
			flags.DataOlderThanSecondary = data.ModTime.Before(secondary.ModTime)
		}
		if data != nil && content != nil {
			flags.DataOlderThanContent = data.ModTime.Before(content.ModTime)
		}
		if secondary != nil && content != nil {
			flags.SecondaryOlderThanContent = secondary.ModTime.Before(content.ModTime)
		}

		mod.Flags = flags
	}
}
