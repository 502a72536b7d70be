package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"lom/internal/domain"
)

// Manifest is the launch artifact an external process launcher consumes: the
// engine's user-script lines, in load order. WorkingDirs precede PackLines in
// the final script because the engine must know every search folder before
// the first mod directive.
type Manifest struct {
	WorkingDirs []string // add_working_directory directives
	PackLines   []string // mod directives, one per entry, in rank order
}

// Script renders the manifest as the text the engine reads.
func (m Manifest) Script() string {
	var b strings.Builder
	for _, line := range m.WorkingDirs {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i, line := range m.PackLines {
		b.WriteString(line)
		if i < len(m.PackLines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// BuildManifest turns resolved entries into launch directives. Packs loaded
// from outside the data folder need their directory registered: the secondary
// folder once (first, so its masks resolve), content folders once per mod.
// Older engines only accept packs from data, so non-data entries on such
// games contribute no working directory and the engine will pick up the data
// copy or nothing.
func BuildManifest(entries []Entry, game *domain.Game, secondaryDir string) Manifest {
	var m Manifest
	addedSecondary := false
	addedContent := make(map[string]bool)

	for _, e := range entries {
		packName := filepath.Base(e.Path)
		m.PackLines = append(m.PackLines, fmt.Sprintf("mod %q;", packName))

		if e.Tier == domain.TierData || !game.SupportsContent {
			continue
		}

		dir := filepath.Dir(e.Path)
		switch {
		case secondaryDir != "" && dir == secondaryDir:
			if !addedSecondary {
				// Prepended so the secondary folder is searched before any
				// content folder.
				m.WorkingDirs = append([]string{fmt.Sprintf("add_working_directory %q;", dir)}, m.WorkingDirs...)
				addedSecondary = true
			}
		default:
			if !addedContent[dir] {
				m.WorkingDirs = append(m.WorkingDirs, fmt.Sprintf("add_working_directory %q;", dir))
				addedContent[dir] = true
			}
		}
	}

	return m
}
