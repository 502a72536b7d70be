package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lom/internal/domain"
)

// Prober classifies a pack file without the registry knowing anything about
// the binary container format. A real implementation wraps a pack parser;
// ProbeByName is the fallback when none is available.
type Prober interface {
	Probe(path string) (domain.PackType, error)
}

// ProbeFunc adapts a function to the Prober interface.
type ProbeFunc func(path string) (domain.PackType, error)

func (f ProbeFunc) Probe(path string) (domain.PackType, error) {
	return f(path)
}

// ProbeByName classifies packs by naming convention alone: reserved marker
// names are reserved, "*_movie.pack" is a movie pack, everything else is a
// normal mod pack.
var ProbeByName = ProbeFunc(func(path string) (domain.PackType, error) {
	name := filepath.Base(path)
	switch {
	case domain.IsReservedPack(name):
		return domain.PackReserved, nil
	case strings.HasSuffix(strings.ToLower(name), "_movie.pack"):
		return domain.PackMovie, nil
	default:
		return domain.PackMod, nil
	}
})

// ScanDataDir scans a flat pack folder (the game's data dir or a secondary
// folder). Unreadable or unclassifiable files are skipped and reported in the
// warnings slice, never failing the scan.
func ScanDataDir(dir string, tier domain.Tier, prober Prober) (TierScan, []string) {
	scan := TierScan{Tier: tier}
	var warnings []string

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("reading %s: %v", dir, err))
		}
		return scan, warnings
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pack") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("stat %s: %v", path, err))
			continue
		}

		packType, err := prober.Probe(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("unrecognized pack %s: %v", path, err))
			continue
		}

		scan.Entries = append(scan.Entries, ScanEntry{
			Path:     path,
			ModTime:  info.ModTime(),
			PackType: packType,
		})
	}

	return scan, warnings
}

// ScanContentDir scans a workshop content folder, where each subdirectory is
// named after the workshop item it holds. The directory name becomes the
// entry's steam id.
func ScanContentDir(dir string, prober Prober) (TierScan, []string) {
	scan := TierScan{Tier: domain.TierContent}
	var warnings []string

	items, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("reading %s: %v", dir, err))
		}
		return scan, warnings
	}

	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		steamID := item.Name()
		itemDir := filepath.Join(dir, steamID)

		files, err := os.ReadDir(itemDir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("reading %s: %v", itemDir, err))
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".pack") {
				continue
			}
			path := filepath.Join(itemDir, f.Name())

			info, err := f.Info()
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("stat %s: %v", path, err))
				continue
			}

			packType, err := prober.Probe(path)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("unrecognized pack %s: %v", path, err))
				continue
			}

			scan.Entries = append(scan.Entries, ScanEntry{
				Path:     path,
				ModTime:  info.ModTime(),
				PackType: packType,
				SteamID:  steamID,
			})
		}
	}

	return scan, warnings
}
