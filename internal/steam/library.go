package steam

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Install describes where one Steam game lives on disk.
type Install struct {
	AppID      int
	Name       string
	InstallDir string // <library>/steamapps/common/<installdir>
	ContentDir string // <library>/steamapps/workshop/content/<appid>; may not exist
}

// DefaultRoot returns the conventional Steam root for the current user, or ""
// if the home directory cannot be determined.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steam", "steam")
}

// LibraryPaths reads <root>/steamapps/libraryfolders.vdf and returns every
// configured library path, including the root itself.
func LibraryPaths(root string) ([]string, error) {
	f, err := os.Open(filepath.Join(root, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		return nil, fmt.Errorf("opening libraryfolders.vdf: %w", err)
	}
	defer f.Close()

	parsed, err := ParseVDF(f)
	if err != nil {
		return nil, err
	}

	lf := parsed.Child("libraryfolders")
	if lf == nil {
		return []string{root}, nil
	}
	paths := []string{root}
	for i := 0; ; i++ {
		entry := lf.Child(strconv.Itoa(i))
		if entry == nil {
			break
		}
		if p := entry.String("path"); p != "" && p != root {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// FindInstall locates a game by Steam app id across all libraries under root.
// Returns nil (no error) when the game is simply not installed.
func FindInstall(root string, appID int) (*Install, error) {
	libraries, err := LibraryPaths(root)
	if err != nil {
		return nil, err
	}

	manifest := fmt.Sprintf("appmanifest_%d.acf", appID)
	for _, lib := range libraries {
		steamapps := filepath.Join(lib, "steamapps")
		data, err := os.ReadFile(filepath.Join(steamapps, manifest))
		if err != nil {
			continue
		}

		parsed, err := ParseVDF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", manifest, err)
		}
		state := parsed.Child("AppState")
		if state == nil {
			return nil, fmt.Errorf("%s: missing AppState", manifest)
		}
		installDir := state.String("installdir")
		if installDir == "" {
			continue
		}

		return &Install{
			AppID:      appID,
			Name:       state.String("name"),
			InstallDir: filepath.Join(steamapps, "common", installDir),
			ContentDir: filepath.Join(steamapps, "workshop", "content", strconv.Itoa(appID)),
		}, nil
	}
	return nil, nil
}
