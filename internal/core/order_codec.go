package core

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"lom/internal/domain"
)

// Native load-order strings are versioned so a future format bump fails
// loudly instead of misparsing: "lom1:" + unpadded base64 of a
// zstd-compressed JSON array of ShareableMod records in rank order.
const (
	orderStringVersion = "lom1"
	orderStringSep     = ":"
)

var orderEncoding = base64.StdEncoding.WithPadding(base64.NoPadding)

// EncodeOrder serializes resolved entries into a portable string. The hash of
// each pack file is included on a best-effort basis so the receiving side can
// verify it has the same content, not just the same name.
func EncodeOrder(reg *Registry, entries []Entry) (string, error) {
	shared := make([]domain.ShareableMod, 0, len(entries))
	for _, e := range entries {
		mod, ok := reg.Get(e.ID)
		if !ok {
			continue
		}
		shared = append(shared, domain.ShareableMod{
			ID:      mod.ID,
			Name:    mod.Name,
			SteamID: mod.SteamID,
			Hash:    hashFile(e.Path),
			Enabled: mod.Enabled,
		})
	}

	raw, err := json.Marshal(shared)
	if err != nil {
		return "", fmt.Errorf("marshaling order: %w", err)
	}

	compressed, err := zstdCompress(raw)
	if err != nil {
		return "", fmt.Errorf("compressing order: %w", err)
	}

	return orderStringVersion + orderStringSep + orderEncoding.EncodeToString(compressed), nil
}

// DecodeOrder parses a native load-order string back into its shareable
// records, in rank order. Unknown versions are rejected.
func DecodeOrder(s string) ([]domain.ShareableMod, error) {
	s = strings.TrimSpace(s)
	version, payload, found := strings.Cut(s, orderStringSep)
	if !found {
		return nil, fmt.Errorf("%w: missing version tag", domain.ErrUnknownOrderVersion)
	}
	if version != orderStringVersion {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOrderVersion, version)
	}

	compressed, err := orderEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding order string: %w", err)
	}

	raw, err := zstdDecompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing order string: %w", err)
	}

	var shared []domain.ShareableMod
	if err := json.Unmarshal(raw, &shared); err != nil {
		return nil, fmt.Errorf("parsing order string: %w", err)
	}
	return shared, nil
}

// modlistLineRE matches the `mod "whatever.pack";` lines other managers and
// the engine's own user script use.
var modlistLineRE = regexp.MustCompile(`mod\s+"([^"]+)"`)

// ImportModlist parses a foreign newline-delimited modlist. Each line is
// either a `mod "x.pack";` directive or a bare pack name; anything else is
// ignored. All imported entries are marked enabled, matching what a modlist
// expresses.
func ImportModlist(s string) []domain.ShareableMod {
	var shared []domain.ShareableMod
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var id string
		if m := modlistLineRE.FindStringSubmatch(line); m != nil {
			id = m[1]
		} else if strings.HasSuffix(line, ".pack") {
			id = line
		} else {
			continue
		}
		shared = append(shared, domain.ShareableMod{ID: id, Enabled: true})
	}
	return shared
}

// MatchResult is the outcome of applying shared records to a registry.
type MatchResult struct {
	Order   []string // matched mod ids, in the shared rank order
	Enabled []string // matched ids that the shared records mark enabled
	Skipped []string // shared ids with no counterpart in the registry
}

// MatchShared maps shareable records onto the local registry: exact id first,
// then case-insensitive display name, then path suffix. Unmatched records are
// reported, never fatal; the sender may simply have mods we don't.
func MatchShared(reg *Registry, shared []domain.ShareableMod) MatchResult {
	var result MatchResult
	taken := make(map[string]bool)

	for _, sm := range shared {
		id := matchOne(reg, sm, taken)
		if id == "" {
			result.Skipped = append(result.Skipped, sm.ID)
			continue
		}
		taken[id] = true
		result.Order = append(result.Order, id)
		if sm.Enabled {
			result.Enabled = append(result.Enabled, id)
		}
	}
	return result
}

func matchOne(reg *Registry, sm domain.ShareableMod, taken map[string]bool) string {
	if _, ok := reg.Get(sm.ID); ok && !taken[sm.ID] {
		return sm.ID
	}

	wantName := normalizeName(sm.Name)
	for _, mod := range reg.Mods() {
		if taken[mod.ID] {
			continue
		}
		if wantName != "" && normalizeName(mod.Name) == wantName {
			return mod.ID
		}
		if sm.ID != "" && strings.HasSuffix(mod.ResolvedPath(), "/"+sm.ID) {
			return mod.ID
		}
	}
	return ""
}

// normalizeName strips version suffixes and separators so "Cool Mod v1.2"
// and "cool_mod" compare equal.
var versionSuffixRE = regexp.MustCompile(`[-_ ]?v?\d+(\.\d+)*$`)

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, ".pack")
	name = versionSuffixRE.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")
	return name
}

// hashFile returns the hex sha256 of a file, or "" when it cannot be read.
// A missing hash only weakens cross-instance verification, it never blocks
// an export.
func hashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
