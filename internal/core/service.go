package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"lom/internal/domain"
	"lom/internal/steam"
	"lom/internal/storage/config"
	"lom/internal/storage/db"
	"lom/internal/workshop"

	"go.uber.org/zap"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir string // Directory for configuration files
	DataDir   string // Directory for database and persistent data
	GameID    string // Game to operate on
	Logger    *zap.Logger
	Prober    Prober // optional pack classifier; ProbeByName when nil
}

// Service is the single owner of the live mod state for one game: registry
// snapshot, category tree, load-order mode. All mutation goes through it; a
// background refresh computes an isolated snapshot and merges via atomic swap.
type Service struct {
	config    *config.Config
	db        *db.DB
	log       *zap.Logger
	game      *domain.Game
	prober    Prober
	configDir string

	mu         sync.Mutex
	generation uint64
	registry   *Registry
	tree       *Tree
	automatic  bool
	manual     []string
	installDir string
	lastUpdate time.Time // game executable mtime, drives the Outdated flag
	warnings   []string

	// Enabled set persisted before the first refresh; consumed by the first
	// rebuild, after which the registry itself is the source of truth.
	pendingEnabled []string
}

// NewService creates a new core service instance for one game.
func NewService(cfg ServiceConfig) (*Service, error) {
	game, err := domain.GameByID(cfg.GameID)
	if err != nil {
		return nil, fmt.Errorf("unknown game %q: %w", cfg.GameID, err)
	}

	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	database, err := db.New(filepath.Join(cfg.DataDir, "lom.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	state, err := config.LoadGameState(cfg.ConfigDir, cfg.GameID)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("loading game state: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prober := cfg.Prober
	if prober == nil {
		prober = ProbeByName
	}

	return &Service{
		config:         appConfig,
		db:             database,
		log:            logger,
		game:           game,
		prober:         prober,
		configDir:      cfg.ConfigDir,
		registry:       NewRegistry(),
		tree:           TreeFromCategories(state.Categories),
		automatic:      state.Automatic,
		manual:         state.ManualOrder,
		installDir:     state.InstallPath,
		pendingEnabled: state.Enabled,
	}, nil
}

// Close releases resources held by the service
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Game returns the game this service drives.
func (s *Service) Game() *domain.Game {
	return s.game
}

// Config returns the loaded application config.
func (s *Service) Config() *config.Config {
	return s.config
}

// InstallDir returns the game install directory: the persisted override if
// set, otherwise Steam library discovery.
func (s *Service) InstallDir() (string, error) {
	s.mu.Lock()
	dir := s.installDir
	s.mu.Unlock()
	if dir != "" {
		return dir, nil
	}

	root := s.config.SteamRoot
	if root == "" {
		root = steam.DefaultRoot()
	}
	install, err := steam.FindInstall(root, s.game.SteamAppID)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", s.game.Name, err)
	}
	if install == nil {
		return "", fmt.Errorf("%s: not found in any Steam library", s.game.Name)
	}
	return install.InstallDir, nil
}

// contentDir returns the workshop content folder, or "" when unknown.
func (s *Service) contentDir() string {
	if !s.game.SupportsContent {
		return ""
	}
	root := s.config.SteamRoot
	if root == "" {
		root = steam.DefaultRoot()
	}
	install, err := steam.FindInstall(root, s.game.SteamAppID)
	if err != nil || install == nil {
		return ""
	}
	return install.ContentDir
}

// Refresh rebuilds the registry from the filesystem. The scan runs outside
// the lock into an isolated snapshot; the swap is skipped if a newer refresh
// started meanwhile, so stale results never clobber fresh ones.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	enabled := s.enabledIDs()
	s.mu.Unlock()

	installDir, err := s.InstallDir()
	if err != nil {
		return err
	}
	dataDir := filepath.Join(installDir, s.game.DataDir)

	var scans []TierScan
	var warnings []string

	if dir := s.contentDir(); dir != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		scan, w := ScanContentDir(dir, s.prober)
		scans = append(scans, scan)
		warnings = append(warnings, w...)
	}
	if s.game.SupportsSecondary {
		if dir := s.config.SecondaryModsPath(s.game.ID); dir != "" {
			if err := ctx.Err(); err != nil {
				return err
			}
			scan, w := ScanDataDir(dir, domain.TierSecondary, s.prober)
			scans = append(scans, scan)
			warnings = append(warnings, w...)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	dataScan, w := ScanDataDir(dataDir, domain.TierData, s.prober)
	scans = append(scans, dataScan)
	warnings = append(warnings, w...)

	known, err := s.db.GetWorkshopMods(s.game.ID)
	if err != nil {
		s.log.Warn("workshop cache unavailable", zap.Error(err))
		known = nil
	}

	var lastUpdate time.Time
	if info, err := os.Stat(filepath.Join(installDir, s.game.Executable)); err == nil {
		lastUpdate = info.ModTime()
	}

	reg := BuildRegistry(scans, known)
	for _, id := range enabled {
		reg.SetEnabled(id, true)
	}
	ComputeFlags(reg, lastUpdate)

	for _, warning := range warnings {
		s.log.Warn("scan warning", zap.String("game", s.game.ID), zap.String("detail", warning))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Info("refresh superseded, discarding result", zap.Uint64("generation", gen))
		return nil
	}
	s.registry = reg
	s.pendingEnabled = nil
	s.warnings = warnings
	s.lastUpdate = lastUpdate
	s.tree.Reconcile(reg)
	s.manual = EffectiveManualOrder(reg, s.manual)
	s.cacheScans(scans)
	s.log.Info("registry refreshed", zap.String("game", s.game.ID), zap.Int("mods", reg.Len()), zap.Int("warnings", len(warnings)))
	return s.saveStateLocked()
}

// RefreshFromScans is Refresh with externally supplied scan data; the
// discovery contract is (path, mtime, pack type) tuples, so anything able to
// produce those can drive a rebuild.
func (s *Service) RefreshFromScans(scans []TierScan, lastUpdate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++

	enabled := s.enabledIDs()
	reg := BuildRegistry(scans, nil)
	for _, id := range enabled {
		reg.SetEnabled(id, true)
	}
	ComputeFlags(reg, lastUpdate)

	s.registry = reg
	s.pendingEnabled = nil
	s.warnings = nil
	s.lastUpdate = lastUpdate
	s.tree.Reconcile(reg)
	s.manual = EffectiveManualOrder(reg, s.manual)
	s.cacheScans(scans)
	return s.saveStateLocked()
}

// RestoreCached rebuilds the registry from the last persisted scan without
// touching the filesystem. Offline view: the game-update timestamp is
// unknown, so the outdated check is disabled; tier comparisons still run.
func (s *Service) RestoreCached() error {
	packs, err := s.db.GetScanCache(s.game.ID)
	if err != nil {
		return fmt.Errorf("reading scan cache: %w", err)
	}
	if len(packs) == 0 {
		// Nothing cached yet; keep the current state rather than reconciling
		// everything against an empty registry.
		return nil
	}
	known, err := s.db.GetWorkshopMods(s.game.ID)
	if err != nil {
		s.log.Warn("workshop cache unavailable", zap.Error(err))
		known = nil
	}

	// Rows arrive sorted by tier, which is the precedence order BuildRegistry
	// expects.
	var scans []TierScan
	for _, p := range packs {
		tier := domain.Tier(p.Tier)
		if len(scans) == 0 || scans[len(scans)-1].Tier != tier {
			scans = append(scans, TierScan{Tier: tier})
		}
		last := &scans[len(scans)-1]
		last.Entries = append(last.Entries, ScanEntry{
			Path:     p.Path,
			ModTime:  time.Unix(p.ModTime, 0),
			PackType: domain.ParsePackType(p.PackType),
			SteamID:  p.SteamID,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++

	enabled := s.enabledIDs()
	reg := BuildRegistry(scans, known)
	for _, id := range enabled {
		reg.SetEnabled(id, true)
	}
	ComputeFlags(reg, time.Time{})

	s.registry = reg
	s.pendingEnabled = nil
	s.warnings = nil
	s.tree.Reconcile(reg)
	s.manual = EffectiveManualOrder(reg, s.manual)
	s.log.Info("registry restored from cache", zap.String("game", s.game.ID), zap.Int("mods", reg.Len()))
	return s.saveStateLocked()
}

// cacheScans persists the scan for offline restoration. Must be called with
// s.mu held; failures are logged, never fatal.
func (s *Service) cacheScans(scans []TierScan) {
	var rows []db.CachedPack
	for _, scan := range scans {
		for _, e := range scan.Entries {
			rows = append(rows, db.CachedPack{
				Tier:     int(scan.Tier),
				Path:     e.Path,
				ModTime:  e.ModTime.Unix(),
				PackType: e.PackType.String(),
				SteamID:  e.SteamID,
			})
		}
	}
	if err := s.db.SaveScanCache(s.game.ID, rows); err != nil {
		s.log.Warn("scan cache not updated", zap.Error(err))
	}
}

// Mods returns the current registry snapshot's mods in discovery order.
func (s *Service) Mods() []*domain.Mod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Mods()
}

// GetMod returns one mod by id.
func (s *Service) GetMod(id string) (*domain.Mod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Get(id)
}

// Warnings returns the advisory messages from the last refresh.
func (s *Service) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

// SetEnabled flips a mod's enabled state and persists. Unknown ids no-op.
func (s *Service) SetEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.SetEnabled(id, enabled)
	return s.saveStateLocked()
}

// Automatic reports whether the load order is derived from categories.
func (s *Service) Automatic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.automatic
}

// SetAutomatic switches between automatic and manual mode. Entering manual
// mode seeds the manual order from the current automatic resolution so the
// user starts from what they see.
func (s *Service) SetAutomatic(automatic bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.automatic && !automatic {
		s.manual = s.tree.Flatten()
	}
	s.automatic = automatic
	return s.saveStateLocked()
}

// Categories returns a snapshot of the category tree.
func (s *Service) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Categories()
}

// CreateCategory adds a new category above Unassigned.
func (s *Service) CreateCategory(name string) error {
	return s.treeOp(func(t *Tree) error { return t.Create(name) })
}

// DeleteCategory removes a category, reassigning its mods to Unassigned.
func (s *Service) DeleteCategory(name string) error {
	return s.treeOp(func(t *Tree) error { return t.Delete(name) })
}

// RenameCategory renames a category.
func (s *Service) RenameCategory(oldName, newName string) error {
	return s.treeOp(func(t *Tree) error { return t.Rename(oldName, newName) })
}

// MoveMod moves a mod to (category, index); the drag-and-drop contract.
func (s *Service) MoveMod(modID, category string, index int) error {
	return s.treeOp(func(t *Tree) error { return t.MoveMod(modID, category, index) })
}

// ReorderCategory moves a category among its siblings.
func (s *Service) ReorderCategory(name string, index int) error {
	return s.treeOp(func(t *Tree) error { return t.ReorderCategory(name, index) })
}

// SortCategory sorts a category by display name.
func (s *Service) SortCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.tree.SortCategory(name, func(id string) string {
		if mod, ok := s.registry.Get(id); ok {
			return mod.Name
		}
		return ""
	})
	if err != nil {
		return err
	}
	return s.saveStateLocked()
}

// Resolve produces the current load order.
func (s *Service) Resolve() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Resolve(OrderInput{
		Registry:    s.registry,
		Tree:        s.tree,
		Automatic:   s.automatic,
		ManualOrder: s.manual,
	})
}

// SetManualOrder replaces the manual sequence (manual mode only).
func (s *Service) SetManualOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = EffectiveManualOrder(s.registry, order)
	return s.saveStateLocked()
}

// ManualOrder returns the persisted manual sequence.
func (s *Service) ManualOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.manual...)
}

// Manifest renders the launch artifact for the current resolution.
func (s *Service) Manifest() Manifest {
	entries := s.Resolve()
	secondary := ""
	if s.game.SupportsSecondary {
		secondary = s.config.SecondaryModsPath(s.game.ID)
	}
	return BuildManifest(entries, s.game, secondary)
}

// ExportOrderString encodes the current resolution as a portable string.
func (s *Service) ExportOrderString() (string, error) {
	entries := s.Resolve()
	s.mu.Lock()
	defer s.mu.Unlock()
	return EncodeOrder(s.registry, entries)
}

// ImportOrderString applies a native or foreign order string: matched mods
// adopt the sender's enabled set and rank order (switching to manual mode,
// since the sender's ranks are explicit). Unmatched entries are reported in
// the result, not fatal.
func (s *Service) ImportOrderString(text string, foreign bool) (MatchResult, error) {
	var shared []domain.ShareableMod
	var err error
	if foreign {
		shared = ImportModlist(text)
	} else {
		shared, err = DecodeOrder(text)
		if err != nil {
			return MatchResult{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := MatchShared(s.registry, shared)
	for _, skipped := range result.Skipped {
		s.log.Warn("imported order references unknown mod", zap.String("id", skipped))
	}

	enabled := make(map[string]bool, len(result.Enabled))
	for _, id := range result.Enabled {
		enabled[id] = true
	}
	for _, mod := range s.registry.Mods() {
		mod.Enabled = enabled[mod.ID]
	}
	s.manual = EffectiveManualOrder(s.registry, result.Order)
	s.automatic = false

	return result, s.saveStateLocked()
}

// MergeWorkshopSnapshot ingests a remote metadata snapshot file: the records
// are cached in the database and the live registry's display data is
// re-enriched in place.
func (s *Service) MergeWorkshopSnapshot(path string) (int, error) {
	infos, err := workshop.LoadSnapshot(path)
	if err != nil {
		return 0, err
	}
	if err := s.db.SaveWorkshopMods(s.game.ID, infos); err != nil {
		return 0, err
	}

	byID := make(map[string]workshop.Info, len(infos))
	for _, info := range infos {
		byID[info.SteamID] = info
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	merged := 0
	for _, mod := range s.registry.Mods() {
		if mod.SteamID == "" {
			continue
		}
		info, ok := byID[mod.SteamID]
		if !ok {
			continue
		}
		if info.Title != "" {
			mod.Name = info.Title
		}
		mod.Creator = info.Creator
		mod.FileSize = info.FileSize
		if info.TimeUpdated > 0 {
			mod.UpdatedRemote = time.Unix(info.TimeUpdated, 0)
		}
		merged++
	}
	s.log.Info("workshop snapshot merged", zap.String("game", s.game.ID), zap.Int("records", len(infos)), zap.Int("matched", merged))
	return merged, nil
}

func (s *Service) treeOp(op func(*Tree) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := op(s.tree); err != nil {
		return err
	}
	return s.saveStateLocked()
}

// enabledIDs must be called with s.mu held.
func (s *Service) enabledIDs() []string {
	if s.pendingEnabled != nil {
		return s.pendingEnabled
	}
	return s.registry.EnabledIDs()
}

// saveStateLocked persists the resolver inputs. Must be called with s.mu held.
func (s *Service) saveStateLocked() error {
	state := &config.GameState{
		GameID:      s.game.ID,
		InstallPath: s.installDir,
		Automatic:   s.automatic,
		Categories:  s.tree.Categories(),
		ManualOrder: s.manual,
		Enabled:     s.enabledIDs(),
	}
	return config.SaveGameState(s.configDir, state)
}
