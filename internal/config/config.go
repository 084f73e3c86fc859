// Package config owns the persisted project/preference configuration.
//
// The Store is constructed once at process start (see internal/wire) and
// passed by reference to every consumer. Every successful mutation is written
// back to disk before the mutator returns; a failed write is logged and
// swallowed, leaving memory and disk inconsistent until the next save (see
// DESIGN.md).
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactsDirName is the directory the engine organizes its per-execution
// output under; the artifacts root is always <project root>/execledger.
const ArtifactsDirName = "execledger"

// legacyArtifactsDirName is the pre-rename artifacts directory still found in
// old configs and on disk.
const legacyArtifactsDirName = "_artifacts"

// Tier values accepted by SetTier.
const (
	TierFree    = "FREE"
	TierPro     = "PRO"
	TierPremium = "PREMIUM"
)

// DefaultProjectName names the project created when no configuration exists.
const DefaultProjectName = "ExecLedger"

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "LEDGERCTL_CONFIG"

// Project pairs a project root with its derived artifacts root. The
// artifacts root is never set independently: it is re-derived from the
// project root after every mutation.
type Project struct {
	Name          string `json:"name"`
	ProjectRoot   string `json:"project_root"`
	ArtifactsRoot string `json:"artifacts_root"`
}

// fileSchema is the persisted JSON shape. The top-level ArtifactsRoot is the
// legacy fallback field; configs that carry only it (no projects) are
// migrated at load time and rewritten to the two-field schema on next save.
type fileSchema struct {
	ArtifactsRoot string    `json:"artifacts_root,omitempty"`
	DevMode       int       `json:"dev_mode"`
	Tier          string    `json:"tier"`
	Projects      []Project `json:"projects"`
	ActiveProject string    `json:"active_project"`
}

// loadSchema mirrors fileSchema with pointer fields where "key absent" and
// "zero value" must be told apart when merging with defaults.
type loadSchema struct {
	ArtifactsRoot string    `json:"artifacts_root"`
	DevMode       *int      `json:"dev_mode"`
	Tier          string    `json:"tier"`
	Projects      []Project `json:"projects"`
	ActiveProject string    `json:"active_project"`
}

// Store is the configuration handle.
type Store struct {
	path string
	data fileSchema
}

// NormalizeProjectRoot canonicalizes a project root path. Trailing reserved
// segments ("execledger", "_artifacts", case-insensitive) are stripped so
// that a user who selected the artifacts folder itself ends up with its
// parent; stripping repeats until the final segment is not reserved, which
// makes the function idempotent and rules out doubled artifacts suffixes.
// Empty input stays empty: rejecting it is the caller's job.
func NormalizeProjectRoot(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}

	p := filepath.Clean(path)
	for {
		base := strings.ToLower(filepath.Base(p))
		if base != ArtifactsDirName && base != legacyArtifactsDirName {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}

// DeriveArtifactsRoot returns the artifacts root for a project root:
// normalize(project_root)/execledger.
func DeriveArtifactsRoot(projectRoot string) string {
	return filepath.Join(NormalizeProjectRoot(projectRoot), ArtifactsDirName)
}

// normalizeProject upgrades a persisted project entry to the two-field
// schema. Entries that carry only a legacy artifacts_root reconstruct the
// project root by stripping a trailing reserved segment (or, failing that,
// treating the legacy value itself as the project root); both fields are
// then re-derived.
func normalizeProject(p Project) Project {
	root := p.ProjectRoot
	if root == "" {
		root = p.ArtifactsRoot
	}
	root = NormalizeProjectRoot(root)

	name := p.Name
	if name == "" {
		name = DefaultProjectName
	}

	return Project{
		Name:          name,
		ProjectRoot:   root,
		ArtifactsRoot: DeriveArtifactsRoot(root),
	}
}

// DefaultPath resolves the config file location: $LEDGERCTL_CONFIG when set,
// else <user config dir>/ledgerctl/config.json.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "ledgerctl", "config.json"), nil
}

// defaults returns the fallback configuration: a single project rooted at
// the current working directory.
func defaults() fileSchema {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	root := NormalizeProjectRoot(cwd)
	artifacts := DeriveArtifactsRoot(root)

	return fileSchema{
		ArtifactsRoot: artifacts,
		DevMode:       1,
		Tier:          TierPremium,
		Projects: []Project{{
			Name:          DefaultProjectName,
			ProjectRoot:   root,
			ArtifactsRoot: artifacts,
		}},
		ActiveProject: DefaultProjectName,
	}
}

// Load reads the configuration at path, migrating legacy shapes and merging
// defaults for missing keys. A missing or unparseable file falls back to
// defaults; Load never fails.
func Load(path string) *Store {
	s := &Store{path: path, data: defaults()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: failed to read %s: %v, using defaults", path, err)
		}
		return s
	}

	var loaded loadSchema
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("config: failed to parse %s: %v, using defaults", path, err)
		return s
	}

	if loaded.DevMode != nil {
		s.data.DevMode = *loaded.DevMode
	}
	if loaded.Tier != "" {
		s.data.Tier = loaded.Tier
	}
	if loaded.ArtifactsRoot != "" {
		s.data.ArtifactsRoot = loaded.ArtifactsRoot
	}

	switch {
	case len(loaded.Projects) > 0:
		projects := make([]Project, 0, len(loaded.Projects))
		for _, p := range loaded.Projects {
			projects = append(projects, normalizeProject(p))
		}
		s.data.Projects = projects
	case loaded.ArtifactsRoot != "":
		// Legacy flat config: one project reconstructed from the old
		// top-level artifacts_root.
		s.data.Projects = []Project{normalizeProject(Project{
			Name:          DefaultProjectName,
			ArtifactsRoot: loaded.ArtifactsRoot,
		})}
		s.data.ActiveProject = DefaultProjectName
	}

	if loaded.ActiveProject != "" {
		s.data.ActiveProject = loaded.ActiveProject
	}

	return s
}

// Path returns the file this store persists to.
func (s *Store) Path() string {
	return s.path
}

// Projects returns the projects in insertion order.
func (s *Store) Projects() []Project {
	out := make([]Project, len(s.data.Projects))
	copy(out, s.data.Projects)
	return out
}

// ActiveProjectName returns the active project name, falling back to the
// default name when unset.
func (s *Store) ActiveProjectName() string {
	if s.data.ActiveProject == "" {
		return DefaultProjectName
	}
	return s.data.ActiveProject
}

// ActiveProject returns the active project, or nil when the active pointer
// does not reference an existing project.
func (s *Store) ActiveProject() *Project {
	name := s.ActiveProjectName()
	for i := range s.data.Projects {
		if s.data.Projects[i].Name == name {
			p := s.data.Projects[i]
			return &p
		}
	}
	return nil
}

// SetActiveProject makes the named project active. It persists and returns
// true only when a project with that name exists; otherwise state is left
// unchanged.
func (s *Store) SetActiveProject(name string) bool {
	for i := range s.data.Projects {
		if s.data.Projects[i].Name == name {
			s.data.ActiveProject = name
			s.save()
			return true
		}
	}
	return false
}

// UpsertProject normalizes projectRoot, derives the artifacts root, and
// updates the existing entry with matching name or appends a new one.
func (s *Store) UpsertProject(name, projectRoot string) {
	root := NormalizeProjectRoot(projectRoot)
	entry := Project{
		Name:          name,
		ProjectRoot:   root,
		ArtifactsRoot: DeriveArtifactsRoot(root),
	}

	for i := range s.data.Projects {
		if s.data.Projects[i].Name == name {
			s.data.Projects[i] = entry
			s.save()
			return
		}
	}

	s.data.Projects = append(s.data.Projects, entry)
	s.save()
}

// RemoveProject removes the named project. Removing the last remaining
// project is rejected (returns false, no mutation). When the removed project
// was active, the active pointer moves to the first remaining project.
func (s *Store) RemoveProject(name string) bool {
	if len(s.data.Projects) <= 1 {
		return false
	}

	kept := s.data.Projects[:0]
	removed := false
	for _, p := range s.data.Projects {
		if p.Name == name {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false
	}
	s.data.Projects = kept

	if s.data.ActiveProject == name {
		s.data.ActiveProject = s.data.Projects[0].Name
	}

	s.save()
	return true
}

// ArtifactsRoot returns the active project's artifacts root, falling back to
// the legacy top-level field when no active project exists.
func (s *Store) ArtifactsRoot() string {
	if p := s.ActiveProject(); p != nil {
		return p.ArtifactsRoot
	}
	return s.data.ArtifactsRoot
}

// SetArtifactsRoot reinterprets value as a new project root for the active
// project, re-deriving its artifacts root. Without an active project the
// legacy fallback field is written directly.
func (s *Store) SetArtifactsRoot(value string) {
	if p := s.ActiveProject(); p != nil {
		s.UpsertProject(p.Name, value)
		return
	}
	s.data.ArtifactsRoot = value
	s.save()
}

// Tier returns the current access tier.
func (s *Store) Tier() string {
	return s.data.Tier
}

// SetTier sets the access tier. Values outside {FREE, PRO, PREMIUM} are
// rejected with no state change.
func (s *Store) SetTier(value string) error {
	switch value {
	case TierFree, TierPro, TierPremium:
		s.data.Tier = value
		s.save()
		return nil
	default:
		return fmt.Errorf("invalid tier %q (want %s, %s, or %s)", value, TierFree, TierPro, TierPremium)
	}
}

// DevMode reports whether developer mode is enabled.
func (s *Store) DevMode() bool {
	return s.data.DevMode != 0
}

// SetDevMode enables or disables developer mode.
func (s *Store) SetDevMode(enabled bool) {
	if enabled {
		s.data.DevMode = 1
	} else {
		s.data.DevMode = 0
	}
	s.save()
}

// save writes the full configuration synchronously. Failures are logged and
// swallowed: in-memory state stays mutated even when the write failed.
func (s *Store) save() {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		log.Printf("config: failed to marshal config: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("config: failed to create config dir: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("config: failed to save %s: %v", s.path, err)
	}
}
