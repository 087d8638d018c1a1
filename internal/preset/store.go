package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Validation and conflict errors. Filesystem errors are not wrapped into
// these; they propagate as-is.
var (
	// ErrNameRequired indicates a missing preset name parameter.
	ErrNameRequired = errors.New("preset name is not specified")
	// ErrPathRequired indicates a missing external file path parameter.
	ErrPathRequired = errors.New("file path is not specified")
	// ErrExists indicates a refusal to overwrite an existing preset.
	ErrExists = errors.New("preset already exists, refusing to overwrite")
)

// Store is a preset store rooted at one directory.
type Store struct {
	Dir string
}

// NewStore returns a Store over dir. The directory is created lazily by the
// operations that need it to exist.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Ensure creates the store directory and any missing parents.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating presets directory: %w", err)
	}

	return nil
}

// PresetPath maps a preset name to its file path without touching the
// filesystem.
func (s *Store) PresetPath(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// Paths returns the lexicographically sorted paths of all preset files
// currently in the store.
func (s *Store) Paths() ([]string, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(s.Dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	sort.Strings(paths)

	return paths, nil
}

// List returns all presets in the store, sorted by name.
func (s *Store) List() ([]*Preset, error) {
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}

	presets := make([]*Preset, 0, len(paths))
	for _, p := range paths {
		presets = append(presets, FromPath(s.Dir, p))
	}

	return presets, nil
}

// Write stores data under name, silently overwriting any existing preset.
// Returns the destination path.
func (s *Store) Write(name string, data []byte) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}

	if err := s.Ensure(); err != nil {
		return "", err
	}

	path := s.PresetPath(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing preset: %w", err)
	}

	return path, nil
}

// WriteNew stores data under name, refusing to overwrite an existing preset.
// Returns the destination path.
func (s *Store) WriteNew(name string, data []byte) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}

	if err := s.Ensure(); err != nil {
		return "", err
	}

	path := s.PresetPath(name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %q", ErrExists, name)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing preset: %w", err)
	}

	return path, nil
}

// Read returns the raw bytes of the preset named name.
func (s *Store) Read(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	data, err := os.ReadFile(s.PresetPath(name))
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}

	return data, nil
}

// Rename moves the preset oldName to newName. Fails without touching the
// filesystem when a preset already exists under newName.
func (s *Store) Rename(oldName, newName string) error {
	if oldName == "" {
		return fmt.Errorf("old name: %w", ErrNameRequired)
	}

	if newName == "" {
		return fmt.Errorf("new name: %w", ErrNameRequired)
	}

	oldPath := s.PresetPath(oldName)
	newPath := s.PresetPath(newName)

	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("%w: %q", ErrExists, newName)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("renaming preset: %w", err)
	}

	return nil
}

// Delete removes the preset named name. Removing a preset that does not exist
// surfaces the filesystem error. Confirmation is the caller's concern; the
// removal is irreversible.
func (s *Store) Delete(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	if err := os.Remove(s.PresetPath(name)); err != nil {
		return fmt.Errorf("removing preset: %w", err)
	}

	return nil
}

// ExportFile copies the preset named name to the external file dst,
// overwriting dst if present.
func (s *Store) ExportFile(name, dst string) error {
	if name == "" {
		return ErrNameRequired
	}

	if dst == "" {
		return fmt.Errorf("target %w", ErrPathRequired)
	}

	return copyFile(s.PresetPath(name), dst)
}

// ImportFile copies the external file src into the store under name,
// overwriting any existing preset.
func (s *Store) ImportFile(src, name string) error {
	if name == "" {
		return ErrNameRequired
	}

	if src == "" {
		return fmt.Errorf("source %w", ErrPathRequired)
	}

	if err := s.Ensure(); err != nil {
		return err
	}

	return copyFile(src, s.PresetPath(name))
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", dst, err)
	}

	return nil
}
