package snippet

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RegistryEntry records one uploaded snippet so it can be found again later.
type RegistryEntry struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AppendRegistry appends an URL-to-filename mapping to the registry file at
// path, creating the file and its directory when missing. The registry is
// append-only, one JSON entry per line.
func AppendRegistry(path, url, filename string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	entry := RegistryEntry{
		ID:         uuid.NewString(),
		URL:        url,
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling registry entry: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("appending registry entry: %w", err)
	}

	return nil
}

// LoadRegistry reads all registry entries from path, oldest first.
// A missing file yields an empty registry. Unparsable lines are skipped.
func LoadRegistry(path string) ([]RegistryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	var entries []RegistryEntry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry RegistryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	return entries, nil
}
