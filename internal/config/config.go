package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/titanous/json5"
)

// Config holds user preferences.
type Config struct {
	ServiceURL string `json:"service_url,omitempty"`
	Token      string `json:"token,omitempty"`
	AutoCopy   *bool  `json:"auto_copy,omitempty"`
	AutoOpen   *bool  `json:"auto_open,omitempty"`
	Timeout    string `json:"timeout,omitempty"`
	PresetsDir string `json:"presets_dir,omitempty"`

	// ManageMode records the management-mode toggle per graph document path.
	ManageMode map[string]bool `json:"manage_mode,omitempty"`
}

// knownKey describes a config key and its optional validator.
type knownKey struct {
	validate func(string) error
}

var knownKeys = map[string]knownKey{
	"service_url": {validate: validateURL},
	"token":       {validate: nil},
	"auto_copy":   {validate: validateBool},
	"auto_open":   {validate: validateBool},
	"timeout":     {validate: validateDuration},
	"presets_dir": {validate: nil},
}

func validateURL(val string) error {
	u, err := url.Parse(val)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https")
	}

	return nil
}

func validateBool(val string) error {
	if val != "true" && val != "false" {
		return fmt.Errorf("must be true or false")
	}

	return nil
}

func validateDuration(val string) error {
	_, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}

	return nil
}

// TimeoutDuration parses Timeout as a time.Duration.
// Returns 30s on empty or invalid values.
func (cfg *Config) TimeoutDuration() time.Duration {
	if cfg.Timeout == "" {
		return 30 * time.Second
	}

	d, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return 30 * time.Second
	}

	return d
}

// EffectivePresetsDir resolves the presets directory: the presets_dir config
// override when set, the XDG data location otherwise.
func (cfg *Config) EffectivePresetsDir() (string, error) {
	if cfg != nil && cfg.PresetsDir != "" {
		return cfg.PresetsDir, nil
	}

	return DefaultPresetsDir()
}

// ManageModeFor reports whether management mode is enabled for a graph path.
func (cfg *Config) ManageModeFor(graphPath string) bool {
	if cfg == nil || cfg.ManageMode == nil {
		return false
	}

	return cfg.ManageMode[graphPath]
}

// SetManageMode records the management-mode toggle for a graph path.
// Disabling removes the entry so the map stays small.
func (cfg *Config) SetManageMode(graphPath string, on bool) {
	if !on {
		delete(cfg.ManageMode, graphPath)

		return
	}

	if cfg.ManageMode == nil {
		cfg.ManageMode = map[string]bool{}
	}

	cfg.ManageMode[graphPath] = true
}

// Load reads config from the JSON5 file at path.
// Returns an empty Config if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes config as pretty-printed JSON atomically.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	data = append(data, '\n')

	return atomicWrite(path, data)
}

// atomicWrite writes data to path via temp-file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	tmpPath = "" // prevent deferred cleanup

	return nil
}

// Get returns the string value for a config key and whether it is set.
func (cfg *Config) Get(key string) (string, bool) {
	switch key {
	case "service_url":
		return cfg.ServiceURL, cfg.ServiceURL != ""
	case "token":
		return cfg.Token, cfg.Token != ""
	case "auto_copy":
		if cfg.AutoCopy == nil {
			return "", false
		}

		return fmt.Sprintf("%t", *cfg.AutoCopy), true
	case "auto_open":
		if cfg.AutoOpen == nil {
			return "", false
		}

		return fmt.Sprintf("%t", *cfg.AutoOpen), true
	case "timeout":
		return cfg.Timeout, cfg.Timeout != ""
	case "presets_dir":
		return cfg.PresetsDir, cfg.PresetsDir != ""
	default:
		return "", false
	}
}

// Set sets a config key to a value after validation.
func (cfg *Config) Set(key, value string) error {
	kk, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	if kk.validate != nil {
		if err := kk.validate(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	switch key {
	case "service_url":
		cfg.ServiceURL = value
	case "token":
		cfg.Token = value
	case "auto_copy":
		b := value == "true"
		cfg.AutoCopy = &b
	case "auto_open":
		b := value == "true"
		cfg.AutoOpen = &b
	case "timeout":
		cfg.Timeout = value
	case "presets_dir":
		cfg.PresetsDir = value
	}

	return nil
}

// Unset removes a config key (resets to zero/nil).
func (cfg *Config) Unset(key string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	switch key {
	case "service_url":
		cfg.ServiceURL = ""
	case "token":
		cfg.Token = ""
	case "auto_copy":
		cfg.AutoCopy = nil
	case "auto_open":
		cfg.AutoOpen = nil
	case "timeout":
		cfg.Timeout = ""
	case "presets_dir":
		cfg.PresetsDir = ""
	}

	return nil
}

// KnownKeys returns a sorted list of valid config key names.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// --- Context helpers ---

type ctxKey struct{}

// WithConfig stores a Config in the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the Config from the context.
func FromContext(ctx context.Context) *Config {
	if v := ctx.Value(ctxKey{}); v != nil {
		if cfg, ok := v.(*Config); ok {
			return cfg
		}
	}

	return nil
}
