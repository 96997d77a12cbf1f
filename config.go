package replacet

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultRoot is the process root resource directories are resolved against when
// Config.Root is empty.
const DefaultRoot = "."

// Config holds the options of a transform.
//
// Namespace files live at Root/BaseDir/<namespace>.json, or at
// Root/BaseDir/<locale>/<namespace>.json when Locale is set:
//
//	locales/
//		en/
//			common.json
//			dir/dir.json
type Config struct {
	// Root is the process root. An absolute BaseDir ignores it.
	Root string `json:"root,omitempty" toml:"root"`
	// BaseDir is the directory holding the namespace files. Required.
	BaseDir string `json:"baseDir" toml:"base_dir"`
	// Locale optionally selects a sub directory of BaseDir, e.g. "en" or "en-US".
	Locale string `json:"locale,omitempty" toml:"locale"`
}

// ParseConfig reads the JSON configuration handed over by a build host:
//
//	{"baseDir": "public/locales", "locale": "en"}
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return fmt.Errorf("%w: baseDir is required and can not be empty", ErrConfiguration)
	}

	if c.Locale != "" {
		if _, err := ParseLocale(c.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %w", ErrConfiguration, c.Locale, err)
		}
	}

	return nil
}

// ResourceDir returns the directory namespace files are read from.
func (c Config) ResourceDir() string {
	dir := c.BaseDir
	if !filepath.IsAbs(dir) {
		root := c.Root
		if root == "" {
			root = DefaultRoot
		}
		dir = filepath.Join(root, dir)
	}

	if c.Locale != "" {
		if l, err := ParseLocale(c.Locale); err == nil {
			dir = filepath.Join(dir, l.String())
		}
	}

	return filepath.Clean(dir)
}
