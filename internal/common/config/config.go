package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MarkerSuffix is appended to the package name to form the marker file name
const MarkerSuffix = "_has_update"

var (
	// ErrInvalidArgs is the umbrella for every usage error
	ErrInvalidArgs    = errors.New("missing or invalid args")
	ErrMissingPackage = errors.New("package name is required")
	ErrMissingToken   = errors.New("pushover token is required")
	ErrMissingUser    = errors.New("pushover user is required")

	ErrUnsupportedFormat = errors.New("unsupported config file format: use .toml, .yaml or .yml")
)

// Config holds everything one invocation needs
type Config struct {
	Package  string         `yaml:"pkg" toml:"pkg"`
	Jail     string         `yaml:"jail,omitempty" toml:"jail,omitempty"`
	Pushover PushoverConfig `yaml:"pushover" toml:"pushover"`
	// LockDir is a plain prefix; the caller supplies any trailing separator
	LockDir  string         `yaml:"po_lock_dir,omitempty" toml:"po_lock_dir,omitempty"`
}

// PushoverConfig holds the Pushover application token and recipient key
type PushoverConfig struct {
	Token string `yaml:"token" toml:"token"`
	User  string `yaml:"user" toml:"user"`
}

// Validate checks that the package name and both Pushover credentials are set.
// Every returned error wraps ErrInvalidArgs.
func (c *Config) Validate() error {
	switch {
	case c.Package == "":
		return fmt.Errorf("%w: %w", ErrInvalidArgs, ErrMissingPackage)
	case c.Pushover.Token == "":
		return fmt.Errorf("%w: %w", ErrInvalidArgs, ErrMissingToken)
	case c.Pushover.User == "":
		return fmt.Errorf("%w: %w", ErrInvalidArgs, ErrMissingUser)
	}
	return nil
}

// MarkerPath returns the path of the notification suppression marker
func (c *Config) MarkerPath() string {
	return c.LockDir + c.Package + MarkerSuffix
}

// String renders the config with credentials masked
func (c *Config) String() string {
	jail := c.Jail
	if jail == "" {
		jail = "-"
	}
	return fmt.Sprintf("pkg=%s jail=%s token=%s user=%s marker=%s",
		c.Package, jail, mask(c.Pushover.Token), mask(c.Pushover.User), c.MarkerPath())
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// LoadFrom reads configuration from a TOML or YAML file, chosen by extension
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	return &cfg, nil
}
