// Package config reads the settings of the reelsearch binary from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	ErrItemHeight  = errors.New("config: item_height must be positive")
	ErrSettleDelay = errors.New("config: settle_delay must not be negative")
	ErrAlphaFactor = errors.New("config: alpha_factor must be positive")
	ErrUnknownKeys = errors.New("config: unknown keys")
)

// Duration is a time.Duration written as a string such as "150ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	// Path of a word list with one word per line. Empty uses the built-in list.
	WordList    string   `toml:"word_list"`
	ItemHeight  int      `toml:"item_height"`
	SettleDelay Duration `toml:"settle_delay"`
	AlphaFactor float64  `toml:"alpha_factor"`
	ScrollBar   bool     `toml:"scroll_bar"`
	Placeholder string   `toml:"placeholder"`
	LogFile     string   `toml:"log_file"`
}

func Default() Config {
	return Config{
		ItemHeight:  1,
		SettleDelay: Duration{150 * time.Millisecond},
		AlphaFactor: 1.2,
		ScrollBar:   true,
		Placeholder: "Type to search",
	}
}

// Decode reads a config from r. Keys missing from r keep their default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Load reads the config file at path. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.ItemHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrItemHeight, c.ItemHeight))
	}
	if c.SettleDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrSettleDelay, c.SettleDelay))
	}
	if c.AlphaFactor <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrAlphaFactor, c.AlphaFactor))
	}
	return errors.Join(errs...)
}
