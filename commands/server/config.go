package server

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/custody/errors"
)

// ConfigFile is the name of the node configuration file, relative to the
// home directory.
const ConfigFile = "config/custodyd.toml"

// Config is the node configuration read from the TOML file.
type Config struct {
	ABCI    ABCIConfig    `toml:"abci"`
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ABCIConfig declares where the ABCI server listens.
type ABCIConfig struct {
	Address string `toml:"address"`
	Debug   bool   `toml:"debug"`
}

// StoreConfig declares where the state is persisted. An empty path keeps
// the state in memory.
type StoreConfig struct {
	Path string `toml:"path"`
}

// LogConfig declares the log level and an optional rotated log file.
type LogConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// MetricsConfig declares where prometheus metrics are served. An empty
// address disables the endpoint.
type MetricsConfig struct {
	Address string `toml:"address"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		ABCI:  ABCIConfig{Address: "tcp://localhost:26658"},
		Store: StoreConfig{Path: home},
		Log:   LogConfig{Level: "info", MaxSizeMB: 100},
	}
}

// LoadConfig reads the configuration file from the home directory. Values
// missing from the file keep their defaults. A missing file is not an
// error.
func LoadConfig(home string) (Config, error) {
	conf := DefaultConfig(home)
	path := filepath.Join(home, ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "config %q: %s", path, err)
	}
	return conf, conf.Validate()
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	var errs error
	if c.ABCI.Address == "" {
		errs = errors.AppendField(errs, "ABCI.Address", errors.ErrEmpty)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = errors.AppendField(errs, "Log.Level", err)
	}
	if c.Log.MaxSizeMB < 0 {
		errs = errors.AppendField(errs, "Log.MaxSizeMB", errors.ErrInput)
	}
	return errs
}
