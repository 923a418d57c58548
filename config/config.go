// Package config handles uvm.toml interpreter configuration.
package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/uvmkit/uvm/translate"
	"github.com/uvmkit/uvm/vm"
)

var f = translate.From

var (
	ErrMemSize = errors.New(f("mem-size must be a positive integer"))
)

// Config is the interpreter configuration. Flags override file
// values; file values override the defaults.
type Config struct {
	MemSize int    `toml:"mem-size"` // Data memory size in cells.
	Range   string `toml:"range"`    // Default dump range, start:end.
	Verbose bool   `toml:"verbose"`  // Per-instruction trace logging.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MemSize: vm.DEFAULT_MEM_SIZE,
	}
}

// Validate checks configured values.
func (cfg *Config) Validate() error {
	if cfg.MemSize <= 0 {
		return ErrMemSize
	}
	return nil
}

// Load reads a TOML configuration file over the defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}
