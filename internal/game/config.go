package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional run configuration loaded from a YAML file. Every
// field has a sensible default and a missing file is not an error, so the
// game runs with no config at all.
type Config struct {
	Window      WindowConfig `yaml:"window"`
	Audio       AudioConfig  `yaml:"audio"`
	Seed        int64        `yaml:"seed"`         // 0 = derive from current time
	SnapshotDir string       `yaml:"snapshot_dir"` // milestone JSON output
}

// WindowConfig sets the play-area bounds, which double as the window size.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AudioConfig controls the synthesized sound effects.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window:      WindowConfig{Width: 800, Height: 600},
		Audio:       AudioConfig{Enabled: true, MasterVolume: 0.8},
		SnapshotDir: "levels",
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path or a
// nonexistent file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Window.Width < 2*seedRingRadius || c.Window.Height < 2*seedRingRadius {
		return fmt.Errorf("window %dx%d too small for the seed ring", c.Window.Width, c.Window.Height)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("master_volume %.2f outside [0,1]", c.Audio.MasterVolume)
	}
	return nil
}
